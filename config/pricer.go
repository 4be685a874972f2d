package config

import (
	"fmt"

	"github.com/joshi-prasad/optprice"
	"github.com/spf13/pflag"
)

// Pricer configures the volatility comparison report.
type Pricer struct {
	Spot   float64 `mapstructure:"spot"`
	Strike float64 `mapstructure:"strike"`
	Rate   float64 `mapstructure:"rate"`
	Expiry float64 `mapstructure:"expiry"`
	Steps  int     `mapstructure:"steps"`

	// Kind is "call" or "put"; empty means ask on stdin.
	Kind string `mapstructure:"kind"`

	VolMin   float64 `mapstructure:"vol-min"`
	VolMax   float64 `mapstructure:"vol-max"`
	VolCount int     `mapstructure:"vol-count"`

	OnError string `mapstructure:"on-error"`
	Workers int    `mapstructure:"workers"`

	ChartPNG  string `mapstructure:"chart-png"`
	ChartHTML string `mapstructure:"chart-html"`
	NoColor   bool   `mapstructure:"no-color"`
}

func NewPricerFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("optprice", pflag.ContinueOnError)
	fs.String(kConfigFlag, "", "path to a yaml config file")
	fs.Float64("spot", 100, "spot price of the underlying")
	fs.Float64("strike", 95, "strike price")
	fs.Float64("rate", 0.05, "risk-free rate, continuously compounded")
	fs.Float64("expiry", 1.0, "time to expiry in years")
	fs.Int("steps", optprice.DefaultSteps, "binomial tree steps")
	fs.String("kind", "", "call or put (prompted when empty)")
	fs.Float64("vol-min", 0.1, "lowest volatility in the sweep")
	fs.Float64("vol-max", 1.0, "highest volatility in the sweep")
	fs.Int("vol-count", 10, "number of evenly spaced volatilities")
	fs.String("on-error", "skip", "skip or halt when a volatility fails to price")
	fs.Int("workers", 0, "goroutines pricing rows (0 = GOMAXPROCS)")
	fs.String("chart-png", "", "write a PNG chart to this path")
	fs.String("chart-html", "", "write an HTML chart to this path")
	fs.Bool("no-color", false, "disable coloured output")
	return fs
}

// LoadPricer reads the report configuration. fs must already be parsed.
func LoadPricer(fs *pflag.FlagSet) (*Pricer, error) {
	cfg := &Pricer{}
	if err := load("optprice", "OPTPRICE", fs, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks what the engines cannot: the sweep shape and policy.
// Pricing parameters themselves are validated by the engines per row.
func (self *Pricer) Validate() error {
	var problems []string
	if self.Steps <= 0 {
		problems = append(problems, fmt.Sprintf("steps=%d must be positive", self.Steps))
	}
	if self.VolCount <= 0 {
		problems = append(problems, fmt.Sprintf("vol-count=%d must be positive", self.VolCount))
	}
	if self.VolMax < self.VolMin {
		problems = append(problems, fmt.Sprintf("vol-max=%v is below vol-min=%v",
			self.VolMax, self.VolMin))
	}
	if self.Workers < 0 {
		problems = append(problems, fmt.Sprintf("workers=%d must not be negative", self.Workers))
	}
	switch self.OnError {
	case "skip", "halt":
	default:
		problems = append(problems, fmt.Sprintf("on-error=%q must be skip or halt", self.OnError))
	}
	if self.Kind != "" {
		if _, err := optprice.ParseOptionKind(self.Kind); err != nil {
			problems = append(problems, err.Error())
		}
	}
	return invalid(problems)
}

func (self *Pricer) Params() optprice.PricingParameters {
	return optprice.NewPricingParameters(self.Spot, self.Strike, self.Rate, 0, self.Expiry)
}
