package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// MeanRev configures the mean-reversion backtest.
type MeanRev struct {
	Prices    string  `mapstructure:"prices"`
	Threshold float64 `mapstructure:"threshold"`
	Tail      int     `mapstructure:"tail"`
	NoColor   bool    `mapstructure:"no-color"`
}

func NewMeanRevFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("meanrev", pflag.ContinueOnError)
	fs.String(kConfigFlag, "", "path to a yaml config file")
	fs.String("prices", "", "CSV of adjusted closes: Date,<ticker>,...")
	fs.Float64("threshold", 2.0, "z-score beyond which a signal fires")
	fs.Int("tail", 5, "number of trailing cumulative-return rows to print")
	fs.Bool("no-color", false, "disable coloured output")
	return fs
}

func LoadMeanRev(fs *pflag.FlagSet) (*MeanRev, error) {
	cfg := &MeanRev{}
	if err := load("meanrev", "MEANREV", fs, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (self *MeanRev) Validate() error {
	var problems []string
	if self.Prices == "" {
		problems = append(problems, "prices path is required")
	}
	if self.Threshold <= 0 {
		problems = append(problems, fmt.Sprintf("threshold=%v must be positive", self.Threshold))
	}
	if self.Tail <= 0 {
		problems = append(problems, fmt.Sprintf("tail=%d must be positive", self.Tail))
	}
	return invalid(problems)
}
