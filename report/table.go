package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/joshi-prasad/optprice"
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
)

const (
	kVolHeader      = "Volatility (σ)"
	kAnalyticHeader = "Black-Scholes Model Option Price (USD)"
	kLatticeHeader  = "Binomial Model Option Price (USD)"

	// Rows whose engines disagree by more than this are highlighted.
	kGapWarning = 0.05
)

// Table is the outcome of a sweep, rows in volatility order.
type Table struct {
	Params       optprice.PricingParameters
	Kind         optprice.OptionKind
	AnalyticName string
	LatticeName  string
	Rows         []Row
	Skipped      []Row
}

func NewTable(
	params optprice.PricingParameters,
	kind optprice.OptionKind,
	analyticName string,
	latticeName string) *Table {

	return &Table{
		Params:       params,
		Kind:         kind,
		AnalyticName: analyticName,
		LatticeName:  latticeName,
		Rows:         []Row{},
		Skipped:      []Row{},
	}
}

// Series returns the volatility, analytic and lattice columns.
func (self *Table) Series() ([]float64, []float64, []float64) {
	vols := make([]float64, len(self.Rows))
	analytic := make([]float64, len(self.Rows))
	lattice := make([]float64, len(self.Rows))
	for i, row := range self.Rows {
		vols[i] = row.Volatility
		analytic[i] = row.Analytic
		lattice[i] = row.Lattice
	}
	return vols, analytic, lattice
}

// MaxGap returns the largest absolute difference between the two engines.
func (self *Table) MaxGap() float64 {
	if len(self.Rows) == 0 {
		return 0
	}
	gaps := make([]float64, len(self.Rows))
	for i, row := range self.Rows {
		gaps[i] = math.Abs(row.Gap())
	}
	return floats.Max(gaps)
}

func (self *Table) Title() string {
	kind := self.Kind.String()
	if kind != "" {
		kind = strings.ToUpper(kind[:1]) + kind[1:]
	}
	return fmt.Sprintf("%s Option Pricing with Varying Volatilities", kind)
}

// formatPrice rounds half away from zero to cents.
func formatPrice(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}

func (self *Table) Print(w io.Writer) {
	titleColor := color.New(color.Bold).SprintFunc()
	headerColor := color.New(color.FgCyan).SprintFunc()
	volColor := color.New(color.FgYellow).SprintFunc()
	defaultColor := color.New(color.FgBlue).SprintFunc()
	redColor := color.New(color.FgRed).SprintFunc()

	volWidth := len([]rune(kVolHeader))
	analyticWidth := len(kAnalyticHeader)
	latticeWidth := len(kLatticeHeader)

	fmt.Fprintf(w, "%s\n", titleColor(self.Title()+":"))
	fmt.Fprintf(w, "S=%v K=%v r=%v T=%v | %s vs %s\n\n",
		self.Params.Spot, self.Params.Strike, self.Params.Rate,
		self.Params.Expiry, self.AnalyticName, self.LatticeName)

	fmt.Fprintf(w, "%s  %s  %s\n",
		headerColor(kVolHeader),
		headerColor(fmt.Sprintf("%-*s", analyticWidth, kAnalyticHeader)),
		headerColor(fmt.Sprintf("%-*s", latticeWidth, kLatticeHeader)))
	fmt.Fprintf(w, "%s  %s  %s\n",
		strings.Repeat("-", volWidth),
		strings.Repeat("-", analyticWidth),
		strings.Repeat("-", latticeWidth))

	for _, row := range self.Rows {
		latticeColor := defaultColor
		if math.Abs(row.Gap()) > kGapWarning {
			latticeColor = redColor
		}
		fmt.Fprintf(w, "%s  %s  %s\n",
			volColor(fmt.Sprintf("%-*s", volWidth, decimal.NewFromFloat(row.Volatility).StringFixed(2))),
			defaultColor(fmt.Sprintf("%-*s", analyticWidth, formatPrice(row.Analytic))),
			latticeColor(fmt.Sprintf("%-*s", latticeWidth, formatPrice(row.Lattice))))
	}

	fmt.Fprintf(w, "\nMax |lattice - analytic|: %.6f\n", self.MaxGap())
	for _, row := range self.Skipped {
		fmt.Fprintf(w, "%s sigma=%v: %v\n", redColor("Skipped"), row.Volatility, row.Err)
	}
}
