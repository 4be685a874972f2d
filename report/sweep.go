// Package report sweeps volatility through both pricing engines and renders
// the comparison as a table or chart.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang/glog"
	"github.com/joshi-prasad/optprice"
	"github.com/sourcegraph/conc/iter"
	"gonum.org/v1/gonum/floats"
)

const (
	kDefaultVolMin   = 0.1
	kDefaultVolMax   = 1.0
	kDefaultVolCount = 10
)

// ErrorPolicy decides what a sweep does when one volatility fails to price.
type ErrorPolicy int

const (
	// SkipRow logs the failure, leaves the row out and keeps sweeping.
	SkipRow ErrorPolicy = iota
	// HaltSweep stops at the first failing volatility.
	HaltSweep
)

func (self ErrorPolicy) String() string {
	if self == HaltSweep {
		return "halt"
	}
	return "skip"
}

func ParseErrorPolicy(value string) (ErrorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "skip":
		return SkipRow, nil
	case "halt":
		return HaltSweep, nil
	default:
		return SkipRow, fmt.Errorf("unknown error policy %q (want skip or halt)", value)
	}
}

// Volatilities returns count evenly spaced values from min to max inclusive.
func Volatilities(min float64, max float64, count int) []float64 {
	switch {
	case count <= 0:
		return []float64{}
	case count == 1:
		return []float64{min}
	}
	return floats.Span(make([]float64, count), min, max)
}

type Row struct {
	Volatility float64
	Analytic   float64
	Lattice    float64
	Err        error
}

// Gap is the lattice price minus the analytic price.
func (self Row) Gap() float64 {
	return self.Lattice - self.Analytic
}

type Sweep struct {
	Params       optprice.PricingParameters
	Kind         optprice.OptionKind
	Volatilities []float64
	Analytic     optprice.Engine
	Lattice      optprice.Engine
	Policy       ErrorPolicy

	// Workers bounds the goroutines pricing rows; 0 means GOMAXPROCS.
	Workers int
}

// NewSweep builds the default report: sigma in {0.1, 0.2, ..., 1.0} priced
// by Black-Scholes and an N-step binomial tree.
func NewSweep(
	params optprice.PricingParameters,
	kind optprice.OptionKind,
	steps int) *Sweep {

	if steps > optprice.MaxPracticalSteps {
		glog.Warningf("Lattice steps=%d exceed the practical bound of %d.",
			steps, optprice.MaxPracticalSteps)
	}
	return &Sweep{
		Params:       params,
		Kind:         kind,
		Volatilities: Volatilities(kDefaultVolMin, kDefaultVolMax, kDefaultVolCount),
		Analytic:     optprice.AnalyticEngine{},
		Lattice:      optprice.NewLatticeEngine(steps),
		Policy:       SkipRow,
		Workers:      0,
	}
}

func (self *Sweep) priceRow(volatility float64) Row {
	params := self.Params.WithVolatility(volatility)
	row := Row{Volatility: volatility}

	analytic, err := self.Analytic.Price(params, self.Kind)
	if err != nil {
		row.Err = fmt.Errorf("%s: %w", self.Analytic.Name(), err)
		return row
	}
	lattice, err := self.Lattice.Price(params, self.Kind)
	if err != nil {
		row.Err = fmt.Errorf("%s: %w", self.Lattice.Name(), err)
		return row
	}
	row.Analytic = analytic
	row.Lattice = lattice
	glog.V(2).Infof("sigma=%.4f analytic=%.6f lattice=%.6f",
		volatility, analytic, lattice)
	return row
}

// Run prices every volatility and applies the error policy in volatility
// order. Pricing is pure, so rows are computed concurrently.
func (self *Sweep) Run() (*Table, error) {
	if len(self.Volatilities) == 0 {
		msg := "Sweep has no volatilities to price."
		glog.Error(msg)
		return nil, errors.New(msg)
	}

	mapper := iter.Mapper[float64, Row]{MaxGoroutines: self.Workers}
	rows := mapper.Map(self.Volatilities, func(volatility *float64) Row {
		return self.priceRow(*volatility)
	})

	table := NewTable(self.Params, self.Kind, self.Analytic.Name(), self.Lattice.Name())
	for _, row := range rows {
		if row.Err == nil {
			table.Rows = append(table.Rows, row)
			continue
		}
		glog.Errorf("Pricing failed for sigma=%v: %v", row.Volatility, row.Err)
		if self.Policy == HaltSweep {
			return table, fmt.Errorf("sweep halted at sigma=%v: %w",
				row.Volatility, row.Err)
		}
		table.Skipped = append(table.Skipped, row)
	}
	glog.Infof("Priced %d of %d volatilities (%d skipped).",
		len(table.Rows), len(rows), len(table.Skipped))
	return table, nil
}
