package report

import (
	"errors"
	"math"
	"testing"

	"github.com/joshi-prasad/optprice"
	"gonum.org/v1/gonum/floats/scalar"
)

var errBroken = errors.New("broken engine")

// failingEngine fails for one volatility and defers to the analytic engine
// otherwise.
type failingEngine struct {
	failAt float64
}

func (failingEngine) Name() string { return "failing" }

func (self failingEngine) Price(
	params optprice.PricingParameters,
	kind optprice.OptionKind) (float64, error) {

	if scalar.EqualWithinAbs(params.Volatility, self.failAt, 1e-9) {
		return 0, errBroken
	}
	return optprice.AnalyticEngine{}.Price(params, kind)
}

func defaultParams() optprice.PricingParameters {
	return optprice.NewPricingParameters(100, 95, 0.05, 0, 1)
}

func TestVolatilities(t *testing.T) {
	vols := Volatilities(0.1, 1.0, 10)
	if len(vols) != 10 {
		t.Fatalf("len = %d, want 10", len(vols))
	}
	for i, v := range vols {
		want := 0.1 * float64(i+1)
		if !scalar.EqualWithinAbs(v, want, 1e-12) {
			t.Errorf("vols[%d] = %v, want %v", i, v, want)
		}
	}
	if got := Volatilities(0.3, 0.9, 1); len(got) != 1 || got[0] != 0.3 {
		t.Errorf("single point = %v", got)
	}
	if got := Volatilities(0.1, 1, 0); len(got) != 0 {
		t.Errorf("zero points = %v", got)
	}
}

func TestParseErrorPolicy(t *testing.T) {
	tests := map[string]ErrorPolicy{"": SkipRow, "skip": SkipRow, "HALT": HaltSweep}
	for input, want := range tests {
		got, err := ParseErrorPolicy(input)
		if err != nil || got != want {
			t.Errorf("ParseErrorPolicy(%q) = %v, %v; want %v", input, got, err, want)
		}
	}
	if _, err := ParseErrorPolicy("retry"); err == nil {
		t.Error("ParseErrorPolicy(retry) expected error")
	}
}

func TestSweep_Default(t *testing.T) {
	for _, kind := range []optprice.OptionKind{optprice.Call, optprice.Put} {
		sweep := NewSweep(defaultParams(), kind, optprice.DefaultSteps)
		table, err := sweep.Run()
		if err != nil {
			t.Fatalf("%s: Run() unexpected error: %v", kind, err)
		}
		if len(table.Rows) != 10 || len(table.Skipped) != 0 {
			t.Fatalf("%s: rows=%d skipped=%d", kind, len(table.Rows), len(table.Skipped))
		}

		prev := -1.0
		for _, row := range table.Rows {
			want, _ := optprice.PriceAnalytic(100, 95, 0.05, row.Volatility, 1, kind)
			if row.Analytic != want {
				t.Errorf("%s sigma=%v analytic=%v, want %v", kind, row.Volatility, row.Analytic, want)
			}
			if math.Abs(row.Gap()) > 0.1 {
				t.Errorf("%s sigma=%v gap=%v", kind, row.Volatility, row.Gap())
			}
			if row.Analytic < prev {
				t.Errorf("%s rows out of volatility order at %v", kind, row.Volatility)
			}
			prev = row.Analytic
		}
	}
}

func TestSweep_SkipRow(t *testing.T) {
	sweep := NewSweep(defaultParams(), optprice.Call, 50)
	sweep.Lattice = failingEngine{failAt: 0.5}
	sweep.Workers = 3

	table, err := sweep.Run()
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if len(table.Rows) != 9 || len(table.Skipped) != 1 {
		t.Fatalf("rows=%d skipped=%d, want 9 and 1", len(table.Rows), len(table.Skipped))
	}
	if !errors.Is(table.Skipped[0].Err, errBroken) {
		t.Errorf("skipped error = %v", table.Skipped[0].Err)
	}
	for _, row := range table.Rows {
		if scalar.EqualWithinAbs(row.Volatility, 0.5, 1e-9) {
			t.Error("failing row was kept")
		}
	}
}

func TestSweep_HaltSweep(t *testing.T) {
	sweep := NewSweep(defaultParams(), optprice.Put, 50)
	sweep.Analytic = failingEngine{failAt: 0.4}
	sweep.Policy = HaltSweep

	table, err := sweep.Run()
	if !errors.Is(err, errBroken) {
		t.Fatalf("Run() error = %v, want errBroken", err)
	}
	if len(table.Rows) != 3 {
		t.Errorf("rows before halt = %d, want 3", len(table.Rows))
	}
}

func TestSweep_InvalidKindSkipsEveryRow(t *testing.T) {
	sweep := NewSweep(defaultParams(), optprice.OptionKind(42), 10)
	table, err := sweep.Run()
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if len(table.Rows) != 0 || len(table.Skipped) != 10 {
		t.Fatalf("rows=%d skipped=%d", len(table.Rows), len(table.Skipped))
	}
	if !errors.Is(table.Skipped[0].Err, optprice.ErrInvalidOptionKind) {
		t.Errorf("error = %v, want ErrInvalidOptionKind", table.Skipped[0].Err)
	}
}

func TestSweep_NoVolatilities(t *testing.T) {
	sweep := NewSweep(defaultParams(), optprice.Call, 10)
	sweep.Volatilities = nil
	if _, err := sweep.Run(); err == nil {
		t.Error("Run() expected error for empty sweep")
	}
}
