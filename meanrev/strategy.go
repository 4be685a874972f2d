package meanrev

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	Buy  = 1.0
	Sell = -1.0
)

// Signals scores each close against the previous day's cross-section:
// z = (p[i][j] - mean(p[i-1])) / std(p[i-1]). A z below -threshold buys, above
// threshold sells. Row 0 has no history and stays flat.
func Signals(closes mat.Matrix, threshold float64) (*mat.Dense, error) {
	if threshold <= 0 {
		return nil, fmt.Errorf("threshold=%v must be positive", threshold)
	}
	rows, cols := closes.Dims()
	signals := mat.NewDense(rows, cols, nil)

	prev := make([]float64, cols)
	for i := 1; i < rows; i++ {
		mat.Row(prev, i-1, closes)
		mean, std := stat.MeanStdDev(prev, nil)
		for j := 0; j < cols; j++ {
			// std is NaN for a single ticker, so z is NaN and no signal fires.
			z := (closes.At(i, j) - mean) / std
			switch {
			case z < -threshold:
				signals.Set(i, j, Buy)
			case z > threshold:
				signals.Set(i, j, Sell)
			}
		}
	}
	return signals, nil
}

// DailyReturns holds yesterday's signal through today's move:
// r[i][j] = s[i-1][j] * (p[i][j] - p[i-1][j]) / p[i-1][j]. Row 0 is zero.
func DailyReturns(closes mat.Matrix, signals mat.Matrix) (*mat.Dense, error) {
	rows, cols := closes.Dims()
	sr, sc := signals.Dims()
	if rows != sr || cols != sc {
		return nil, fmt.Errorf("signals are %dx%d but closes are %dx%d",
			sr, sc, rows, cols)
	}

	returns := mat.NewDense(rows, cols, nil)
	for i := 1; i < rows; i++ {
		for j := 0; j < cols; j++ {
			position := signals.At(i-1, j)
			if position == 0 {
				continue
			}
			prev := closes.At(i-1, j)
			returns.Set(i, j, position*(closes.At(i, j)-prev)/prev)
		}
	}
	return returns, nil
}

// CumulativeReturns compounds daily returns per ticker: prod(1 + r) - 1.
func CumulativeReturns(daily mat.Matrix) *mat.Dense {
	rows, cols := daily.Dims()
	cumulative := mat.NewDense(rows, cols, nil)
	for j := 0; j < cols; j++ {
		growth := 1.0
		for i := 0; i < rows; i++ {
			growth *= 1 + daily.At(i, j)
			cumulative.Set(i, j, growth-1)
		}
	}
	return cumulative
}

// Backtest runs the whole pipeline over a price table.
func Backtest(prices *PriceTable, threshold float64) (*mat.Dense, error) {
	signals, err := Signals(prices.Closes, threshold)
	if err != nil {
		return nil, err
	}
	daily, err := DailyReturns(prices.Closes, signals)
	if err != nil {
		return nil, err
	}
	return CumulativeReturns(daily), nil
}
