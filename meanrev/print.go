package meanrev

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"gonum.org/v1/gonum/mat"
)

// PrintTail writes the last n rows of a returns matrix, gains in green and
// losses in red.
func PrintTail(w io.Writer, prices *PriceTable, returns mat.Matrix, n int) {
	greenColor := color.New(color.FgGreen).SprintFunc()
	redColor := color.New(color.FgRed).SprintFunc()
	defaultColor := color.New(color.FgBlue).SprintFunc()

	rows, cols := returns.Dims()
	start := rows - n
	if start < 0 {
		start = 0
	}

	fmt.Fprintf(w, "%-10s", "Date")
	for _, ticker := range prices.Tickers {
		fmt.Fprintf(w, " %12s", ticker)
	}
	fmt.Fprintln(w)

	for i := start; i < rows; i++ {
		fmt.Fprintf(w, "%-10s", prices.Dates[i].Format(kDateLayout))
		for j := 0; j < cols; j++ {
			value := returns.At(i, j)
			paint := defaultColor
			if value > 0 {
				paint = greenColor
			} else if value < 0 {
				paint = redColor
			}
			fmt.Fprintf(w, " %s", paint(fmt.Sprintf("%12.6f", value)))
		}
		fmt.Fprintln(w)
	}
}
