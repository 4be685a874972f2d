package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/golang/glog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var errNoRows = errors.New("no priced rows to chart")

const (
	kChartWidth  = 8 * vg.Inch
	kChartHeight = 5 * vg.Inch
)

// WritePNG draws both price curves against volatility.
func (self *Table) WritePNG(w io.Writer) error {
	if len(self.Rows) == 0 {
		return errNoRows
	}

	p := plot.New()
	p.Title.Text = self.Title()
	p.X.Label.Text = "Volatility (σ)"
	p.Y.Label.Text = "Option Price (USD)"

	vols, analytic, lattice := self.Series()
	analyticXYs := make(plotter.XYs, len(vols))
	latticeXYs := make(plotter.XYs, len(vols))
	for i := range vols {
		analyticXYs[i].X, analyticXYs[i].Y = vols[i], analytic[i]
		latticeXYs[i].X, latticeXYs[i].Y = vols[i], lattice[i]
	}

	err := plotutil.AddLinePoints(p,
		self.AnalyticName, analyticXYs,
		self.LatticeName, latticeXYs)
	if err != nil {
		glog.Error("Adding chart lines failed. ", err)
		return err
	}

	writer, err := p.WriterTo(kChartWidth, kChartHeight, "png")
	if err != nil {
		glog.Error("Creating PNG writer failed. ", err)
		return err
	}
	_, err = writer.WriteTo(w)
	return err
}

// WriteHTML renders an interactive line chart of both price curves.
func (self *Table) WriteHTML(w io.Writer) error {
	if len(self.Rows) == 0 {
		return errNoRows
	}

	vols, analytic, lattice := self.Series()
	labels := make([]string, len(vols))
	analyticData := make([]opts.LineData, len(vols))
	latticeData := make([]opts.LineData, len(vols))
	for i := range vols {
		labels[i] = fmt.Sprintf("%.2f", vols[i])
		analyticData[i] = opts.LineData{Value: analytic[i]}
		latticeData[i] = opts.LineData{Value: lattice[i]}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: self.Title(),
			Subtitle: fmt.Sprintf("S=%v K=%v r=%v T=%v",
				self.Params.Spot, self.Params.Strike, self.Params.Rate,
				self.Params.Expiry),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Volatility"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "USD"}),
	)
	line.SetXAxis(labels).
		AddSeries(self.AnalyticName, analyticData).
		AddSeries(self.LatticeName, latticeData)
	return line.Render(w)
}
