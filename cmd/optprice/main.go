package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/joshi-prasad/optprice/config"
	"github.com/joshi-prasad/optprice/report"
	"github.com/spf13/pflag"
)

func main() {
	flag.Set("alsologtostderr", "true")
	err := run(os.Args[1:], os.Stdin, os.Stdout)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		glog.Error("optprice failed. ", err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Flush()
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := config.NewPricerFlagSet()
	fs.AddGoFlagSet(flag.CommandLine)
	if err := fs.Parse(args); err != nil {
		return err
	}
	// glog reads its settings from the Go flag set.
	flag.CommandLine.Parse([]string{})

	cfg, err := config.LoadPricer(fs)
	if err != nil {
		return err
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	kind, err := resolveKind(cfg.Kind, stdin, stdout)
	if err != nil {
		return err
	}
	policy, err := report.ParseErrorPolicy(cfg.OnError)
	if err != nil {
		return err
	}

	sweep := report.NewSweep(cfg.Params(), kind, cfg.Steps)
	sweep.Volatilities = report.Volatilities(cfg.VolMin, cfg.VolMax, cfg.VolCount)
	sweep.Policy = policy
	sweep.Workers = cfg.Workers

	glog.Infof("Sweeping %d volatilities for a %s, S=%v K=%v r=%v T=%v N=%d, on error %s.",
		len(sweep.Volatilities), kind, cfg.Spot, cfg.Strike, cfg.Rate,
		cfg.Expiry, cfg.Steps, policy)

	table, err := sweep.Run()
	if table != nil {
		fmt.Fprintln(stdout)
		table.Print(stdout)
		fmt.Fprintln(stdout)
	}
	if err != nil {
		return err
	}

	if err := writeChart(cfg.ChartPNG, table.WritePNG); err != nil {
		return err
	}
	return writeChart(cfg.ChartHTML, table.WriteHTML)
}

func writeChart(path string, render func(io.Writer) error) error {
	if path == "" {
		return nil
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(file); err != nil {
		file.Close()
		if rmErr := os.Remove(path); rmErr != nil {
			glog.Error("Removing partial chart failed. ", rmErr)
		}
		return fmt.Errorf("rendering %s failed: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return err
	}
	glog.Info("Wrote chart ", path)
	return nil
}
