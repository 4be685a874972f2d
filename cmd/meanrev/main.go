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
	"github.com/joshi-prasad/optprice/meanrev"
	"github.com/spf13/pflag"
)

func main() {
	flag.Set("alsologtostderr", "true")
	err := run(os.Args[1:], os.Stdout)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		glog.Error("meanrev failed. ", err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Flush()
}

func run(args []string, stdout io.Writer) error {
	fs := config.NewMeanRevFlagSet()
	fs.AddGoFlagSet(flag.CommandLine)
	if err := fs.Parse(args); err != nil {
		return err
	}
	flag.CommandLine.Parse([]string{})

	cfg, err := config.LoadMeanRev(fs)
	if err != nil {
		return err
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	prices, err := meanrev.ReadFile(cfg.Prices)
	if err != nil {
		return err
	}
	cumulative, err := meanrev.Backtest(prices, cfg.Threshold)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "Cumulative Returns:")
	meanrev.PrintTail(stdout, prices, cumulative, cfg.Tail)
	return nil
}
