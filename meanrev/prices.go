// Package meanrev backtests a cross-sectional mean-reversion rule over a
// table of daily adjusted closes.
package meanrev

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"
	"gonum.org/v1/gonum/mat"
)

const kDateLayout = "2006-01-02"

// PriceTable holds one row per date and one column per ticker.
type PriceTable struct {
	Dates   []time.Time
	Tickers []string
	Closes  *mat.Dense
}

func ReadFile(path string) (*PriceTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadCSV(file)
}

// LoadCSV parses a header of Date followed by tickers, then one row of
// closes per date in ascending order.
func LoadCSV(r io.Reader) (*PriceTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("price file is empty")
	}
	if err != nil {
		return nil, err
	}
	if len(header) < 2 || !strings.EqualFold(header[0], "Date") {
		msg := fmt.Sprintf("Unexpected price header %v. "+
			"Expected Date followed by tickers.", header)
		glog.Error(msg)
		return nil, errors.New(msg)
	}
	tickers := header[1:]

	dates := []time.Time{}
	values := []float64{}
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		date, err := time.Parse(kDateLayout, row[0])
		if err != nil {
			msg := fmt.Sprintf("Parsing date %q on line %d failed.", row[0], line)
			glog.Error(msg)
			return nil, errors.New(msg)
		}
		if len(dates) > 0 && !date.After(dates[len(dates)-1]) {
			msg := fmt.Sprintf("Date %s on line %d is not after the previous row.",
				row[0], line)
			glog.Error(msg)
			return nil, errors.New(msg)
		}
		for i, field := range row[1:] {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil || value <= 0 {
				msg := fmt.Sprintf("Close %q for %s on line %d is not a positive number.",
					field, tickers[i], line)
				glog.Error(msg)
				return nil, errors.New(msg)
			}
			values = append(values, value)
		}
		dates = append(dates, date)
	}

	if len(dates) == 0 {
		return nil, errors.New("price file has no rows")
	}
	glog.Infof("Loaded %d rows for %d tickers.", len(dates), len(tickers))
	return &PriceTable{
		Dates:   dates,
		Tickers: tickers,
		Closes:  mat.NewDense(len(dates), len(tickers), values),
	}, nil
}
