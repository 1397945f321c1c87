// Package csv loads bar data from CSV files, one file per symbol with rows of
// timestamp,open,high,low,close,adj_close,volume
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/quantfoundry/backtester/data"
	"github.com/quantfoundry/backtester/data/kline"
	"github.com/shopspring/decimal"
)

const timeFormat = "2006-01-02 15:04:05"

var errBadRow = errors.New("csv row could not be parsed")

// LoadData reads the supplied symbol to file mapping and returns a data
// handler over all bars at or after startDate
func LoadData(files map[string]string, startDate time.Time) (*data.Base, error) {
	if len(files) == 0 {
		return nil, kline.ErrNoBars
	}
	streams := make(map[string][]data.Bar, len(files))
	for symbol, path := range files {
		bars, err := loadFile(path, startDate)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", symbol, err)
		}
		streams[symbol] = bars
	}
	return kline.NewFromBars(streams)
}

func loadFile(path string, startDate time.Time) ([]data.Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	var bars []data.Bar
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(bars) == 0 && strings.EqualFold(row[0], "timestamp") {
			// optional header row
			continue
		}
		bar, err := parseRow(row)
		if err != nil {
			return nil, err
		}
		if bar.Time.Before(startDate) {
			continue
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

func parseRow(row []string) (data.Bar, error) {
	if len(row) != 7 {
		return data.Bar{}, fmt.Errorf("%w: expected 7 columns, have %v", errBadRow, len(row))
	}
	ts, err := time.Parse(timeFormat, row[0])
	if err != nil {
		return data.Bar{}, fmt.Errorf("%w: %v", errBadRow, err)
	}
	fields := make([]decimal.Decimal, 6)
	for i := range fields {
		fields[i], err = decimal.NewFromString(row[i+1])
		if err != nil {
			return data.Bar{}, fmt.Errorf("%w: %v", errBadRow, err)
		}
	}
	return data.Bar{
		Time:     ts,
		Open:     fields[0],
		High:     fields[1],
		Low:      fields[2],
		Close:    fields[3],
		AdjClose: fields[4],
		Volume:   fields[5],
	}, nil
}
