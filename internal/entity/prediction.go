package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrSeriesLengthMismatch is returned when a series has a different number of dates and prices.
var ErrSeriesLengthMismatch = errors.New("series dates and prices differ in length")

// PredictionRequest is a normalized forecast request.
type PredictionRequest struct {
	Ticker      string
	HorizonDays int
}

// TimeSeries is an ordered, index-aligned sequence of date labels and prices.
type TimeSeries struct {
	Dates  []string
	Prices []decimal.Decimal
}

// Len returns the number of points in the series.
func (s TimeSeries) Len() int {
	return len(s.Dates)
}

// Validate checks that dates and prices are index-aligned.
func (s TimeSeries) Validate() error {
	if len(s.Dates) != len(s.Prices) {
		return fmt.Errorf("%w: %d dates, %d prices", ErrSeriesLengthMismatch, len(s.Dates), len(s.Prices))
	}
	return nil
}

// PredictionResult is the outcome of one successful prediction request.
// It is replaced wholesale by the next successful request.
type PredictionResult struct {
	Ticker         string
	CurrentPrice   decimal.Decimal
	PredictedPrice decimal.Decimal
	PriceChange    decimal.Decimal
	PercentChange  decimal.Decimal
	PredictionDays int
	Historical     TimeSeries
	Future         TimeSeries
	GeneratedAt    time.Time
}

// Validate checks both series.
func (r PredictionResult) Validate() error {
	if err := r.Historical.Validate(); err != nil {
		return fmt.Errorf("historical: %w", err)
	}
	if err := r.Future.Validate(); err != nil {
		return fmt.Errorf("future: %w", err)
	}
	return nil
}
