package service

import (
	"strconv"
	"strings"

	"golang-stock-forecast/internal/entity"
	"golang-stock-forecast/pkg/common"
)

// NormalizeTickerInput is the as-you-type transform applied to the ticker field.
func NormalizeTickerInput(s string) string {
	return strings.ToUpper(s)
}

// ParseInput turns raw form text into a PredictionRequest. An empty day count
// takes the form default; bounds on the day count are left to the form control.
func ParseInput(rawTicker, rawDays string) (entity.PredictionRequest, error) {
	ticker := strings.ToUpper(strings.TrimSpace(rawTicker))
	if ticker == "" {
		return entity.PredictionRequest{}, ErrEmptyTicker
	}

	days := common.DefaultHorizonDays
	if text := strings.TrimSpace(rawDays); text != "" {
		n, err := strconv.Atoi(text)
		if err != nil {
			return entity.PredictionRequest{}, &ValidationError{Field: "days", Message: "Invalid number of days", Err: err}
		}
		days = n
	}

	return entity.PredictionRequest{Ticker: ticker, HorizonDays: days}, nil
}
