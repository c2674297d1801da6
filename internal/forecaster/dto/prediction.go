package dto

import (
	"golang-stock-forecast/internal/entity"
)

// PredictRequest is the body of POST /api/predict.
type PredictRequest struct {
	Ticker string `json:"ticker"`
	Days   int    `json:"days"`
}

// SeriesDTO is a dates/prices pair as it appears on the wire.
type SeriesDTO struct {
	Dates  []string `json:"dates"`
	Prices []Price  `json:"prices"`
}

// PredictResponse is the success body of POST /api/predict.
type PredictResponse struct {
	Ticker         string     `json:"ticker,omitempty"`
	CurrentPrice   Price      `json:"current_price"`
	PredictedPrice Price      `json:"predicted_price"`
	PriceChange    Price      `json:"price_change"`
	PercentChange  Price      `json:"percent_change"`
	PredictionDays int        `json:"prediction_days,omitempty"`
	HistoricalData SeriesDTO  `json:"historical_data"`
	FutureData     SeriesDTO  `json:"future_data"`
	Timestamp      *Timestamp `json:"timestamp,omitempty"`
}

// ErrorResponse is the error body returned by the prediction API.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ToEntity maps the wire response to a PredictionResult.
func (r PredictResponse) ToEntity() entity.PredictionResult {
	result := entity.PredictionResult{
		Ticker:         r.Ticker,
		CurrentPrice:   r.CurrentPrice.Decimal,
		PredictedPrice: r.PredictedPrice.Decimal,
		PriceChange:    r.PriceChange.Decimal,
		PercentChange:  r.PercentChange.Decimal,
		PredictionDays: r.PredictionDays,
		Historical:     entity.TimeSeries{Dates: r.HistoricalData.Dates, Prices: fromPrices(r.HistoricalData.Prices)},
		Future:         entity.TimeSeries{Dates: r.FutureData.Dates, Prices: fromPrices(r.FutureData.Prices)},
	}
	if r.Timestamp != nil {
		result.GeneratedAt = r.Timestamp.Time
	}
	return result
}

// NewPredictResponse maps a PredictionResult to its wire form.
func NewPredictResponse(r entity.PredictionResult) PredictResponse {
	return PredictResponse{
		Ticker:         r.Ticker,
		CurrentPrice:   Price{r.CurrentPrice},
		PredictedPrice: Price{r.PredictedPrice},
		PriceChange:    Price{r.PriceChange},
		PercentChange:  Price{r.PercentChange},
		PredictionDays: r.PredictionDays,
		HistoricalData: SeriesDTO{Dates: r.Historical.Dates, Prices: toPrices(r.Historical.Prices)},
		FutureData:     SeriesDTO{Dates: r.Future.Dates, Prices: toPrices(r.Future.Prices)},
		Timestamp:      &Timestamp{r.GeneratedAt},
	}
}
