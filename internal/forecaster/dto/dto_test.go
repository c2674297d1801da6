package dto

import (
	"encoding/json"
	"testing"
	"time"

	"golang-stock-forecast/internal/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictResponse_DecodesOriginalPayload(t *testing.T) {
	body := `{
		"ticker": "AAPL",
		"current_price": 150.25,
		"predicted_price": 155.5,
		"price_change": 5.25,
		"percent_change": 3.49,
		"prediction_days": 2,
		"historical_data": {"dates": ["2024-01-01", "2024-01-02"], "prices": [149.0, 150.25]},
		"future_data": {"dates": ["2024-01-03", "2024-01-04"], "prices": [152.1, 155.5]},
		"timestamp": "2024-01-02T18:30:00Z"
	}`

	var resp PredictResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	result := resp.ToEntity()
	assert.Equal(t, "AAPL", result.Ticker)
	assert.Equal(t, "150.25", result.CurrentPrice.String())
	assert.Equal(t, "3.49", result.PercentChange.String())
	assert.Equal(t, []string{"2024-01-03", "2024-01-04"}, result.Future.Dates)
	assert.Equal(t, "155.5", result.Future.Prices[1].String())
	assert.Equal(t, 2024, result.GeneratedAt.Year())
	require.NoError(t, result.Validate())
}

func TestPredictResponse_OptionalFieldsAbsent(t *testing.T) {
	body := `{"current_price": 1, "predicted_price": 2, "price_change": 1, "percent_change": 100,
		"historical_data": {"dates": [], "prices": []}, "future_data": {"dates": [], "prices": []}}`

	var resp PredictResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	result := resp.ToEntity()
	assert.True(t, result.GeneratedAt.IsZero())
	assert.Empty(t, result.Ticker)
}

func TestStockInfoResponse_MarketCapForms(t *testing.T) {
	var numeric StockInfoResponse
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Apple Inc.","sector":"Technology","industry":"Consumer Electronics","market_cap":2950000000000}`), &numeric))
	assert.Equal(t, "2950000000000", numeric.ToEntity().MarketCap)

	var text StockInfoResponse
	require.NoError(t, json.Unmarshal([]byte(`{"name":"X","sector":"N/A","industry":"N/A","market_cap":"N/A"}`), &text))
	assert.Equal(t, "N/A", text.ToEntity().MarketCap)
}

func TestTimestamp_Layouts(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{name: "naive with micros", raw: `"2025-10-19T12:34:56.123456"`, want: time.Date(2025, 10, 19, 12, 34, 56, 123456000, time.UTC)},
		{name: "naive whole seconds", raw: `"2025-10-19T12:34:56"`, want: time.Date(2025, 10, 19, 12, 34, 56, 0, time.UTC)},
		{name: "zoned", raw: `"2024-01-02T18:30:00Z"`, want: time.Date(2024, 1, 2, 18, 30, 0, 0, time.UTC)},
		{name: "null", raw: `null`},
		{name: "garbage", raw: `"yesterday"`},
		{name: "not a string", raw: `1729341296`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &ts))
			assert.True(t, tt.want.Equal(ts.Time), "got %s", ts.Time)
		})
	}
}

func TestPredictResponse_UnparseableTimestampStillDecodes(t *testing.T) {
	body := `{"current_price": 1, "predicted_price": 2, "price_change": 1, "percent_change": 100,
		"historical_data": {"dates": [], "prices": []}, "future_data": {"dates": [], "prices": []},
		"timestamp": "19/10/2025"}`

	var resp PredictResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.True(t, resp.ToEntity().GeneratedAt.IsZero())
}

func TestNewPredictResponse_WritesNumbers(t *testing.T) {
	result := entity.PredictionResult{
		Ticker:         "AAPL",
		CurrentPrice:   decimal.RequireFromString("150.25"),
		PredictedPrice: decimal.RequireFromString("155.5"),
		PriceChange:    decimal.RequireFromString("5.25"),
		PercentChange:  decimal.RequireFromString("3.49"),
		Historical:     entity.TimeSeries{Dates: []string{"2024-01-01"}, Prices: []decimal.Decimal{decimal.RequireFromString("150.25")}},
		Future:         entity.TimeSeries{Dates: []string{"2024-01-02"}, Prices: []decimal.Decimal{decimal.RequireFromString("155.5")}},
	}

	data, err := json.Marshal(NewPredictResponse(result))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"current_price":150.25`)
	assert.Contains(t, string(data), `"future_data":{"dates":["2024-01-02"],"prices":[155.5]}`)

	var back PredictResponse
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.ToEntity().PredictedPrice.Equal(result.PredictedPrice))
}
