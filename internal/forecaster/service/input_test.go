package service

import (
	"errors"
	"testing"

	"golang-stock-forecast/internal/entity"
	"golang-stock-forecast/internal/forecaster/repository"
	"golang-stock-forecast/internal/forecaster/series"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name      string
		ticker    string
		days      string
		want      entity.PredictionRequest
		wantError string
	}{
		{name: "normalizes ticker", ticker: "  aapl ", days: "30", want: entity.PredictionRequest{Ticker: "AAPL", HorizonDays: 30}},
		{name: "keeps numeric days", ticker: "msft", days: "7", want: entity.PredictionRequest{Ticker: "MSFT", HorizonDays: 7}},
		{name: "empty days uses default", ticker: "TSLA", days: "", want: entity.PredictionRequest{Ticker: "TSLA", HorizonDays: 30}},
		{name: "empty ticker", ticker: "", days: "30", wantError: "Please enter a stock ticker symbol"},
		{name: "whitespace ticker", ticker: "   ", days: "30", wantError: "Please enter a stock ticker symbol"},
		{name: "non numeric days", ticker: "AAPL", days: "ten", wantError: "Invalid number of days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInput(tt.ticker, tt.days)
			if tt.wantError != "" {
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.wantError, verr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeTickerInput(t *testing.T) {
	assert.Equal(t, "BRK.B", NormalizeTickerInput("brk.b"))
	assert.Equal(t, "", NormalizeTickerInput(""))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "validation", err: ErrEmptyTicker, want: "Please enter a stock ticker symbol"},
		{name: "api detail", err: &repository.APIError{StatusCode: 400, Detail: "Unknown ticker"}, want: "Unknown ticker"},
		{name: "api without detail", err: &repository.APIError{StatusCode: 500}, want: "Prediction failed"},
		{name: "wrapped api", err: errors.Join(errors.New("ctx"), &repository.APIError{StatusCode: 404, Detail: "Stock ticker 'ZZZZ' not found"}), want: "Stock ticker 'ZZZZ' not found"},
		{name: "transport", err: &repository.TransportError{Op: "predict", Err: errors.New("connection refused")}, want: MessageTransportFailure},
		{name: "decode", err: &repository.DecodeError{Err: errors.New("unexpected EOF")}, want: MessageInvalidResponse},
		{name: "misaligned", err: series.ErrMisaligned, want: MessageInvalidResponse},
		{name: "render", err: &RenderError{Err: errors.New("canvas gone")}, want: MessageRenderFailure},
		{name: "other", err: errors.New("something odd"), want: "something odd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
