package ui

import (
	"time"

	"golang-stock-forecast/internal/entity"
	"golang-stock-forecast/pkg/utils"
)

// Regions are the named display areas the manager drives. Implementations
// must be safe to call from any goroutine.
type Regions interface {
	// SetSubmitEnabled enables or disables the submit control.
	SetSubmitEnabled(enabled bool)
	// SetBusy swaps the submit label for the busy indicator and marks the
	// form container busy.
	SetBusy(busy bool)
	ShowError(message string)
	HideError()
	// ShowResults populates the results panel, reveals it and scrolls it into view.
	ShowResults(summary Summary)
	HideResults()
	ShowInfo(info entity.StockInfo)
	HideInfo()
}

// Summary is the text of the results panel cards.
type Summary struct {
	Ticker         string
	CurrentPrice   string
	PredictedPrice string
	Change         string
	Positive       bool
	Days           int
	GeneratedAt    time.Time
}

// Summarize formats a result for the results panel. The change card shows the
// absolute price change followed by the signed percent change.
func Summarize(r entity.PredictionResult) Summary {
	days := r.PredictionDays
	if days == 0 {
		days = r.Future.Len()
	}
	return Summary{
		Ticker:         r.Ticker,
		CurrentPrice:   utils.Currency(r.CurrentPrice),
		PredictedPrice: utils.Currency(r.PredictedPrice),
		Change:         utils.Currency(r.PriceChange.Abs()) + " (" + utils.Percent(r.PercentChange) + ")",
		Positive:       !r.PercentChange.IsNegative(),
		Days:           days,
		GeneratedAt:    r.GeneratedAt,
	}
}
