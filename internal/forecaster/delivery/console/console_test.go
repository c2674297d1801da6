package console

import (
	"bytes"
	"testing"
	"time"

	"golang-stock-forecast/internal/entity"
	"golang-stock-forecast/internal/forecaster/ui"

	"github.com/stretchr/testify/assert"
)

func TestRegions_WritesTransitions(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegions(&buf)

	r.SetSubmitEnabled(false)
	r.SetBusy(true)
	r.SetBusy(true)
	r.ShowResults(ui.Summary{
		Ticker:         "AAPL",
		CurrentPrice:   "$150.00",
		PredictedPrice: "$155.25",
		Change:         "$5.25 (+3.50%)",
		Positive:       true,
		Days:           30,
		GeneratedAt:    time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC),
	})
	r.ShowInfo(entity.StockInfo{Ticker: "AAPL", Name: "Apple Inc.", Sector: "Technology"})
	r.SetBusy(false)

	out := buf.String()
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("Generating prediction...")))
	assert.Contains(t, out, "AAPL prediction")
	assert.Contains(t, out, "$150.00")
	assert.Contains(t, out, "$155.25")
	assert.Contains(t, out, "$5.25 (+3.50%)")
	assert.Contains(t, out, "Predicted (30d)")
	assert.Contains(t, out, "2024-06-03 09:30:00")
	assert.Contains(t, out, "Apple Inc. (AAPL)")
	assert.Contains(t, out, "Technology")
	assert.NotContains(t, out, "Industry")
	assert.True(t, r.ResultsVisible())
}

func TestRegions_ErrorBanner(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegions(&buf)

	r.ShowError("Unknown ticker")
	assert.Contains(t, buf.String(), "Error: Unknown ticker")
	assert.Equal(t, "Unknown ticker", r.ErrorMessage())

	r.HideError()
	assert.Empty(t, r.ErrorMessage())
}

func TestRegions_PrintChartSkipsEmptyView(t *testing.T) {
	var buf bytes.Buffer
	r := NewRegions(&buf)

	r.PrintChart("  \n")
	assert.Zero(t, buf.Len())

	r.PrintChart("chart")
	assert.Equal(t, "chart\n", buf.String())
}
