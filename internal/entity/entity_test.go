package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTimeSeriesValidate(t *testing.T) {
	ok := TimeSeries{Dates: []string{"2024-01-01"}, Prices: []decimal.Decimal{decimal.NewFromInt(1)}}
	assert.NoError(t, ok.Validate())
	assert.Equal(t, 1, ok.Len())

	bad := TimeSeries{Dates: []string{"2024-01-01", "2024-01-02"}, Prices: []decimal.Decimal{decimal.NewFromInt(1)}}
	assert.ErrorIs(t, bad.Validate(), ErrSeriesLengthMismatch)
}

func TestPredictionResultValidate(t *testing.T) {
	r := PredictionResult{
		Historical: TimeSeries{Dates: []string{"a"}, Prices: []decimal.Decimal{decimal.Zero}},
		Future:     TimeSeries{Dates: []string{"b"}},
	}
	err := r.Validate()
	assert.ErrorIs(t, err, ErrSeriesLengthMismatch)
	assert.Contains(t, err.Error(), "future")
}
