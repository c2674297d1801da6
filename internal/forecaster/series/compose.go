// Package series merges observed and forecast price series onto one chart axis.
package series

import (
	"errors"
	"fmt"

	"golang-stock-forecast/internal/entity"

	"github.com/shopspring/decimal"
)

// ErrMisaligned is returned when an input series has unequal dates and prices.
var ErrMisaligned = errors.New("series is not index-aligned")

// Composed is a chart-ready dataset. All three slices share one length; at
// every index exactly one of Historical and Future holds a valid value.
type Composed struct {
	Labels     []string
	Historical []decimal.NullDecimal
	Future     []decimal.NullDecimal
}

// Len returns the number of labels.
func (c Composed) Len() int {
	return len(c.Labels)
}

// HistoricalLen returns the number of leading points that belong to the
// observed series.
func (c Composed) HistoricalLen() int {
	n := 0
	for _, v := range c.Historical {
		if v.Valid {
			n++
		}
	}
	return n
}

// Compose concatenates historical then future labels and null-pads each value
// series over the other's span. The boundary point is neither duplicated nor
// interpolated.
func Compose(historical, future entity.TimeSeries) (Composed, error) {
	if err := historical.Validate(); err != nil {
		return Composed{}, fmt.Errorf("%w: historical: %v", ErrMisaligned, err)
	}
	if err := future.Validate(); err != nil {
		return Composed{}, fmt.Errorf("%w: future: %v", ErrMisaligned, err)
	}

	h, f := historical.Len(), future.Len()
	out := Composed{
		Labels:     make([]string, 0, h+f),
		Historical: make([]decimal.NullDecimal, h+f),
		Future:     make([]decimal.NullDecimal, h+f),
	}
	out.Labels = append(out.Labels, historical.Dates...)
	out.Labels = append(out.Labels, future.Dates...)

	for i, p := range historical.Prices {
		out.Historical[i] = decimal.NewNullDecimal(p)
	}
	for i, p := range future.Prices {
		out.Future[h+i] = decimal.NewNullDecimal(p)
	}
	return out, nil
}
