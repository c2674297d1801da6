// Package chart turns a composed price series into a two-line forecast chart
// and owns the single live chart instance.
package chart

import (
	"fmt"

	"golang-stock-forecast/internal/forecaster/series"
	"golang-stock-forecast/pkg/utils"

	"github.com/shopspring/decimal"
)

const (
	HistoricalLabel = "Historical Price"
	PredictedLabel  = "Predicted Price"

	// InteractionIndex shows every dataset's value at the hovered label.
	InteractionIndex = "index"
)

// RGBA is a CSS color with alpha.
type RGBA struct {
	R, G, B uint8
	A       float64
}

// CSS renders the color as rgba(...).
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %.1f)", c.R, c.G, c.B, c.A)
}

// Hex renders the color as #rrggbb, ignoring alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WithAlpha returns the color with a different alpha.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Gradient is a vertical area fill from Top to Bottom.
type Gradient struct {
	Top    RGBA
	Bottom RGBA
}

// Dataset is one styled line.
type Dataset struct {
	Label            string
	Values           []decimal.NullDecimal
	Color            RGBA
	Fill             Gradient
	BorderWidth      int
	BorderDash       []int
	PointRadius      int
	PointHoverRadius int
	Tension          float64
}

// Dashed reports whether the line is drawn with a dash pattern.
func (d Dataset) Dashed() bool {
	return len(d.BorderDash) > 0
}

// Options are the chart-wide settings.
type Options struct {
	InteractionMode string
	Intersect       bool
	LegendDisplay   bool
	LegendPosition  string
	MaxXTicks       int
	// FormatValue is used for both y-axis ticks and tooltip values.
	FormatValue func(decimal.Decimal) string
}

// Config fully describes a chart independent of the surface drawing it.
type Config struct {
	Title    string
	Labels   []string
	Datasets []Dataset
	Options  Options
	// Seam is the label index of the last observed point, -1 when none.
	Seam int
}

var (
	historicalColor = RGBA{R: 99, G: 102, B: 241, A: 1}
	predictedColor  = RGBA{R: 139, G: 92, B: 246, A: 1}
)

// BuildConfig styles a composed series: solid historical line, dashed
// forecast line, both with a fade-to-transparent fill on a shared label axis.
func BuildConfig(title string, c series.Composed) Config {
	return Config{
		Title:  title,
		Labels: c.Labels,
		Seam:   c.HistoricalLen() - 1,
		Datasets: []Dataset{
			{
				Label:            HistoricalLabel,
				Values:           c.Historical,
				Color:            historicalColor,
				Fill:             Gradient{Top: historicalColor.WithAlpha(0.3), Bottom: historicalColor.WithAlpha(0)},
				BorderWidth:      2,
				PointRadius:      0,
				PointHoverRadius: 4,
				Tension:          0.4,
			},
			{
				Label:            PredictedLabel,
				Values:           c.Future,
				Color:            predictedColor,
				Fill:             Gradient{Top: predictedColor.WithAlpha(0.3), Bottom: predictedColor.WithAlpha(0)},
				BorderWidth:      2,
				BorderDash:       []int{5, 5},
				PointRadius:      0,
				PointHoverRadius: 4,
				Tension:          0.4,
			},
		},
		Options: Options{
			InteractionMode: InteractionIndex,
			Intersect:       false,
			LegendDisplay:   true,
			LegendPosition:  "top",
			MaxXTicks:       8,
			FormatValue:     utils.Currency,
		},
	}
}

// TooltipLines returns one "Label: $x.xx" line per dataset at label index i,
// skipping datasets with no value there.
func (c Config) TooltipLines(i int) []string {
	var lines []string
	for _, ds := range c.Datasets {
		if i < 0 || i >= len(ds.Values) || !ds.Values[i].Valid {
			continue
		}
		lines = append(lines, ds.Label+": "+c.Options.FormatValue(ds.Values[i].Decimal))
	}
	return lines
}

// ValueRange returns the min and max over all valid values. ok is false when
// there are none.
func (c Config) ValueRange() (lo, hi decimal.Decimal, ok bool) {
	for _, ds := range c.Datasets {
		for _, v := range ds.Values {
			if !v.Valid {
				continue
			}
			if !ok {
				lo, hi, ok = v.Decimal, v.Decimal, true
				continue
			}
			if v.Decimal.LessThan(lo) {
				lo = v.Decimal
			}
			if v.Decimal.GreaterThan(hi) {
				hi = v.Decimal
			}
		}
	}
	return lo, hi, ok
}
