package utils

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Currency formats d as US dollars with two decimals and thousands grouping,
// e.g. "$1,234.50" or "-$3.10".
func Currency(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	f, _ := d.Round(2).Float64()
	return sign + "$" + humanize.FormatFloat("#,###.##", f)
}

// Percent formats d with two decimals and an explicit sign, e.g. "+2.50%".
func Percent(d decimal.Decimal) string {
	if d.IsNegative() {
		return d.StringFixed(2) + "%"
	}
	return "+" + d.StringFixed(2) + "%"
}
