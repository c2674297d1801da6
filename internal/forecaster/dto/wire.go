package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// naiveLayout is an ISO-8601 timestamp without a zone offset.
const naiveLayout = "2006-01-02T15:04:05.999999"

// Price is a decimal that is written as a bare JSON number. It reads both
// numbers and quoted strings.
type Price struct {
	decimal.Decimal
}

// MarshalJSON implements json.Marshaler.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.Decimal.String()), nil
}

func toPrices(values []decimal.Decimal) []Price {
	if values == nil {
		return nil
	}
	out := make([]Price, len(values))
	for i, v := range values {
		out[i] = Price{v}
	}
	return out
}

func fromPrices(values []Price) []decimal.Decimal {
	if values == nil {
		return nil
	}
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = v.Decimal
	}
	return out
}

// Timestamp is a generation time. Zoned RFC 3339 and naive ISO-8601 values
// are accepted; anything else decodes to the zero time.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, naiveLayout} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return nil
}
