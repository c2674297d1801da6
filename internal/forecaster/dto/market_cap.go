package dto

import (
	"bytes"
	"encoding/json"
)

// MarketCap accepts either a JSON number or a JSON string and keeps its text.
type MarketCap string

// UnmarshalJSON implements json.Unmarshaler.
func (m *MarketCap) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = MarketCap(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*m = MarketCap(n.String())
	return nil
}
