package dto

import "golang-stock-forecast/internal/entity"

// StockInfoResponse is the success body of GET /api/stock-info/{ticker}.
// market_cap is a number for known companies and the string "N/A" otherwise,
// so it is kept as raw JSON text.
type StockInfoResponse struct {
	Ticker      string    `json:"ticker,omitempty"`
	Name        string    `json:"name"`
	Sector      string    `json:"sector"`
	Industry    string    `json:"industry"`
	Currency    string    `json:"currency,omitempty"`
	MarketCap   MarketCap `json:"market_cap,omitempty"`
	Description string    `json:"description,omitempty"`
}

// ToEntity maps the wire response to a StockInfo.
func (r StockInfoResponse) ToEntity() entity.StockInfo {
	return entity.StockInfo{
		Ticker:      r.Ticker,
		Name:        r.Name,
		Sector:      r.Sector,
		Industry:    r.Industry,
		Currency:    r.Currency,
		MarketCap:   string(r.MarketCap),
		Description: r.Description,
	}
}

// NewStockInfoResponse maps a StockInfo to its wire form.
func NewStockInfoResponse(info entity.StockInfo) StockInfoResponse {
	return StockInfoResponse{
		Ticker:      info.Ticker,
		Name:        info.Name,
		Sector:      info.Sector,
		Industry:    info.Industry,
		Currency:    info.Currency,
		MarketCap:   MarketCap(info.MarketCap),
		Description: info.Description,
	}
}
