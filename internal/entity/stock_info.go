package entity

// StockInfo is best-effort company metadata shown next to a prediction.
type StockInfo struct {
	Ticker      string
	Name        string
	Sector      string
	Industry    string
	Currency    string
	MarketCap   string
	Description string
}
