package common

import "time"

const (
	PredictPath   = "/api/predict"
	StockInfoPath = "/api/stock-info/"
	HealthPath    = "/health"

	HeaderRequestID = "X-Request-ID"

	DefaultHorizonDays = 30
	MaxHorizonDays     = 90
	HistoryDays        = 90

	DateLayout = "2006-01-02"
)

const (
	ErrorDismissAfter = 5 * time.Second
	StockInfoCacheTTL = 10 * time.Minute
)
