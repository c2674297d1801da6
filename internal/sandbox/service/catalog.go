package service

import "golang-stock-forecast/internal/entity"

// listing is a ticker the sandbox can forecast.
type listing struct {
	info      entity.StockInfo
	basePrice float64
	// drift is the mean daily return of the generated history.
	drift float64
}

var catalog = map[string]listing{
	"AAPL": {
		info:      entity.StockInfo{Name: "Apple Inc.", Sector: "Technology", Industry: "Consumer Electronics", Currency: "USD", MarketCap: "3400000000000", Description: "Apple Inc. designs, manufactures, and markets smartphones, personal computers, tablets, wearables, and accessories worldwide."},
		basePrice: 190,
		drift:     0.0008,
	},
	"MSFT": {
		info:      entity.StockInfo{Name: "Microsoft Corporation", Sector: "Technology", Industry: "Software - Infrastructure", Currency: "USD", MarketCap: "3100000000000", Description: "Microsoft Corporation develops and supports software, services, devices, and solutions worldwide."},
		basePrice: 410,
		drift:     0.0006,
	},
	"GOOGL": {
		info:      entity.StockInfo{Name: "Alphabet Inc.", Sector: "Communication Services", Industry: "Internet Content & Information", Currency: "USD", MarketCap: "2100000000000", Description: "Alphabet Inc. offers various products and platforms in the United States, Europe, the Middle East, Africa, the Asia-Pacific, Canada, and Latin America."},
		basePrice: 170,
		drift:     0.0005,
	},
	"AMZN": {
		info:      entity.StockInfo{Name: "Amazon.com, Inc.", Sector: "Consumer Cyclical", Industry: "Internet Retail", Currency: "USD", MarketCap: "1900000000000", Description: "Amazon.com, Inc. engages in the retail sale of consumer products, advertising, and subscriptions service through online and physical stores."},
		basePrice: 180,
		drift:     0.0007,
	},
	"TSLA": {
		info:      entity.StockInfo{Name: "Tesla, Inc.", Sector: "Consumer Cyclical", Industry: "Auto Manufacturers", Currency: "USD", MarketCap: "700000000000", Description: "Tesla, Inc. designs, develops, manufactures, leases, and sells electric vehicles, and energy generation and storage systems."},
		basePrice: 220,
		drift:     -0.0004,
	},
	"NVDA": {
		info:      entity.StockInfo{Name: "NVIDIA Corporation", Sector: "Technology", Industry: "Semiconductors", Currency: "USD", MarketCap: "2900000000000", Description: "NVIDIA Corporation provides graphics and compute and networking solutions in the United States, Taiwan, China, and internationally."},
		basePrice: 120,
		drift:     0.0015,
	},
}
