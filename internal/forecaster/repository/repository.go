package repository

import (
	"context"

	"golang-stock-forecast/internal/entity"
)

type PredictionRepository interface {
	Predict(ctx context.Context, req entity.PredictionRequest) (*entity.PredictionResult, error)
}

type StockInfoRepository interface {
	GetStockInfo(ctx context.Context, ticker string) (*entity.StockInfo, error)
}
