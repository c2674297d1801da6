package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang-stock-forecast/internal/entity"
	"golang-stock-forecast/internal/forecaster/config"
	"golang-stock-forecast/internal/forecaster/dto"
	"golang-stock-forecast/pkg/common"
	"golang-stock-forecast/pkg/logger"

	"github.com/patrickmn/go-cache"
)

type stockInfoRepository struct {
	cfg           *config.Config
	log           *logger.Logger
	httpClient    *http.Client
	inmemoryCache *cache.Cache
}

func NewStockInfoRepository(cfg *config.Config, log *logger.Logger) StockInfoRepository {
	ttl := cfg.PredictionAPI.StockInfoCacheTTL
	return &stockInfoRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: cfg.PredictionAPI.Timeout,
		},
		inmemoryCache: cache.New(ttl, 2*ttl),
	}
}

func (r *stockInfoRepository) GetStockInfo(ctx context.Context, ticker string) (*entity.StockInfo, error) {
	if cached, found := r.inmemoryCache.Get(ticker); found {
		info := cached.(entity.StockInfo)
		r.log.DebugContext(ctx, "Stock info served from cache", logger.StringField("ticker", ticker))
		return &info, nil
	}

	endpoint := strings.TrimRight(r.cfg.PredictionAPI.BaseURL, "/") + common.StockInfoPath + url.PathEscape(ticker)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create stock info request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if id := logger.RequestID(ctx); id != "" {
		req.Header.Set(common.HeaderRequestID, id)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Op: "send stock info request", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrStockInfoUnavailable, resp.StatusCode)
	}

	var response dto.StockInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, &DecodeError{Err: err}
	}

	info := response.ToEntity()
	if info.Ticker == "" {
		info.Ticker = ticker
	}
	if r.cfg.PredictionAPI.StockInfoCacheTTL > 0 {
		r.inmemoryCache.Set(ticker, info, cache.DefaultExpiration)
	}
	return &info, nil
}
