// Package service implements the sandbox prediction model: a deterministic
// synthetic price history per ticker and a linear drift forecast over it.
package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"golang-stock-forecast/internal/entity"
	"golang-stock-forecast/internal/sandbox/config"
	"golang-stock-forecast/pkg/common"
	"golang-stock-forecast/pkg/logger"
	"golang-stock-forecast/pkg/utils"

	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

const descriptionLimit = 200

// PredictionService serves forecasts and company profiles.
type PredictionService interface {
	Predict(ctx context.Context, req entity.PredictionRequest) (*entity.PredictionResult, error)
	GetStockInfo(ctx context.Context, ticker string) (*entity.StockInfo, error)
	ModelLoaded() bool
}

// NewPredictionService creates a new PredictionService.
func NewPredictionService(cfg *config.Config, log *logger.Logger) PredictionService {
	return &predictionService{
		cfg:           cfg,
		logger:        log,
		inmemoryCache: cache.New(cfg.Sandbox.HistoryCacheTTL, 2*cfg.Sandbox.HistoryCacheTTL),
		now:           time.Now,
	}
}

type predictionService struct {
	cfg           *config.Config
	logger        *logger.Logger
	inmemoryCache *cache.Cache
	now           func() time.Time
}

func (s *predictionService) ModelLoaded() bool {
	return s.cfg.Sandbox.ModelLoaded
}

// Predict forecasts req.HorizonDays calendar days past the last close. A
// non-positive horizon uses the default and horizons are capped at the maximum.
func (s *predictionService) Predict(ctx context.Context, req entity.PredictionRequest) (*entity.PredictionResult, error) {
	if !s.cfg.Sandbox.ModelLoaded {
		return nil, ErrModelNotLoaded
	}

	ticker := strings.ToUpper(strings.TrimSpace(req.Ticker))
	listing, ok := catalog[ticker]
	if !ok {
		return nil, &NotFoundError{Ticker: ticker}
	}

	days := req.HorizonDays
	if days <= 0 {
		days = common.DefaultHorizonDays
	}
	days = min(days, common.MaxHorizonDays)

	now := s.now().UTC()
	historical := s.history(ticker, listing, now)
	future := forecast(historical, days)

	current := historical.Prices[historical.Len()-1]
	predicted := future.Prices[future.Len()-1]
	change := predicted.Sub(current)
	percent := change.Div(current).Mul(decimal.NewFromInt(100))

	s.logger.DebugContext(ctx, "Generated forecast",
		logger.StringField("ticker", ticker),
		logger.IntField("days", days),
		logger.StringField("predicted_price", predicted.StringFixed(2)),
	)

	return &entity.PredictionResult{
		Ticker:         ticker,
		CurrentPrice:   current.Round(2),
		PredictedPrice: predicted.Round(2),
		PriceChange:    change.Round(2),
		PercentChange:  percent.Round(2),
		PredictionDays: days,
		Historical:     historical,
		Future:         future,
		GeneratedAt:    now,
	}, nil
}

func (s *predictionService) GetStockInfo(ctx context.Context, ticker string) (*entity.StockInfo, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	listing, ok := catalog[ticker]
	if !ok {
		return nil, fmt.Errorf("%w for %s", ErrNoProfile, ticker)
	}

	info := listing.info
	info.Ticker = ticker
	info.Description = truncateRunes(info.Description, descriptionLimit) + "..."
	return &info, nil
}

// truncateRunes cuts s to at most limit characters.
func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

// history returns the last common.HistoryDays business-day closes up to now.
// The walk is seeded by ticker and date, so one day always yields one series.
func (s *predictionService) history(ticker string, l listing, now time.Time) entity.TimeSeries {
	end := lastBusinessDay(now)
	key := fmt.Sprintf("history:%s:%s", ticker, utils.DateLabel(end))
	if cached, found := s.inmemoryCache.Get(key); found {
		return cached.(entity.TimeSeries)
	}

	dates := make([]time.Time, 0, common.HistoryDays)
	for d := end; len(dates) < common.HistoryDays; d = d.AddDate(0, 0, -1) {
		if !utils.IsWeekend(d) {
			dates = append(dates, d)
		}
	}

	rng := rand.New(rand.NewSource(seed(ticker, end)))
	series := entity.TimeSeries{
		Dates:  make([]string, len(dates)),
		Prices: make([]decimal.Decimal, len(dates)),
	}
	price := l.basePrice
	for i := len(dates) - 1; i >= 0; i-- {
		price *= 1 + l.drift + s.cfg.Sandbox.Volatility*rng.NormFloat64()
		price = math.Max(price, 1)
		pos := len(dates) - 1 - i
		series.Dates[pos] = utils.DateLabel(dates[i])
		series.Prices[pos] = decimal.NewFromFloat(price).Round(2)
	}

	s.inmemoryCache.SetDefault(key, series)
	return series
}

// forecast extends the history by days calendar days along the average daily
// change of the history.
func forecast(historical entity.TimeSeries, days int) entity.TimeSeries {
	n := historical.Len()
	first, last := historical.Prices[0], historical.Prices[n-1]
	slope := decimal.Zero
	if n > 1 {
		slope = last.Sub(first).Div(decimal.NewFromInt(int64(n - 1)))
	}
	floor := decimal.RequireFromString("0.01")

	lastDate, _ := utils.ParseDateLabel(historical.Dates[n-1])
	out := entity.TimeSeries{
		Dates:  make([]string, days),
		Prices: make([]decimal.Decimal, days),
	}
	for i := 1; i <= days; i++ {
		p := last.Add(slope.Mul(decimal.NewFromInt(int64(i)))).Round(2)
		if p.LessThan(floor) {
			p = floor
		}
		out.Dates[i-1] = utils.DateLabel(lastDate.AddDate(0, 0, i))
		out.Prices[i-1] = p
	}
	return out
}

func lastBusinessDay(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	for utils.IsWeekend(d) {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

func seed(ticker string, day time.Time) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(ticker))
	_, _ = h.Write([]byte(utils.DateLabel(day)))
	return int64(h.Sum64())
}
