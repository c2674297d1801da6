package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang-stock-forecast/internal/entity"
	"golang-stock-forecast/internal/forecaster/repository"
	"golang-stock-forecast/internal/forecaster/series"
	"golang-stock-forecast/internal/forecaster/ui"
	"golang-stock-forecast/pkg/logger"

	"github.com/google/uuid"
)

// ChartRenderer draws composed series, replacing whatever was drawn before.
type ChartRenderer interface {
	Render(title string, c series.Composed) error
}

// Orchestrator runs one prediction request cycle per submission.
type Orchestrator interface {
	// Submit validates the raw form input, requests a prediction and updates
	// the UI with the outcome. The returned error is the one already shown
	// to the user, or ErrSubmissionInProgress.
	Submit(ctx context.Context, rawTicker, rawDays string) error
	// Wait blocks until detached background work has finished.
	Wait()
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	predictionRepo repository.PredictionRepository,
	stockInfoRepo repository.StockInfoRepository,
	renderer ChartRenderer,
	manager *ui.Manager,
	log *logger.Logger,
) Orchestrator {
	return &orchestrator{
		predictionRepo: predictionRepo,
		stockInfoRepo:  stockInfoRepo,
		renderer:       renderer,
		manager:        manager,
		logger:         log,
	}
}

type orchestrator struct {
	predictionRepo repository.PredictionRepository
	stockInfoRepo  repository.StockInfoRepository
	renderer       ChartRenderer
	manager        *ui.Manager
	logger         *logger.Logger

	inFlight atomic.Bool
	detached sync.WaitGroup
}

func (o *orchestrator) Submit(ctx context.Context, rawTicker, rawDays string) error {
	if !o.inFlight.CompareAndSwap(false, true) {
		o.logger.Debug("Submission ignored, request already in flight")
		return ErrSubmissionInProgress
	}
	defer o.inFlight.Store(false)

	req, err := ParseInput(rawTicker, rawDays)
	if err != nil {
		o.manager.EnterError(UserMessage(err))
		return err
	}

	cycle := o.manager.BeginCycle()
	o.manager.EnterLoading()
	defer o.manager.Reset()

	ctx = logger.WithRequestID(ctx, uuid.NewString())
	o.logger.InfoContext(ctx, "Prediction requested",
		logger.StringField("ticker", req.Ticker),
		logger.IntField("days", req.HorizonDays),
	)

	o.fetchStockInfo(ctx, cycle, req.Ticker)

	if err := o.predict(ctx, req); err != nil {
		o.logger.ErrorContext(ctx, "Prediction failed", logger.StringField("ticker", req.Ticker), logger.ErrorField(err))
		o.manager.EnterError(UserMessage(err))
		return err
	}
	return nil
}

func (o *orchestrator) predict(ctx context.Context, req entity.PredictionRequest) error {
	result, err := o.predictionRepo.Predict(ctx, req)
	if err != nil {
		return err
	}

	composed, err := series.Compose(result.Historical, result.Future)
	if err != nil {
		return err
	}

	if err := o.render(result.Ticker, composed); err != nil {
		return err
	}

	o.manager.EnterSuccess(*result)
	o.logger.InfoContext(ctx, "Prediction rendered",
		logger.StringField("ticker", result.Ticker),
		logger.IntField("historical_points", result.Historical.Len()),
		logger.IntField("forecast_points", result.Future.Len()),
	)
	return nil
}

func (o *orchestrator) render(ticker string, composed series.Composed) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &RenderError{Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	if err := o.renderer.Render(ticker, composed); err != nil {
		return &RenderError{Err: err}
	}
	return nil
}

// fetchStockInfo loads the info panel in the background. Its outcome never
// affects the prediction; a result for a superseded cycle is dropped.
func (o *orchestrator) fetchStockInfo(ctx context.Context, cycle uint64, ticker string) {
	if o.stockInfoRepo == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)

	o.detached.Add(1)
	go func() {
		defer o.detached.Done()

		info, err := o.stockInfoRepo.GetStockInfo(ctx, ticker)
		if err != nil {
			if !errors.Is(err, repository.ErrStockInfoUnavailable) {
				o.logger.WarnContext(ctx, "Failed to load stock info", logger.StringField("ticker", ticker), logger.ErrorField(err))
			} else {
				o.logger.DebugContext(ctx, "Stock info unavailable", logger.StringField("ticker", ticker))
			}
			return
		}
		if !o.manager.ShowInfo(cycle, *info) {
			o.logger.DebugContext(ctx, "Dropped stock info for superseded request", logger.StringField("ticker", ticker))
		}
	}()
}

func (o *orchestrator) Wait() {
	o.detached.Wait()
}
