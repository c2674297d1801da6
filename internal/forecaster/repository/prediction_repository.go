package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang-stock-forecast/internal/entity"
	"golang-stock-forecast/internal/forecaster/config"
	"golang-stock-forecast/internal/forecaster/dto"
	"golang-stock-forecast/pkg/common"
	"golang-stock-forecast/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type predictionRepository struct {
	cfg            *config.Config
	log            *logger.Logger
	httpClient     *http.Client
	requestLimiter *rate.Limiter
}

func NewPredictionRepository(cfg *config.Config, log *logger.Logger) PredictionRepository {
	return &predictionRepository{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: cfg.PredictionAPI.Timeout,
		},
		requestLimiter: newRequestLimiter(cfg.PredictionAPI.MaxRequestPerMinute),
	}
}

func newRequestLimiter(maxPerMinute int) *rate.Limiter {
	if maxPerMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(maxPerMinute)), 1)
}

func (r *predictionRepository) Predict(ctx context.Context, req entity.PredictionRequest) (*entity.PredictionResult, error) {
	url := strings.TrimRight(r.cfg.PredictionAPI.BaseURL, "/") + common.PredictPath
	fields := []zap.Field{
		zap.String("url", url),
		zap.String("ticker", req.Ticker),
		zap.Int("days", req.HorizonDays),
	}

	payload, err := json.Marshal(dto.PredictRequest{Ticker: req.Ticker, Days: req.HorizonDays})
	if err != nil {
		return nil, fmt.Errorf("failed to encode prediction request: %w", err)
	}

	if err := r.requestLimiter.Wait(ctx); err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to wait for request limit", fields...)
		return nil, &TransportError{Op: "wait for request slot", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create prediction request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if id := logger.RequestID(ctx); id != "" {
		httpReq.Header.Set(common.HeaderRequestID, id)
	}

	start := time.Now()
	resp, err := r.httpClient.Do(httpReq)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to send request to prediction API", fields...)
		return nil, &TransportError{Op: "send prediction request", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to read response body from prediction API", fields...)
		return nil, &TransportError{Op: "read prediction response", Err: err}
	}

	fields = append(fields, zap.Int("status_code", resp.StatusCode), zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Detail: errorDetail(body)}
		fields = append(fields, zap.String("detail", apiErr.Detail))
		r.log.WarnContext(ctx, "Received non-OK response from prediction API", fields...)
		return nil, apiErr
	}

	var response dto.PredictResponse
	if err := json.Unmarshal(body, &response); err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Failed to decode prediction response", fields...)
		return nil, &DecodeError{Err: err}
	}

	result := response.ToEntity()
	if err := result.Validate(); err != nil {
		fields = append(fields, zap.Error(err))
		r.log.ErrorContext(ctx, "Prediction response has misaligned series", fields...)
		return nil, &DecodeError{Err: err}
	}
	if result.Ticker == "" {
		result.Ticker = req.Ticker
	}

	r.log.DebugContext(ctx, "Prediction received", fields...)
	return &result, nil
}

// errorDetail extracts the "detail" message of an error body, falling back
// to DefaultPredictionFailure when the body is empty, not JSON, or carries a
// non-string detail.
func errorDetail(body []byte) string {
	var payload dto.ErrorResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return DefaultPredictionFailure
	}
	if strings.TrimSpace(payload.Detail) == "" {
		return DefaultPredictionFailure
	}
	return payload.Detail
}
