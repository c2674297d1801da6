package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang-stock-forecast/internal/entity"
	"golang-stock-forecast/internal/forecaster/dto"
	"golang-stock-forecast/internal/sandbox/service"
	"golang-stock-forecast/pkg/common"
	"golang-stock-forecast/pkg/logger"

	"github.com/labstack/echo/v4"
)

// PredictionHandler handles HTTP requests for forecasts and stock info.
type PredictionHandler struct {
	predictionService service.PredictionService
	logger            *logger.Logger
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string    `json:"status"`
	ModelLoaded bool      `json:"model_loaded"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewPredictionHandler creates a new PredictionHandler.
func NewPredictionHandler(predictionService service.PredictionService, logger *logger.Logger) *PredictionHandler {
	return &PredictionHandler{predictionService: predictionService, logger: logger}
}

// RegisterRoutes registers the prediction routes to the Echo group mounted at /api.
func (h *PredictionHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/predict", h.Predict)
	g.GET("/stock-info/:ticker", h.GetStockInfo)
}

// Predict returns a forecast for the ticker in the request body.
func (h *PredictionHandler) Predict(c echo.Context) error {
	var req dto.PredictRequest
	if err := c.Bind(&req); err != nil || req.Ticker == "" {
		return c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Detail: "Invalid request payload"})
	}

	ctx := requestContext(c)
	result, err := h.predictionService.Predict(ctx, entity.PredictionRequest{Ticker: req.Ticker, HorizonDays: req.Days})
	if err != nil {
		var notFound *service.NotFoundError
		switch {
		case errors.As(err, &notFound):
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: notFound.Error()})
		case errors.Is(err, service.ErrModelNotLoaded):
			return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "Model not loaded. Please train the model first."})
		default:
			h.logger.ErrorContext(ctx, "Prediction failed", logger.StringField("ticker", req.Ticker), logger.ErrorField(err))
			return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Detail: "Prediction error: " + err.Error()})
		}
	}

	h.logger.InfoContext(ctx, "Prediction served",
		logger.StringField("ticker", result.Ticker),
		logger.IntField("days", result.PredictionDays),
	)
	return c.JSON(http.StatusOK, dto.NewPredictResponse(*result))
}

// GetStockInfo returns the company profile of a ticker.
func (h *PredictionHandler) GetStockInfo(c echo.Context) error {
	info, err := h.predictionService.GetStockInfo(requestContext(c), c.Param("ticker"))
	if err != nil {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Detail: "Stock information not found: " + err.Error()})
	}
	return c.JSON(http.StatusOK, dto.NewStockInfoResponse(*info))
}

// Health reports whether the service is up and has a model.
func (h *PredictionHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:      "healthy",
		ModelLoaded: h.predictionService.ModelLoaded(),
		Timestamp:   time.Now().UTC(),
	})
}

// requestContext carries the request id set by the RequestID middleware or
// the client into the request context.
func requestContext(c echo.Context) context.Context {
	ctx := c.Request().Context()
	id := c.Response().Header().Get(common.HeaderRequestID)
	if id == "" {
		id = c.Request().Header.Get(common.HeaderRequestID)
	}
	if id == "" {
		return ctx
	}
	return logger.WithRequestID(ctx, id)
}
