package http

import (
	"golang-stock-forecast/internal/sandbox/service"
	"golang-stock-forecast/pkg/common"
	"golang-stock-forecast/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewServer builds the Echo instance with middleware and all routes.
func NewServer(predictionService service.PredictionService, log *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		TargetHeader: common.HeaderRequestID,
	}))

	handler := NewPredictionHandler(predictionService, log)
	handler.RegisterRoutes(e.Group("/api"))
	e.GET(common.HealthPath, handler.Health)
	return e
}
