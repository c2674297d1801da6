package service

import (
	"errors"
	"fmt"

	"golang-stock-forecast/internal/forecaster/repository"
	"golang-stock-forecast/internal/forecaster/series"
)

const (
	MessageTransportFailure = "Unable to reach the prediction service"
	MessageInvalidResponse  = "Prediction failed: invalid response from server"
	MessageRenderFailure    = "Unable to render chart"
)

// ErrSubmissionInProgress is returned when a submission arrives while another
// one is still running. The second submission is ignored.
var ErrSubmissionInProgress = errors.New("a prediction request is already in progress")

// ErrEmptyTicker is the validation failure for a blank ticker.
var ErrEmptyTicker = &ValidationError{Field: "ticker", Message: "Please enter a stock ticker symbol"}

// ValidationError is rejected form input, caught before any network call.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// RenderError is a failure while drawing the chart.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render chart: %v", e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// UserMessage collapses any error from a submission into the single line
// shown in the error banner.
func UserMessage(err error) string {
	var (
		validationErr *ValidationError
		apiErr        *repository.APIError
		transportErr  *repository.TransportError
		decodeErr     *repository.DecodeError
		renderErr     *RenderError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.As(err, &apiErr):
		if apiErr.Detail == "" {
			return repository.DefaultPredictionFailure
		}
		return apiErr.Detail
	case errors.As(err, &transportErr):
		return MessageTransportFailure
	case errors.As(err, &decodeErr), errors.Is(err, series.ErrMisaligned):
		return MessageInvalidResponse
	case errors.As(err, &renderErr):
		return MessageRenderFailure
	default:
		return err.Error()
	}
}
