package repository

import (
	"errors"
	"fmt"
)

// DefaultPredictionFailure is shown when the API gives no usable error detail.
const DefaultPredictionFailure = "Prediction failed"

// ErrStockInfoUnavailable is returned when the stock-info endpoint answers with a non-2xx status.
var ErrStockInfoUnavailable = errors.New("stock info unavailable")

// TransportError means the request never produced an HTTP response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response from the prediction API.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return e.Detail
}

// DecodeError means a 2xx response body could not be turned into a result.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid response body: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
