package service

import (
	"errors"
	"fmt"
)

var (
	// ErrModelNotLoaded is returned by Predict when the sandbox runs without a model.
	ErrModelNotLoaded = errors.New("model not loaded")
	// ErrNoProfile is returned by GetStockInfo for a ticker outside the catalog.
	ErrNoProfile = errors.New("no company profile")
)

// NotFoundError is returned by Predict for a ticker outside the catalog.
type NotFoundError struct {
	Ticker string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Stock ticker '%s' not found", e.Ticker)
}
