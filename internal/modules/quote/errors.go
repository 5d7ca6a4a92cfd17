package quote

import "errors"

var (
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrInvalidStatus     = errors.New("unknown quote status")
	ErrInvalidTransition = errors.New("quote status transition not allowed")
	ErrInvalidCost       = errors.New("cost components and profit margin must be non-negative")
)
