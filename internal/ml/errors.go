package ml

import "errors"

var (
	ErrDimensionMismatch    = errors.New("dimension mismatch")
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
