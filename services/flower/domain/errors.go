package domain

import "errors"

// Sentinel errors for the flower domain. Use errors.Is() to check these;
// constructors and mutators wrap them with the concrete reason.
var (
	// ErrFlowerNotFound indicates the requested flower does not exist.
	ErrFlowerNotFound = errors.New("flower not found")

	// ErrInvalidFlowerName indicates the flower name violates domain constraints.
	ErrInvalidFlowerName = errors.New("invalid flower name")

	// ErrInvalidFlowerColor indicates the flower color violates domain constraints.
	ErrInvalidFlowerColor = errors.New("invalid flower color")

	// ErrInvalidPrice indicates a negative price.
	ErrInvalidPrice = errors.New("invalid price")

	// ErrInvalidStock indicates a negative stock quantity.
	ErrInvalidStock = errors.New("invalid stock")

	// ErrInsufficientStock indicates a stock reduction larger than the available stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrStorage wraps opaque persistence failures. The HTTP layer must map it
	// to a generic 500 without exposing the wrapped detail to clients.
	ErrStorage = errors.New("storage failure")
)
