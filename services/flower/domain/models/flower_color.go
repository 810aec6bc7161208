package models

import (
	"fmt"
	"strings"

	flowerdomain "github.com/ghuser/petalstore/services/flower/domain"
)

// FlowerColor is a value object representing a valid flower color.
// The wrapped value is always trimmed, lower-cased, non-empty, at most
// 50 characters, and contains at least one letter.
type FlowerColor string

const maxFlowerColorLength = 50

// NewFlowerColor constructs a valid FlowerColor or returns an error wrapping
// ErrInvalidFlowerColor. Validation order matches NewFlowerName; the accepted
// value is additionally normalized to lower case.
func NewFlowerColor(s string) (FlowerColor, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Errorf("%w: color cannot be empty", flowerdomain.ErrInvalidFlowerColor)
	}
	if len(trimmed) > maxFlowerColorLength {
		return "", fmt.Errorf("%w: color cannot exceed %d characters", flowerdomain.ErrInvalidFlowerColor, maxFlowerColorLength)
	}
	if !containsLetter(trimmed) {
		return "", fmt.Errorf("%w: color must contain at least one letter", flowerdomain.ErrInvalidFlowerColor)
	}
	return FlowerColor(strings.ToLower(trimmed)), nil
}

// String returns the underlying string value.
func (c FlowerColor) String() string {
	return string(c)
}
