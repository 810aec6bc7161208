package models

import (
	"fmt"
	"strings"
	"unicode"

	flowerdomain "github.com/ghuser/petalstore/services/flower/domain"
)

// FlowerName is a value object representing a valid flower name.
// The wrapped value is always trimmed, non-empty, at most 100 characters,
// and contains at least one letter.
type FlowerName string

const maxFlowerNameLength = 100

// NewFlowerName constructs a valid FlowerName or returns an error wrapping
// ErrInvalidFlowerName. Validation runs on the trimmed input: empty check,
// then length, then the letter requirement.
func NewFlowerName(s string) (FlowerName, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", fmt.Errorf("%w: name cannot be empty", flowerdomain.ErrInvalidFlowerName)
	}
	if len(trimmed) > maxFlowerNameLength {
		return "", fmt.Errorf("%w: name cannot exceed %d characters", flowerdomain.ErrInvalidFlowerName, maxFlowerNameLength)
	}
	if !containsLetter(trimmed) {
		return "", fmt.Errorf("%w: name must contain at least one letter", flowerdomain.ErrInvalidFlowerName)
	}
	return FlowerName(trimmed), nil
}

// String returns the underlying string value.
func (n FlowerName) String() string {
	return string(n)
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
