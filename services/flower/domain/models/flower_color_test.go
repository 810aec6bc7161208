package models

import (
	"errors"
	"strings"
	"testing"

	flowerdomain "github.com/ghuser/petalstore/services/flower/domain"
)

func TestNewFlowerColor(t *testing.T) {
	t.Run("valid lower-case color", func(t *testing.T) {
		c, err := NewFlowerColor("red")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.String() != "red" {
			t.Fatalf("expected %q, got %q", "red", c.String())
		}
	})

	t.Run("normalizes to lower case", func(t *testing.T) {
		c, err := NewFlowerColor("RED")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.String() != "red" {
			t.Fatalf("expected %q, got %q", "red", c.String())
		}
	})

	t.Run("trims then lower-cases", func(t *testing.T) {
		c, err := NewFlowerColor("  Crimson Red  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.String() != "crimson red" {
			t.Fatalf("expected %q, got %q", "crimson red", c.String())
		}
	})

	t.Run("valid 50 characters", func(t *testing.T) {
		s := strings.Repeat("b", 50)
		c, err := NewFlowerColor(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c.String()) != 50 {
			t.Fatalf("expected length 50, got %d", len(c.String()))
		}
	})

	t.Run("51 characters returns error", func(t *testing.T) {
		_, err := NewFlowerColor(strings.Repeat("b", 51))
		if !errors.Is(err, flowerdomain.ErrInvalidFlowerColor) {
			t.Fatalf("expected ErrInvalidFlowerColor, got %v", err)
		}
	})

	t.Run("empty string returns error", func(t *testing.T) {
		_, err := NewFlowerColor("")
		if !errors.Is(err, flowerdomain.ErrInvalidFlowerColor) {
			t.Fatalf("expected ErrInvalidFlowerColor, got %v", err)
		}
	})

	t.Run("whitespace-only string returns error", func(t *testing.T) {
		_, err := NewFlowerColor(" \t ")
		if !errors.Is(err, flowerdomain.ErrInvalidFlowerColor) {
			t.Fatalf("expected ErrInvalidFlowerColor, got %v", err)
		}
	})

	t.Run("no letters returns error", func(t *testing.T) {
		_, err := NewFlowerColor("123")
		if !errors.Is(err, flowerdomain.ErrInvalidFlowerColor) {
			t.Fatalf("expected ErrInvalidFlowerColor, got %v", err)
		}
	})
}

func TestFlowerColor_String(t *testing.T) {
	c := FlowerColor("violet")
	if c.String() != "violet" {
		t.Fatalf("expected %q, got %q", "violet", c.String())
	}
}
