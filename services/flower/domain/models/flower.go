package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	flowerdomain "github.com/ghuser/petalstore/services/flower/domain"
)

// Flower is the aggregate root for this bounded context. All fields are
// unexported; state changes only through the mutation methods below, each of
// which refreshes updatedAt. Invariants held at all times:
//
//	stock >= 0, price >= 0, updatedAt >= createdAt
type Flower struct {
	id          uuid.UUID
	name        FlowerName
	color       FlowerColor
	description *string
	price       float64
	stock       int
	createdAt   time.Time
	updatedAt   time.Time
}

// NewFlower constructs a Flower with a generated ID and current timestamps.
// Name is validated before color, failing fast on the first invalid field.
func NewFlower(name, color string, description *string, price float64, stock int) (*Flower, error) {
	flowerName, err := NewFlowerName(name)
	if err != nil {
		return nil, err
	}
	flowerColor, err := NewFlowerColor(color)
	if err != nil {
		return nil, err
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", flowerdomain.ErrInvalidPrice)
	}
	if stock < 0 {
		return nil, fmt.Errorf("%w: stock cannot be negative", flowerdomain.ErrInvalidStock)
	}

	now := time.Now().UTC()
	return &Flower{
		id:          uuid.New(),
		name:        flowerName,
		color:       flowerColor,
		description: description,
		price:       price,
		stock:       stock,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructFlower rehydrates a Flower from persisted storage, preserving
// identity and timestamps. Name and color are re-validated so rows that no
// longer satisfy the invariants cannot re-enter the domain silently.
func ReconstructFlower(
	id uuid.UUID,
	name, color string,
	description *string,
	price float64,
	stock int,
	createdAt, updatedAt time.Time,
) (*Flower, error) {
	flowerName, err := NewFlowerName(name)
	if err != nil {
		return nil, err
	}
	flowerColor, err := NewFlowerColor(color)
	if err != nil {
		return nil, err
	}
	return &Flower{
		id:          id,
		name:        flowerName,
		color:       flowerColor,
		description: description,
		price:       price,
		stock:       stock,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (f *Flower) ID() uuid.UUID        { return f.id }
func (f *Flower) Name() FlowerName     { return f.name }
func (f *Flower) Color() FlowerColor   { return f.color }
func (f *Flower) Description() *string { return f.description }
func (f *Flower) Price() float64       { return f.price }
func (f *Flower) Stock() int           { return f.stock }
func (f *Flower) CreatedAt() time.Time { return f.createdAt }
func (f *Flower) UpdatedAt() time.Time { return f.updatedAt }

// Rename replaces the name after validation.
func (f *Flower) Rename(name string) error {
	flowerName, err := NewFlowerName(name)
	if err != nil {
		return err
	}
	f.name = flowerName
	f.touch()
	return nil
}

// Recolor replaces the color after validation.
func (f *Flower) Recolor(color string) error {
	flowerColor, err := NewFlowerColor(color)
	if err != nil {
		return err
	}
	f.color = flowerColor
	f.touch()
	return nil
}

// SetDescription replaces the free-text description. nil clears it.
func (f *Flower) SetDescription(description *string) {
	f.description = description
	f.touch()
}

// SetPrice replaces the price. Negative values are rejected.
func (f *Flower) SetPrice(price float64) error {
	if price < 0 {
		return fmt.Errorf("%w: price cannot be negative", flowerdomain.ErrInvalidPrice)
	}
	f.price = price
	f.touch()
	return nil
}

// SetStock replaces the stock quantity. Negative values are rejected so the
// stock invariant cannot be bypassed through a direct overwrite.
func (f *Flower) SetStock(stock int) error {
	if stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", flowerdomain.ErrInvalidStock)
	}
	f.stock = stock
	f.touch()
	return nil
}

// IncreaseStock adds qty to the available stock.
func (f *Flower) IncreaseStock(qty int) {
	f.stock += qty
	f.touch()
}

// DecreaseStock subtracts qty from the available stock. When qty exceeds the
// available stock it returns ErrInsufficientStock and leaves state unchanged.
func (f *Flower) DecreaseStock(qty int) error {
	if f.stock < qty {
		return fmt.Errorf("%w: have %d, requested %d", flowerdomain.ErrInsufficientStock, f.stock, qty)
	}
	f.stock -= qty
	f.touch()
	return nil
}

func (f *Flower) touch() {
	f.updatedAt = time.Now().UTC()
}
