package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/petalstore/pkg/cache"
	"github.com/ghuser/petalstore/services/flower/domain/models"
)

// FlowerResponse is the outward representation of the Flower aggregate.
type FlowerResponse struct {
	ID          uuid.UUID `json:"id"          example:"550e8400-e29b-41d4-a716-446655440001"`
	Name        string    `json:"name"        example:"Rose"`
	Color       string    `json:"color"       example:"red"`
	Description *string   `json:"description" example:"A beautiful red rose"`
	Price       float64   `json:"price"       example:"25000"`
	Stock       int       `json:"stock"       example:"100"`
	CreatedAt   time.Time `json:"created_at"  example:"2024-12-11T00:00:00Z"`
	UpdatedAt   time.Time `json:"updated_at"  example:"2024-12-11T00:00:00Z"`
} // @name FlowerResponse

// CreateFlowerInput carries the fields needed to create a flower.
type CreateFlowerInput struct {
	Name        string
	Color       string
	Description *string
	Price       float64
	Stock       int
}

// UpdateFlowerInput is a partial update; nil fields are left unchanged.
type UpdateFlowerInput struct {
	Name        *string
	Color       *string
	Description *string
	Price       *float64
	Stock       *int
}

func flowerToResponse(f *models.Flower) *FlowerResponse {
	return &FlowerResponse{
		ID:          f.ID(),
		Name:        f.Name().String(),
		Color:       f.Color().String(),
		Description: f.Description(),
		Price:       f.Price(),
		Stock:       f.Stock(),
		CreatedAt:   f.CreatedAt(),
		UpdatedAt:   f.UpdatedAt(),
	}
}

func flowerToCached(f *models.Flower) *cache.CachedFlower {
	return &cache.CachedFlower{
		ID:          f.ID(),
		Name:        f.Name().String(),
		Color:       f.Color().String(),
		Description: f.Description(),
		Price:       f.Price(),
		Stock:       f.Stock(),
		CreatedAt:   f.CreatedAt(),
		UpdatedAt:   f.UpdatedAt(),
	}
}

func cachedToResponse(c *cache.CachedFlower) *FlowerResponse {
	return &FlowerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Color:       c.Color,
		Description: c.Description,
		Price:       c.Price,
		Stock:       c.Stock,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
