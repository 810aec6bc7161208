package repositories

import (
	"context"

	"github.com/google/uuid"

	flowerdomain "github.com/ghuser/petalstore/services/flower/domain"
	"github.com/ghuser/petalstore/services/flower/domain/models"
)

// SearchFilter narrows list queries. Empty fields impose no constraint;
// both filters compose with logical AND.
type SearchFilter struct {
	// Name matches as a case-insensitive substring.
	Name string
	// Color matches exactly, case-insensitively.
	Color string
}

// IsZero reports whether the filter imposes no constraint at all.
func (f SearchFilter) IsZero() bool {
	return f.Name == "" && f.Color == ""
}

// FlowerRepository is the persistence interface for the Flower aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// FindAll and Search return results ordered by creation time, most recent
// first. Absent rows surface as ErrFlowerNotFound; any other failure wraps
// ErrStorage and must be treated as opaque by callers.
type FlowerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Flower, error)
	FindAll(ctx context.Context, p flowerdomain.Pagination) ([]*models.Flower, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, filter SearchFilter, p flowerdomain.Pagination) ([]*models.Flower, error)
	CountSearch(ctx context.Context, filter SearchFilter) (int64, error)
	Create(ctx context.Context, flower *models.Flower) (*models.Flower, error)
	Update(ctx context.Context, flower *models.Flower) (*models.Flower, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
