package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	pkgcache "github.com/ghuser/petalstore/pkg/cache"
	flowerdomain "github.com/ghuser/petalstore/services/flower/domain"
	"github.com/ghuser/petalstore/services/flower/domain/models"
	"github.com/ghuser/petalstore/services/flower/domain/repositories"
)

// FlowerService orchestrates the flower CRUD and search flows: translate the
// request into domain calls, consult the repository, and shape the response.
// Event publishing happens in the repository layer, transactionally with the
// write. Reads are served from Redis cache when available.
//
// The service holds no mutable state of its own; one instance is shared by
// all concurrently handled requests.
type FlowerService struct {
	repo  repositories.FlowerRepository
	cache *pkgcache.FlowerCache
}

// NewFlowerService returns a FlowerService wired with the given repository
// and cache. cache may be nil, in which case all reads hit the repository.
func NewFlowerService(repo repositories.FlowerRepository, flowerCache *pkgcache.FlowerCache) *FlowerService {
	return &FlowerService{repo: repo, cache: flowerCache}
}

// Get retrieves a flower using a read-through cache pattern:
//  1. Check Redis first.
//  2. On cache miss (or cache error), query the repository.
//  3. Asynchronously warm the cache with the repository result.
//
// Returns ErrFlowerNotFound when no flower has the given id.
func (s *FlowerService) Get(ctx context.Context, id uuid.UUID) (*FlowerResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return cachedToResponse(cached), nil
		}
		// redis.Nil or cache failure: fall through to the repository.
	}

	flower, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get flower: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), flowerToCached(flower))
		}()
	}

	return flowerToResponse(flower), nil
}

// List returns one page of flowers plus the total count.
//
// The page query and the count are two independent repository calls; a
// concurrent insert or delete between them can make the total off by one
// relative to the returned page. This staleness window is accepted.
func (s *FlowerService) List(ctx context.Context, p flowerdomain.Pagination) (flowerdomain.PaginatedResult[*FlowerResponse], error) {
	var zero flowerdomain.PaginatedResult[*FlowerResponse]

	flowers, err := s.repo.FindAll(ctx, p)
	if err != nil {
		return zero, fmt.Errorf("list flowers: %w", err)
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return zero, fmt.Errorf("count flowers: %w", err)
	}

	return flowerdomain.NewPaginatedResult(toResponses(flowers), total, p), nil
}

// Search returns one page of flowers matching the filter plus the matching
// total. Same two-call staleness window as List.
func (s *FlowerService) Search(ctx context.Context, filter repositories.SearchFilter, p flowerdomain.Pagination) (flowerdomain.PaginatedResult[*FlowerResponse], error) {
	var zero flowerdomain.PaginatedResult[*FlowerResponse]

	flowers, err := s.repo.Search(ctx, filter, p)
	if err != nil {
		return zero, fmt.Errorf("search flowers: %w", err)
	}
	total, err := s.repo.CountSearch(ctx, filter)
	if err != nil {
		return zero, fmt.Errorf("count search: %w", err)
	}

	return flowerdomain.NewPaginatedResult(toResponses(flowers), total, p), nil
}

// Create validates and persists a new flower. Validation errors from the
// aggregate propagate unchanged; the repository publishes FlowerCreatedEvent
// in the same transaction as the insert.
func (s *FlowerService) Create(ctx context.Context, input CreateFlowerInput) (*FlowerResponse, error) {
	flower, err := models.NewFlower(input.Name, input.Color, input.Description, input.Price, input.Stock)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, flower)
	if err != nil {
		return nil, fmt.Errorf("create flower: %w", err)
	}

	return flowerToResponse(created), nil
}

// Update applies a partial update to an existing flower. Each present field
// is applied through the corresponding aggregate method, short-circuiting on
// the first validation failure; omitted fields are left unchanged.
// Returns ErrFlowerNotFound when no flower has the given id.
func (s *FlowerService) Update(ctx context.Context, id uuid.UUID, input UpdateFlowerInput) (*FlowerResponse, error) {
	flower, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update flower: %w", err)
	}

	if input.Name != nil {
		if err := flower.Rename(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Color != nil {
		if err := flower.Recolor(*input.Color); err != nil {
			return nil, err
		}
	}
	if input.Description != nil {
		flower.SetDescription(input.Description)
	}
	if input.Price != nil {
		if err := flower.SetPrice(*input.Price); err != nil {
			return nil, err
		}
	}
	if input.Stock != nil {
		if err := flower.SetStock(*input.Stock); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, flower)
	if err != nil {
		return nil, fmt.Errorf("update flower: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, id)
	}

	return flowerToResponse(updated), nil
}

// Delete removes a flower by id. The existence check and the delete are two
// separate calls; a concurrent delete between them surfaces as a repository
// error rather than being masked. Returns ErrFlowerNotFound when no flower
// has the given id, without issuing a delete.
func (s *FlowerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("delete flower: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete flower: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, id)
	}
	return nil
}

func toResponses(flowers []*models.Flower) []*FlowerResponse {
	out := make([]*FlowerResponse, len(flowers))
	for i, f := range flowers {
		out[i] = flowerToResponse(f)
	}
	return out
}
