package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/petalstore/pkg/database"
	"github.com/ghuser/petalstore/pkg/events"
	flowerdomain "github.com/ghuser/petalstore/services/flower/domain"
	domainevents "github.com/ghuser/petalstore/services/flower/domain/events"
	"github.com/ghuser/petalstore/services/flower/domain/models"
	"github.com/ghuser/petalstore/services/flower/domain/repositories"
)

const flowerColumns = "id, name, color, description, price, stock, created_at, updated_at"

// FlowerRepository implements repositories.FlowerRepository against PostgreSQL.
// Lifecycle events are published through the EventBus in the same transaction
// as the corresponding write.
type FlowerRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewFlowerRepository returns a FlowerRepository backed by the given
// connection pool and event bus. bus may be nil to disable event publishing.
func NewFlowerRepository(db *database.Database, bus *events.EventBus) *FlowerRepository {
	return &FlowerRepository{db: db, bus: bus}
}

// FindByID retrieves a flower by id. Returns ErrFlowerNotFound if absent.
func (r *FlowerRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Flower, error) {
	row := r.db.DB().QueryRowContext(ctx,
		"SELECT "+flowerColumns+" FROM flowers WHERE id = $1",
		id,
	)
	flower, err := scanFlower(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %s", flowerdomain.ErrFlowerNotFound, id)
		}
		return nil, err
	}
	return flower, nil
}

// FindAll retrieves one page of flowers ordered by creation time, most
// recent first.
func (r *FlowerRepository) FindAll(ctx context.Context, p flowerdomain.Pagination) ([]*models.Flower, error) {
	rows, err := r.db.DB().QueryContext(ctx,
		"SELECT "+flowerColumns+" FROM flowers ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		p.Limit(), p.Offset(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: query flowers: %v", flowerdomain.ErrStorage, err)
	}
	defer rows.Close() //nolint:errcheck
	return collectFlowers(rows)
}

// Count returns the total number of flowers.
func (r *FlowerRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.DB().QueryRowContext(ctx, "SELECT COUNT(*) FROM flowers").Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: count flowers: %v", flowerdomain.ErrStorage, err)
	}
	return total, nil
}

// Search retrieves one page of flowers matching the filter, ordered by
// creation time, most recent first. The name filter is a case-insensitive
// substring match; the color filter a case-insensitive exact match. An empty
// filter field imposes no constraint.
func (r *FlowerRepository) Search(ctx context.Context, filter repositories.SearchFilter, p flowerdomain.Pagination) ([]*models.Flower, error) {
	namePattern, colorExact := filterParams(filter)
	rows, err := r.db.DB().QueryContext(ctx,
		`SELECT `+flowerColumns+`
		 FROM flowers
		 WHERE ($1::text IS NULL OR LOWER(name) LIKE $1)
		   AND ($2::text IS NULL OR LOWER(color) = $2)
		 ORDER BY created_at DESC
		 LIMIT $3 OFFSET $4`,
		namePattern, colorExact, p.Limit(), p.Offset(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: search flowers: %v", flowerdomain.ErrStorage, err)
	}
	defer rows.Close() //nolint:errcheck
	return collectFlowers(rows)
}

// CountSearch returns the total number of flowers matching the filter.
func (r *FlowerRepository) CountSearch(ctx context.Context, filter repositories.SearchFilter) (int64, error) {
	namePattern, colorExact := filterParams(filter)
	var total int64
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT COUNT(*)
		 FROM flowers
		 WHERE ($1::text IS NULL OR LOWER(name) LIKE $1)
		   AND ($2::text IS NULL OR LOWER(color) = $2)`,
		namePattern, colorExact,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("%w: count search: %v", flowerdomain.ErrStorage, err)
	}
	return total, nil
}

// Create persists a new flower and publishes FlowerCreatedEvent within the
// same transaction.
func (r *FlowerRepository) Create(ctx context.Context, flower *models.Flower) (*models.Flower, error) {
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO flowers (id, name, color, description, price, stock, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			flower.ID(), flower.Name().String(), flower.Color().String(), nullableText(flower.Description()),
			flower.Price(), flower.Stock(), flower.CreatedAt(), flower.UpdatedAt(),
		)
		if err != nil {
			return fmt.Errorf("%w: insert flower: %v", flowerdomain.ErrStorage, err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, flower); err != nil {
				return fmt.Errorf("%w: publish flower created: %v", flowerdomain.ErrStorage, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return flower, nil
}

// Update persists all mutable fields of an existing flower.
// Returns ErrFlowerNotFound if the row no longer exists.
func (r *FlowerRepository) Update(ctx context.Context, flower *models.Flower) (*models.Flower, error) {
	row := r.db.DB().QueryRowContext(ctx,
		`UPDATE flowers
		 SET name = $2, color = $3, description = $4, price = $5, stock = $6, updated_at = $7
		 WHERE id = $1
		 RETURNING `+flowerColumns,
		flower.ID(), flower.Name().String(), flower.Color().String(), nullableText(flower.Description()),
		flower.Price(), flower.Stock(), flower.UpdatedAt(),
	)
	updated, err := scanFlower(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %s", flowerdomain.ErrFlowerNotFound, flower.ID())
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a flower by id and publishes FlowerDeletedEvent within the
// same transaction. Returns ErrFlowerNotFound when no row was removed.
func (r *FlowerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM flowers WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("%w: delete flower: %v", flowerdomain.ErrStorage, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: delete flower: %v", flowerdomain.ErrStorage, err)
		}
		if affected == 0 {
			return fmt.Errorf("%w: id %s", flowerdomain.ErrFlowerNotFound, id)
		}

		if r.bus != nil {
			if err := r.publishDeleted(tx, id); err != nil {
				return fmt.Errorf("%w: publish flower deleted: %v", flowerdomain.ErrStorage, err)
			}
		}
		return nil
	})
}

func (r *FlowerRepository) publishCreated(tx *sql.Tx, flower *models.Flower) error {
	event := domainevents.FlowerCreatedEvent{
		EventID:     uuid.New(),
		Version:     1,
		FlowerID:    flower.ID(),
		Name:        flower.Name().String(),
		Color:       flower.Color().String(),
		Description: flower.Description(),
		Price:       flower.Price(),
		Stock:       flower.Stock(),
		OccurredAt:  flower.CreatedAt(),
	}
	return r.publish(tx, domainevents.TopicFlowerCreated, event, event.EventID)
}

func (r *FlowerRepository) publishDeleted(tx *sql.Tx, id uuid.UUID) error {
	event := domainevents.FlowerDeletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		FlowerID:   id,
		OccurredAt: time.Now().UTC(),
	}
	return r.publish(tx, domainevents.TopicFlowerDeleted, event, event.EventID)
}

func (r *FlowerRepository) publish(tx *sql.Tx, topic string, event any, eventID uuid.UUID) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanFlower maps one flowers row to a domain aggregate. Rows that fail
// domain re-validation surface as storage failures, not validation errors.
func scanFlower(s scanner) (*models.Flower, error) {
	var (
		id          uuid.UUID
		name        string
		color       string
		description sql.NullString
		price       float64
		stock       int
		createdAt   time.Time
		updatedAt   time.Time
	)
	if err := s.Scan(&id, &name, &color, &description, &price, &stock, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: scan flower: %v", flowerdomain.ErrStorage, err)
	}

	var desc *string
	if description.Valid {
		desc = &description.String
	}

	flower, err := models.ReconstructFlower(id, name, color, desc, price, stock, createdAt, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: row %s violates domain invariants: %v", flowerdomain.ErrStorage, id, err)
	}
	return flower, nil
}

func collectFlowers(rows *sql.Rows) ([]*models.Flower, error) {
	flowers := make([]*models.Flower, 0)
	for rows.Next() {
		flower, err := scanFlower(rows)
		if err != nil {
			return nil, err
		}
		flowers = append(flowers, flower)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate flowers: %v", flowerdomain.ErrStorage, err)
	}
	return flowers, nil
}

func nullableText(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// filterParams converts a SearchFilter into the nullable SQL parameters used
// by the search queries. NULL means "no constraint".
func filterParams(filter repositories.SearchFilter) (namePattern, colorExact sql.NullString) {
	if filter.Name != "" {
		namePattern = sql.NullString{String: "%" + strings.ToLower(filter.Name) + "%", Valid: true}
	}
	if filter.Color != "" {
		colorExact = sql.NullString{String: strings.ToLower(filter.Color), Valid: true}
	}
	return namePattern, colorExact
}
