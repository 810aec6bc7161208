package models

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	flowerdomain "github.com/ghuser/petalstore/services/flower/domain"
)

func newTestFlower(t *testing.T) *Flower {
	t.Helper()
	f, err := NewFlower("Rose", "red", nil, 25000, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return f
}

func TestNewFlower(t *testing.T) {
	t.Run("returns flower with non-zero ID", func(t *testing.T) {
		f := newTestFlower(t)
		if f.ID() == (uuid.UUID{}) {
			t.Fatal("expected non-zero UUID for ID")
		}
	})

	t.Run("generates unique IDs on each call", func(t *testing.T) {
		f1 := newTestFlower(t)
		f2 := newTestFlower(t)
		if f1.ID() == f2.ID() {
			t.Fatal("expected unique IDs, got identical")
		}
	})

	t.Run("normalizes color to lower case", func(t *testing.T) {
		f, err := NewFlower("Rose", "RED", nil, 25000, 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Color().String() != "red" {
			t.Fatalf("expected %q, got %q", "red", f.Color().String())
		}
	})

	t.Run("created and updated timestamps are equal", func(t *testing.T) {
		f := newTestFlower(t)
		if !f.CreatedAt().Equal(f.UpdatedAt()) {
			t.Fatalf("expected CreatedAt == UpdatedAt, got %v and %v", f.CreatedAt(), f.UpdatedAt())
		}
	})

	t.Run("sets CreatedAt to approximately now UTC", func(t *testing.T) {
		before := time.Now().UTC()
		f := newTestFlower(t)
		after := time.Now().UTC()
		if f.CreatedAt().Before(before) || f.CreatedAt().After(after) {
			t.Fatalf("CreatedAt %v not between %v and %v", f.CreatedAt(), before, after)
		}
	})

	t.Run("nil description is allowed", func(t *testing.T) {
		f := newTestFlower(t)
		if f.Description() != nil {
			t.Fatalf("expected nil description, got %v", *f.Description())
		}
	})

	t.Run("keeps provided description", func(t *testing.T) {
		desc := "a classic"
		f, err := NewFlower("Rose", "red", &desc, 25000, 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Description() == nil || *f.Description() != desc {
			t.Fatalf("expected description %q, got %v", desc, f.Description())
		}
	})

	t.Run("zero price and stock are valid", func(t *testing.T) {
		if _, err := NewFlower("Rose", "red", nil, 0, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("negative price returns ErrInvalidPrice", func(t *testing.T) {
		_, err := NewFlower("Rose", "red", nil, -1, 100)
		if !errors.Is(err, flowerdomain.ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("negative stock returns ErrInvalidStock", func(t *testing.T) {
		_, err := NewFlower("Rose", "red", nil, 25000, -1)
		if !errors.Is(err, flowerdomain.ErrInvalidStock) {
			t.Fatalf("expected ErrInvalidStock, got %v", err)
		}
	})

	t.Run("invalid name is reported before invalid color", func(t *testing.T) {
		_, err := NewFlower("", "", nil, 25000, 100)
		if !errors.Is(err, flowerdomain.ErrInvalidFlowerName) {
			t.Fatalf("expected ErrInvalidFlowerName, got %v", err)
		}
	})
}

func TestReconstructFlower(t *testing.T) {
	t.Run("preserves identity and timestamps", func(t *testing.T) {
		id := uuid.New()
		createdAt := time.Date(2024, 12, 11, 0, 0, 0, 0, time.UTC)
		updatedAt := createdAt.Add(time.Hour)

		f, err := ReconstructFlower(id, "Rose", "red", nil, 25000, 100, createdAt, updatedAt)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.ID() != id {
			t.Fatalf("expected ID %v, got %v", id, f.ID())
		}
		if !f.CreatedAt().Equal(createdAt) {
			t.Fatalf("expected CreatedAt %v, got %v", createdAt, f.CreatedAt())
		}
		if !f.UpdatedAt().Equal(updatedAt) {
			t.Fatalf("expected UpdatedAt %v, got %v", updatedAt, f.UpdatedAt())
		}
	})

	t.Run("re-validates name", func(t *testing.T) {
		_, err := ReconstructFlower(uuid.New(), "", "red", nil, 25000, 100, time.Now(), time.Now())
		if !errors.Is(err, flowerdomain.ErrInvalidFlowerName) {
			t.Fatalf("expected ErrInvalidFlowerName, got %v", err)
		}
	})

	t.Run("re-validates color", func(t *testing.T) {
		_, err := ReconstructFlower(uuid.New(), "Rose", "", nil, 25000, 100, time.Now(), time.Now())
		if !errors.Is(err, flowerdomain.ErrInvalidFlowerColor) {
			t.Fatalf("expected ErrInvalidFlowerColor, got %v", err)
		}
	})
}

func TestFlower_Rename(t *testing.T) {
	t.Run("replaces name and bumps UpdatedAt", func(t *testing.T) {
		f := newTestFlower(t)
		before := f.UpdatedAt()
		time.Sleep(time.Millisecond)

		if err := f.Rename("Tulip"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Name().String() != "Tulip" {
			t.Fatalf("expected %q, got %q", "Tulip", f.Name().String())
		}
		if !f.UpdatedAt().After(before) {
			t.Fatal("expected UpdatedAt to advance")
		}
	})

	t.Run("invalid name leaves state unchanged", func(t *testing.T) {
		f := newTestFlower(t)
		before := f.UpdatedAt()

		if err := f.Rename(""); !errors.Is(err, flowerdomain.ErrInvalidFlowerName) {
			t.Fatalf("expected ErrInvalidFlowerName, got %v", err)
		}
		if f.Name().String() != "Rose" {
			t.Fatalf("name changed to %q", f.Name().String())
		}
		if !f.UpdatedAt().Equal(before) {
			t.Fatal("UpdatedAt changed on failed rename")
		}
	})
}

func TestFlower_Recolor(t *testing.T) {
	t.Run("replaces and normalizes color", func(t *testing.T) {
		f := newTestFlower(t)
		if err := f.Recolor("White"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Color().String() != "white" {
			t.Fatalf("expected %q, got %q", "white", f.Color().String())
		}
	})

	t.Run("invalid color leaves state unchanged", func(t *testing.T) {
		f := newTestFlower(t)
		if err := f.Recolor("   "); !errors.Is(err, flowerdomain.ErrInvalidFlowerColor) {
			t.Fatalf("expected ErrInvalidFlowerColor, got %v", err)
		}
		if f.Color().String() != "red" {
			t.Fatalf("color changed to %q", f.Color().String())
		}
	})
}

func TestFlower_SetDescription(t *testing.T) {
	f := newTestFlower(t)

	desc := "fragrant"
	f.SetDescription(&desc)
	if f.Description() == nil || *f.Description() != desc {
		t.Fatalf("expected description %q, got %v", desc, f.Description())
	}

	f.SetDescription(nil)
	if f.Description() != nil {
		t.Fatal("expected description to be cleared")
	}
}

func TestFlower_SetPrice(t *testing.T) {
	t.Run("accepts zero", func(t *testing.T) {
		f := newTestFlower(t)
		if err := f.SetPrice(0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Price() != 0 {
			t.Fatalf("expected price 0, got %v", f.Price())
		}
	})

	t.Run("rejects negative and leaves state unchanged", func(t *testing.T) {
		f := newTestFlower(t)
		if err := f.SetPrice(-0.01); !errors.Is(err, flowerdomain.ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
		if f.Price() != 25000 {
			t.Fatalf("price changed to %v", f.Price())
		}
	})
}

func TestFlower_SetStock(t *testing.T) {
	t.Run("accepts zero", func(t *testing.T) {
		f := newTestFlower(t)
		if err := f.SetStock(0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Stock() != 0 {
			t.Fatalf("expected stock 0, got %d", f.Stock())
		}
	})

	t.Run("rejects negative and leaves state unchanged", func(t *testing.T) {
		f := newTestFlower(t)
		if err := f.SetStock(-1); !errors.Is(err, flowerdomain.ErrInvalidStock) {
			t.Fatalf("expected ErrInvalidStock, got %v", err)
		}
		if f.Stock() != 100 {
			t.Fatalf("stock changed to %d", f.Stock())
		}
	})
}

func TestFlower_Stock(t *testing.T) {
	t.Run("IncreaseStock adds quantity", func(t *testing.T) {
		f := newTestFlower(t)
		f.IncreaseStock(50)
		if f.Stock() != 150 {
			t.Fatalf("expected stock 150, got %d", f.Stock())
		}
	})

	t.Run("DecreaseStock subtracts quantity", func(t *testing.T) {
		f := newTestFlower(t)
		if err := f.DecreaseStock(40); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Stock() != 60 {
			t.Fatalf("expected stock 60, got %d", f.Stock())
		}
	})

	t.Run("DecreaseStock to exactly zero", func(t *testing.T) {
		f := newTestFlower(t)
		if err := f.DecreaseStock(100); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if f.Stock() != 0 {
			t.Fatalf("expected stock 0, got %d", f.Stock())
		}
	})

	t.Run("DecreaseStock past zero returns ErrInsufficientStock and leaves state unchanged", func(t *testing.T) {
		f := newTestFlower(t)
		before := f.UpdatedAt()

		err := f.DecreaseStock(101)
		if !errors.Is(err, flowerdomain.ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
		if f.Stock() != 100 {
			t.Fatalf("stock changed to %d", f.Stock())
		}
		if !f.UpdatedAt().Equal(before) {
			t.Fatal("UpdatedAt changed on failed decrease")
		}
	})
}
