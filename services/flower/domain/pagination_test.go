package domain

import "testing"

func intPtr(n int) *int { return &n }

func TestNewPagination(t *testing.T) {
	t.Run("defaults when both nil", func(t *testing.T) {
		p := NewPagination(nil, nil)
		if p.Page != 1 || p.PerPage != 10 {
			t.Fatalf("expected defaults 1/10, got %d/%d", p.Page, p.PerPage)
		}
	})

	t.Run("uses provided values", func(t *testing.T) {
		p := NewPagination(intPtr(3), intPtr(25))
		if p.Page != 3 || p.PerPage != 25 {
			t.Fatalf("expected 3/25, got %d/%d", p.Page, p.PerPage)
		}
	})

	t.Run("zero page falls back to default", func(t *testing.T) {
		p := NewPagination(intPtr(0), nil)
		if p.Page != 1 {
			t.Fatalf("expected page 1, got %d", p.Page)
		}
	})

	t.Run("negative values fall back to defaults", func(t *testing.T) {
		p := NewPagination(intPtr(-5), intPtr(-1))
		if p.Page != 1 || p.PerPage != 10 {
			t.Fatalf("expected defaults 1/10, got %d/%d", p.Page, p.PerPage)
		}
	})

	t.Run("per_page capped at 100", func(t *testing.T) {
		p := NewPagination(nil, intPtr(500))
		if p.PerPage != 100 {
			t.Fatalf("expected per_page 100, got %d", p.PerPage)
		}
	})
}

func TestPagination_Offset(t *testing.T) {
	tests := []struct {
		page, perPage, want int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 25, 50},
		{10, 100, 900},
	}
	for _, tt := range tests {
		p := Pagination{Page: tt.page, PerPage: tt.perPage}
		if got := p.Offset(); got != tt.want {
			t.Errorf("Offset() for page=%d per_page=%d: expected %d, got %d", tt.page, tt.perPage, tt.want, got)
		}
	}
}

func TestNewPaginatedResult(t *testing.T) {
	t.Run("computes total pages with rounding up", func(t *testing.T) {
		r := NewPaginatedResult([]string{"a", "b"}, 25, Pagination{Page: 1, PerPage: 10})
		if r.TotalPages != 3 {
			t.Fatalf("expected 3 total pages, got %d", r.TotalPages)
		}
	})

	t.Run("exact division", func(t *testing.T) {
		r := NewPaginatedResult([]string{}, 20, Pagination{Page: 2, PerPage: 10})
		if r.TotalPages != 2 {
			t.Fatalf("expected 2 total pages, got %d", r.TotalPages)
		}
	})

	t.Run("zero total means zero pages", func(t *testing.T) {
		r := NewPaginatedResult([]string{}, 0, Pagination{Page: 1, PerPage: 10})
		if r.TotalPages != 0 {
			t.Fatalf("expected 0 total pages, got %d", r.TotalPages)
		}
	})

	t.Run("echoes pagination values", func(t *testing.T) {
		r := NewPaginatedResult([]int{1, 2, 3}, 3, Pagination{Page: 4, PerPage: 20})
		if r.Page != 4 || r.PerPage != 20 || r.Total != 3 {
			t.Fatalf("unexpected result: %+v", r)
		}
		if len(r.Data) != 3 {
			t.Fatalf("expected 3 items, got %d", len(r.Data))
		}
	})
}
