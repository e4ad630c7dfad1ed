package mortgagemock

import (
	"context"

	domain "mortgage-calculator/internal/domain/mortgage"

	"gorm.io/gorm"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset funcs fall back to a no-op create and not-found lookups.
type Repo struct {
	CreateFn             func(ctx context.Context, c *domain.Calculation) error
	GetByCalculationIDFn func(ctx context.Context, calculationID string) (*domain.Calculation, error)
	ListRecentFn         func(ctx context.Context, limit int) ([]domain.Calculation, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Calculation) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByCalculationID(ctx context.Context, calculationID string) (*domain.Calculation, error) {
	if m.GetByCalculationIDFn != nil {
		return m.GetByCalculationIDFn(ctx, calculationID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListRecent(ctx context.Context, limit int) ([]domain.Calculation, error) {
	if m.ListRecentFn != nil {
		return m.ListRecentFn(ctx, limit)
	}
	return nil, nil
}
