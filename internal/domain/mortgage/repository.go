package mortgage

import "context"

type Repository interface {
	// Append a calculation; history rows are never updated
	Create(ctx context.Context, c *Calculation) error
	GetByCalculationID(ctx context.Context, calculationID string) (*Calculation, error)
	// Most recent first
	ListRecent(ctx context.Context, limit int) ([]Calculation, error)
}
