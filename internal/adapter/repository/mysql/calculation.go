package mysql

import (
	"context"

	domain "mortgage-calculator/internal/domain/mortgage"

	"gorm.io/gorm"
)

type CalculationRepository struct{ db *gorm.DB }

func NewCalculationRepository(db *gorm.DB) *CalculationRepository {
	return &CalculationRepository{db: db}
}

// Migrate creates or updates the history table.
func (r *CalculationRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&domain.Calculation{})
}

func (r *CalculationRepository) Create(ctx context.Context, c *domain.Calculation) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CalculationRepository) GetByCalculationID(ctx context.Context, calculationID string) (*domain.Calculation, error) {
	var out domain.Calculation
	res := r.db.WithContext(ctx).Where("calculation_id = ?", calculationID).First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *CalculationRepository) ListRecent(ctx context.Context, limit int) ([]domain.Calculation, error) {
	var out []domain.Calculation
	res := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out)
	return out, res.Error
}
