package repositories

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	models "breate/backend/internal/models/gorm"
)

type CoalitionRepository struct {
	db *gorm.DB
}

// NewCoalitionRepository creates a new GORM-based coalition repository
func NewCoalitionRepository(db *gorm.DB) *CoalitionRepository {
	return &CoalitionRepository{db: db}
}

// List returns coalitions newest first. search ORs a case-insensitive
// substring match over name, focus and location; region narrows on location.
func (r *CoalitionRepository) List(ctx context.Context, search, region string) ([]models.Coalition, error) {
	q := r.db.WithContext(ctx).Model(&models.Coalition{}).Preload("Members")

	if search != "" {
		s := "%" + strings.ToLower(search) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(focus) LIKE ? OR LOWER(location) LIKE ?",
			s, s, s,
		)
	}
	if region != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(region)+"%")
	}

	var coalitions []models.Coalition
	if err := q.Order("created_at DESC").Find(&coalitions).Error; err != nil {
		return nil, fmt.Errorf("failed to list coalitions: %w", err)
	}
	return coalitions, nil
}

// GetByID retrieves a coalition with members and their reference data.
func (r *CoalitionRepository) GetByID(ctx context.Context, id uint) (*models.Coalition, error) {
	var coalition models.Coalition

	err := r.db.WithContext(ctx).
		Preload("Members.Archetype").
		Preload("Members.Tier").
		First(&coalition, id).Error
	if err != nil {
		return nil, err
	}
	return &coalition, nil
}
