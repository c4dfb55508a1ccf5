package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	models "breate/backend/internal/models/gorm"
)

type ReferenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository creates a repository for the seeded lookup tables.
func NewReferenceRepository(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

func (r *ReferenceRepository) ListArchetypes(ctx context.Context) ([]models.Archetype, error) {
	var archetypes []models.Archetype
	if err := r.db.WithContext(ctx).Order("id").Find(&archetypes).Error; err != nil {
		return nil, fmt.Errorf("failed to list archetypes: %w", err)
	}
	return archetypes, nil
}

func (r *ReferenceRepository) ListTiers(ctx context.Context) ([]models.Tier, error) {
	var tiers []models.Tier
	if err := r.db.WithContext(ctx).Order("level").Find(&tiers).Error; err != nil {
		return nil, fmt.Errorf("failed to list tiers: %w", err)
	}
	return tiers, nil
}
