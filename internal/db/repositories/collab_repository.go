package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	models "breate/backend/internal/models/gorm"
)

type CollabRepository struct {
	db *gorm.DB
}

// NewCollabRepository creates a new GORM-based collab link repository
func NewCollabRepository(db *gorm.DB) *CollabRepository {
	return &CollabRepository{db: db}
}

func (r *CollabRepository) Create(ctx context.Context, link *models.CollabLink) error {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return fmt.Errorf("failed to create collab link: %w", err)
	}
	return nil
}

// FindPair looks up a link between two usernames in either order.
func (r *CollabRepository) FindPair(ctx context.Context, a, b string) (*models.CollabLink, error) {
	var link models.CollabLink

	err := r.db.WithContext(ctx).
		Where(
			"(user_a_username = ? AND user_b_username = ?) OR (user_a_username = ? AND user_b_username = ?)",
			a, b, b, a,
		).
		First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// ListForUser returns every link the user appears in, newest first.
func (r *CollabRepository) ListForUser(ctx context.Context, username string) ([]models.CollabLink, error) {
	var links []models.CollabLink

	err := r.db.WithContext(ctx).
		Where("user_a_username = ? OR user_b_username = ?", username, username).
		Order("created_at DESC").
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list collab links: %w", err)
	}
	return links, nil
}
