package repositories

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"breate/backend/internal/constants"
	models "breate/backend/internal/models/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new GORM-based project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project

	err := r.db.WithContext(ctx).First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// List returns the public feed: every project, newest first.
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Discover returns open projects matching the optional substring filters,
// newest first. archetype and coalition match against the delimited tag
// columns.
func (r *ProjectRepository) Discover(ctx context.Context, region, archetype, coalition string) ([]models.Project, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("status = ?", constants.ProjectStatusOpen)

	if region != "" {
		q = q.Where("LOWER(region) LIKE ?", "%"+strings.ToLower(region)+"%")
	}
	if archetype != "" {
		q = q.Where("LOWER(needed_archetypes) LIKE ?", "%"+strings.ToLower(archetype)+"%")
	}
	if coalition != "" {
		q = q.Where("LOWER(coalition_tags) LIKE ?", "%"+strings.ToLower(coalition)+"%")
	}

	var projects []models.Project
	if err := q.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to discover projects: %w", err)
	}
	return projects, nil
}

// Save persists in-place mutations of a loaded project row.
func (r *ProjectRepository) Save(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		return fmt.Errorf("failed to save project %d: %w", project.ID, err)
	}
	return nil
}

// Delete removes a project and its participant rows in one transaction.
func (r *ProjectRepository) Delete(ctx context.Context, project *models.Project) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", project.ID).
			Delete(&models.ProjectParticipant{}).Error; err != nil {
			return err
		}
		return tx.Delete(project).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete project %d: %w", project.ID, err)
	}
	return nil
}

// CountParticipants reports the number of participant rows for a project.
func (r *ProjectRepository) CountParticipants(ctx context.Context, projectID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ProjectParticipant{}).
		Where("project_id = ?", projectID).
		Count(&count).Error
	return count, err
}
