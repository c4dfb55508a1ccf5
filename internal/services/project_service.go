package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"breate/backend/internal/constants"
	"breate/backend/internal/db/repositories"
	"breate/backend/internal/metrics"
	"breate/backend/internal/models/dtos"
	models "breate/backend/internal/models/gorm"
)

// validStatusFlow maps each non-terminal status to its single legal
// successor. "completed" is terminal.
var validStatusFlow = map[constants.ProjectStatus]constants.ProjectStatus{
	constants.ProjectStatusOpen:       constants.ProjectStatusInProgress,
	constants.ProjectStatusInProgress: constants.ProjectStatusCompleted,
}

// ValidateStatusTransition enforces the one-directional lifecycle
// open -> in_progress -> completed.
func ValidateStatusTransition(current, next constants.ProjectStatus) error {
	if current == constants.ProjectStatusCompleted {
		return NewError(ErrInvalidTransition, constants.MsgCompletedImmutable)
	}
	if validStatusFlow[current] != next {
		return NewError(ErrInvalidTransition,
			fmt.Sprintf("invalid status transition: %s -> %s", current, next))
	}
	return nil
}

// IsPoster is the ownership predicate for project mutations.
func IsPoster(caller *models.User, project *models.Project) bool {
	return caller != nil && project.PosterID == caller.ID
}

type ProjectService struct {
	repo       *repositories.ProjectRepository
	metricsReg *metrics.MetricsRegistry
}

func NewProjectService(repo *repositories.ProjectRepository, metricsReg *metrics.MetricsRegistry) *ProjectService {
	return &ProjectService{repo: repo, metricsReg: metricsReg}
}

// Create posts a new project. The caller becomes the immutable poster and
// the status initializes to open.
func (s *ProjectService) Create(ctx context.Context, caller *models.User, req *dtos.ProjectCreateReq) (*dtos.ProjectResponse, error) {
	if req.Title == "" || req.Objective == "" || req.ProjectType == "" {
		return nil, NewError(ErrInvalidArgument, "Title, objective and project type are required")
	}

	project := &models.Project{
		Title:            req.Title,
		Objective:        req.Objective,
		ProjectType:      req.ProjectType,
		NeededArchetypes: JoinTags(req.NeededArchetypes),
		CoalitionTags:    JoinTags(req.CoalitionTags),
		OpenRoles:        req.OpenRoles,
		Timeline:         req.Timeline,
		Region:           req.Region,
		PosterID:         caller.ID,
		Status:           constants.ProjectStatusOpen,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, err
	}

	if s.metricsReg != nil {
		s.metricsReg.ProjectsCreatedTotal.Inc()
	}
	return projectResponse(project), nil
}

// List returns the public feed, newest first.
func (s *ProjectService) List(ctx context.Context) ([]dtos.ProjectResponse, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return projectResponses(projects), nil
}

// Discover returns open projects matching the optional filters.
func (s *ProjectService) Discover(ctx context.Context, region, archetype, coalition string) ([]dtos.ProjectResponse, error) {
	projects, err := s.repo.Discover(ctx, region, archetype, coalition)
	if err != nil {
		return nil, err
	}
	return projectResponses(projects), nil
}

func (s *ProjectService) Get(ctx context.Context, id uint) (*dtos.ProjectResponse, error) {
	project, err := s.getProject(ctx, id)
	if err != nil {
		return nil, err
	}
	return projectResponse(project), nil
}

// UpdateStatus advances the lifecycle by exactly one legal step. Reaching
// completed stamps the completion timestamp.
func (s *ProjectService) UpdateStatus(ctx context.Context, caller *models.User, id uint, requested string) (*dtos.ProjectResponse, error) {
	project, err := s.getProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if !IsPoster(caller, project) {
		return nil, NewError(ErrForbidden, constants.MsgProjectForbidden)
	}

	next := constants.ProjectStatus(requested)
	if !constants.KnownProjectStatuses[next] {
		return nil, NewError(ErrInvalidArgument, constants.MsgInvalidStatus)
	}

	if err := ValidateStatusTransition(project.Status, next); err != nil {
		return nil, err
	}

	project.Status = next
	if next == constants.ProjectStatusCompleted {
		now := time.Now().UTC()
		project.CompletedAt = &now
	}

	if err := s.repo.Save(ctx, project); err != nil {
		return nil, err
	}
	return projectResponse(project), nil
}

// Delete removes a project while it is still open. Participant rows go with
// it.
func (s *ProjectService) Delete(ctx context.Context, caller *models.User, id uint) error {
	project, err := s.getProject(ctx, id)
	if err != nil {
		return err
	}

	if !IsPoster(caller, project) {
		return NewError(ErrForbidden, constants.MsgDeleteForbidden)
	}
	if project.Status != constants.ProjectStatusOpen {
		return NewError(ErrInvalidOperation, constants.MsgOnlyOpenDeletable)
	}

	return s.repo.Delete(ctx, project)
}

func (s *ProjectService) getProject(ctx context.Context, id uint) (*models.Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(ErrNotFound, constants.MsgProjectNotFound)
		}
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	return project, nil
}

func projectResponse(p *models.Project) *dtos.ProjectResponse {
	return &dtos.ProjectResponse{
		ID:               p.ID,
		Title:            p.Title,
		Objective:        p.Objective,
		ProjectType:      p.ProjectType,
		NeededArchetypes: SplitTags(p.NeededArchetypes),
		OpenRoles:        p.OpenRoles,
		Timeline:         p.Timeline,
		Region:           p.Region,
		CoalitionTags:    SplitTags(p.CoalitionTags),
		PosterID:         p.PosterID,
		Status:           string(p.Status),
		CreatedAt:        p.CreatedAt,
		CompletedAt:      p.CompletedAt,
	}
}

func projectResponses(projects []models.Project) []dtos.ProjectResponse {
	out := make([]dtos.ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, *projectResponse(&projects[i]))
	}
	return out
}
