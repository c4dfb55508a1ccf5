package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"breate/backend/internal/constants"
	"breate/backend/internal/db/repositories"
	"breate/backend/internal/metrics"
	"breate/backend/internal/models/dtos"
	models "breate/backend/internal/models/gorm"
)

type CollabService struct {
	links      *repositories.CollabRepository
	users      *repositories.UserRepository
	metricsReg *metrics.MetricsRegistry
}

func NewCollabService(links *repositories.CollabRepository, users *repositories.UserRepository, metricsReg *metrics.MetricsRegistry) *CollabService {
	return &CollabService{
		links:      links,
		users:      users,
		metricsReg: metricsReg,
	}
}

// Create records a pending collaboration from the caller toward the named
// collaborator. The caller's side starts confirmed; the link is unique per
// unordered username pair.
func (s *CollabService) Create(ctx context.Context, caller *models.User, req *dtos.CollabCreateReq) (*dtos.CollabResponse, error) {
	if caller.Username == nil || *caller.Username == "" {
		return nil, NewError(ErrInvalidArgument, "Set a username before recording collaborations")
	}

	collaborator, err := s.users.GetByUsername(ctx, req.CollaboratorUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(ErrNotFound, constants.MsgUserNotFound)
		}
		return nil, fmt.Errorf("failed to fetch collaborator: %w", err)
	}

	if collaborator.Username == nil || *collaborator.Username == *caller.Username {
		return nil, NewError(ErrInvalidArgument, constants.MsgSelfCollaboration)
	}

	_, err = s.links.FindPair(ctx, *caller.Username, *collaborator.Username)
	if err == nil {
		return nil, NewError(ErrDuplicatePair, constants.MsgCollabAlreadyExists)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing link: %w", err)
	}

	link := &models.CollabLink{
		UserAUsername:  *caller.Username,
		UserBUsername:  *collaborator.Username,
		ProjectName:    req.ProjectName,
		Status:         constants.CollabStatusPending,
		UserAConfirmed: true,
		UserBConfirmed: false,
	}
	if err := s.links.Create(ctx, link); err != nil {
		return nil, err
	}

	if s.metricsReg != nil {
		s.metricsReg.CollabLinksTotal.Inc()
	}
	return collabResponse(link), nil
}

// ListMine returns every link the caller appears in, newest first.
func (s *CollabService) ListMine(ctx context.Context, caller *models.User) ([]dtos.CollabResponse, error) {
	if caller.Username == nil {
		return []dtos.CollabResponse{}, nil
	}

	links, err := s.links.ListForUser(ctx, *caller.Username)
	if err != nil {
		return nil, err
	}

	out := make([]dtos.CollabResponse, 0, len(links))
	for i := range links {
		out = append(out, *collabResponse(&links[i]))
	}
	return out, nil
}

func collabResponse(l *models.CollabLink) *dtos.CollabResponse {
	return &dtos.CollabResponse{
		ID:            l.ID,
		UserAUsername: l.UserAUsername,
		UserBUsername: l.UserBUsername,
		ProjectName:   l.ProjectName,
		Status:        string(l.Status),
		CreatedAt:     l.CreatedAt,
		VerifiedAt:    l.VerifiedAt,
	}
}
