package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"breate/backend/internal/constants"
	"breate/backend/internal/db/repositories"
	"breate/backend/internal/models/dtos"
)

type CoalitionService struct {
	repo *repositories.CoalitionRepository
}

func NewCoalitionService(repo *repositories.CoalitionRepository) *CoalitionService {
	return &CoalitionService{repo: repo}
}

// List returns coalition summaries newest first, with optional search and
// region narrowing.
func (s *CoalitionService) List(ctx context.Context, search, region string) ([]dtos.CoalitionSummary, error) {
	coalitions, err := s.repo.List(ctx, search, region)
	if err != nil {
		return nil, err
	}

	out := make([]dtos.CoalitionSummary, 0, len(coalitions))
	for _, c := range coalitions {
		out = append(out, dtos.CoalitionSummary{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Focus:       c.Focus,
			Location:    c.Location,
			MemberCount: len(c.Members),
			CreatedAt:   c.CreatedAt,
		})
	}
	return out, nil
}

// Get expands a coalition with its member list and their resolved
// archetype/tier names.
func (s *CoalitionService) Get(ctx context.Context, id uint) (*dtos.CoalitionDetail, error) {
	coalition, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(ErrNotFound, constants.MsgCoalitionNotFound)
		}
		return nil, fmt.Errorf("failed to fetch coalition: %w", err)
	}

	members := make([]dtos.CoalitionMember, 0, len(coalition.Members))
	for _, m := range coalition.Members {
		member := dtos.CoalitionMember{
			ID:       m.ID,
			Username: m.Username,
			Bio:      m.Bio,
		}
		if m.Archetype != nil {
			member.Archetype = &m.Archetype.Name
		}
		if m.Tier != nil {
			member.Tier = &m.Tier.Name
		}
		members = append(members, member)
	}

	return &dtos.CoalitionDetail{
		ID:          coalition.ID,
		Name:        coalition.Name,
		Description: coalition.Description,
		Focus:       coalition.Focus,
		Location:    coalition.Location,
		CreatedAt:   coalition.CreatedAt,
		Members:     members,
	}, nil
}
