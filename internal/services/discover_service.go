package services

import (
	"context"

	"breate/backend/internal/db/repositories"
	"breate/backend/internal/models/dtos"
)

type DiscoverService struct {
	users    *repositories.UserRepository
	projects *ProjectService
}

func NewDiscoverService(users *repositories.UserRepository, projects *ProjectService) *DiscoverService {
	return &DiscoverService{users: users, projects: projects}
}

// Users filters the user directory. All filters optional, AND-combined.
func (s *DiscoverService) Users(ctx context.Context, username string, archetypeID, tierID *uint) ([]dtos.DiscoverUserEntry, error) {
	users, err := s.users.Search(ctx, username, archetypeID, tierID)
	if err != nil {
		return nil, err
	}

	out := make([]dtos.DiscoverUserEntry, 0, len(users))
	for _, u := range users {
		entry := dtos.DiscoverUserEntry{
			ID:        u.ID,
			Username:  u.Username,
			FullName:  u.FullName,
			Bio:       u.Bio,
			NextBuild: u.NextBuild,
		}
		if u.Archetype != nil {
			entry.Archetype = &u.Archetype.Name
		}
		out = append(out, entry)
	}
	return out, nil
}

// Projects returns the open-project discovery feed.
func (s *DiscoverService) Projects(ctx context.Context, region, archetype, coalition string) ([]dtos.ProjectResponse, error) {
	return s.projects.Discover(ctx, region, archetype, coalition)
}
