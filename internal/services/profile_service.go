package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"breate/backend/internal/constants"
	"breate/backend/internal/db/repositories"
	"breate/backend/internal/models/dtos"
	models "breate/backend/internal/models/gorm"
)

type ProfileService struct {
	users *repositories.UserRepository
}

func NewProfileService(users *repositories.UserRepository) *ProfileService {
	return &ProfileService{users: users}
}

// GetProfile returns the public profile view with resolved reference names.
func (s *ProfileService) GetProfile(ctx context.Context, username string) (*dtos.ProfileResponse, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(ErrNotFound, constants.MsgUserNotFound)
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	resp := &dtos.ProfileResponse{
		ID:              user.ID,
		Email:           user.Email,
		Username:        user.Username,
		FullName:        user.FullName,
		Bio:             user.Bio,
		PreferredThemes: user.PreferredThemes,
		PortfolioLinks:  user.PortfolioLinks,
		NextBuild:       user.NextBuild,
		Affiliations:    user.Affiliations,
	}
	if user.Archetype != nil {
		resp.Archetype = &user.Archetype.Name
	}
	if user.Tier != nil {
		resp.Tier = &user.Tier.Name
	}
	return resp, nil
}

// UpdateProfile applies an allow-listed partial update. Only the profile
// owner may call it; fields absent from the payload are left untouched.
func (s *ProfileService) UpdateProfile(ctx context.Context, username string, caller *models.User, req *dtos.ProfileUpdateReq) error {
	if caller == nil || caller.Username == nil || *caller.Username != username {
		return NewError(ErrForbidden, constants.MsgProfileForbidden)
	}

	fields := map[string]any{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.PreferredThemes != nil {
		fields["preferred_themes"] = *req.PreferredThemes
	}
	if req.PortfolioLinks != nil {
		fields["portfolio_links"] = *req.PortfolioLinks
	}
	if req.NextBuild != nil {
		fields["next_build"] = *req.NextBuild
	}
	if req.Affiliations != nil {
		fields["affiliations"] = *req.Affiliations
	}

	if err := s.users.UpdateFields(ctx, caller.ID, fields); err != nil {
		return err
	}
	return nil
}
