package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/labourlink-api/internal/models"
	"github.com/yukikurage/labourlink-api/internal/repository"
	"gorm.io/gorm"
)

var ErrNegativeExperience = errors.New("Experience years cannot be negative.")

// ProfileService handles the role-specific profile of each user.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// UpdateProfileInput holds every editable profile field. Fields that do not
// belong to the caller's role are ignored and cleared.
type UpdateProfileInput struct {
	Skills             []string
	ExperienceYears    int
	PreferredLocations []string
	Bio                string
	CompanyName        string
	CompanyAddress     string
	CompanyType        string
	Website            string
}

// GetProfile returns the caller's stored profile. When none has been saved yet
// it returns an empty profile and isNew is true.
func (s *ProfileService) GetProfile(ctx context.Context, actor Actor) (*models.Profile, bool, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return emptyProfile(actor), true, nil
		}
		return nil, false, fmt.Errorf("failed to find profile: %w", err)
	}

	profile.Skills = nonNil(profile.Skills)
	profile.PreferredLocations = nonNil(profile.PreferredLocations)
	return profile, false, nil
}

// UpdateProfile creates or replaces the caller's profile.
func (s *ProfileService) UpdateProfile(ctx context.Context, actor Actor, input UpdateProfileInput) (*models.Profile, error) {
	profile := emptyProfile(actor)
	profile.Bio = strings.TrimSpace(input.Bio)

	switch actor.Role {
	case models.RoleWorker:
		if input.ExperienceYears < 0 {
			return nil, ErrNegativeExperience
		}
		profile.Skills = CleanList(input.Skills)
		profile.ExperienceYears = input.ExperienceYears
		profile.PreferredLocations = CleanList(input.PreferredLocations)
	case models.RoleRecruiter:
		profile.CompanyName = strings.TrimSpace(input.CompanyName)
		profile.CompanyAddress = strings.TrimSpace(input.CompanyAddress)
		profile.CompanyType = strings.TrimSpace(input.CompanyType)
		profile.Website = strings.TrimSpace(input.Website)
	default:
		return nil, ErrInvalidRole
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	saved, err := s.profileRepo.FindByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}
	saved.Skills = nonNil(saved.Skills)
	saved.PreferredLocations = nonNil(saved.PreferredLocations)

	return saved, nil
}

// CleanList trims entries, splits comma-separated entries and drops blanks.
func CleanList(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				cleaned = append(cleaned, part)
			}
		}
	}
	return cleaned
}

func emptyProfile(actor Actor) *models.Profile {
	return &models.Profile{
		UserID:             actor.UserID,
		Role:               actor.Role,
		Skills:             []string{},
		PreferredLocations: []string{},
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
