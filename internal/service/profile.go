package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"lexibook/internal/domain"
	"lexibook/internal/repository"
)

// ProfileService handles the per-user profile singleton
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// Get returns the user's profile, with defaults when never saved
func (s *ProfileService) Get(userID uuid.UUID) (domain.Profile, error) {
	profile, err := s.profileRepo.Get(userID)
	if err != nil {
		return domain.Profile{}, err
	}
	if profile == nil {
		return domain.DefaultProfile(), nil
	}
	return *profile, nil
}

// Update applies partial profile changes; nil fields stay unchanged
func (s *ProfileService) Update(userID uuid.UUID, displayName, avatarEmoji *string) (domain.Profile, error) {
	profile, err := s.Get(userID)
	if err != nil {
		return domain.Profile{}, err
	}

	if displayName != nil {
		name := strings.TrimSpace(*displayName)
		if name == "" {
			return domain.Profile{}, fmt.Errorf("%w: displayName cannot be empty", ErrInvalidInput)
		}
		profile.DisplayName = name
	}
	if avatarEmoji != nil {
		profile.AvatarEmoji = *avatarEmoji
	}

	if err := s.profileRepo.Upsert(userID, profile); err != nil {
		return domain.Profile{}, err
	}

	return profile, nil
}
