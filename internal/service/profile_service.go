package service

import (
	"context"
	"errors"

	"github.com/iris-cmd22/A13/internal/domain"
	"github.com/iris-cmd22/A13/internal/repository"
	"gorm.io/gorm"
)

type ProfileService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

func NewProfileService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// FindProfileByEmail returns the profile owned by the user with the given
// email, or domain.ErrUserNotFound when no such user exists.
func (s *ProfileService) FindProfileByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if user.Profile != nil {
		return user.Profile, nil
	}

	profile, err := s.profileRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// SaveProfile upserts a profile. A nil profile is a caller bug and is
// rejected with domain.ErrMissingProfile.
func (s *ProfileService) SaveProfile(ctx context.Context, profile *domain.UserProfile) error {
	if profile == nil {
		return domain.ErrMissingProfile
	}
	return s.profileRepo.Save(ctx, profile)
}
