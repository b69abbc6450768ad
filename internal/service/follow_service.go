package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/iris-cmd22/A13/internal/domain"
	"github.com/iris-cmd22/A13/internal/repository"
	"gorm.io/gorm"
)

// Notifier accepts a best-effort message for a user. Implementations must
// not block the caller on delivery.
type Notifier interface {
	Notify(recipientID int, title, body string)
}

type FollowService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	notifier    Notifier
}

func NewFollowService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository, notifier Notifier) *FollowService {
	return &FollowService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		notifier:    notifier,
	}
}

// ToggleFollow flips the follow edge from the acting user to the target:
// adds it when absent, removes it when present. Both profile lists are
// updated and saved in one transaction so the symmetry between
// FollowerIDs and FollowingIDs survives a partial failure. The target is
// notified on a new follow, after the edge has committed.
func (s *FollowService) ToggleFollow(ctx context.Context, targetID, actorID string) error {
	target, err := s.loadUser(ctx, targetID)
	if err != nil {
		return err
	}
	actor, err := s.loadUser(ctx, actorID)
	if err != nil {
		return err
	}

	targetProfile := target.Profile
	actorProfile := actor.Profile
	if targetProfile == nil || actorProfile == nil {
		return domain.ErrProfileNotFound
	}

	wasFollowing := actorProfile.IsFollowing(targetProfile.ID)
	if wasFollowing {
		targetProfile.RemoveFollower(actorProfile.ID)
		actorProfile.RemoveFollowing(targetProfile.ID)
	} else {
		targetProfile.AddFollower(actorProfile.ID)
		actorProfile.AddFollowing(targetProfile.ID)
	}

	if err := s.profileRepo.SavePair(ctx, actorProfile, targetProfile); err != nil {
		return fmt.Errorf("saving follow edge: %w", err)
	}

	if !wasFollowing {
		s.notifier.Notify(target.ID, "You have a new follower!", actor.FullName()+" started following you!")
	}

	return nil
}

// GetFollowers resolves the users whose profiles follow the given user.
// Entries that no longer resolve to a profile and owning user are skipped.
func (s *FollowService) GetFollowers(ctx context.Context, userID string) ([]*domain.User, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Profile == nil {
		return []*domain.User{}, nil
	}
	return s.resolveUsers(ctx, user.Profile.FollowerIDs), nil
}

// GetFollowing resolves the users the given user follows. Same skip policy
// as GetFollowers.
func (s *FollowService) GetFollowing(ctx context.Context, userID string) ([]*domain.User, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Profile == nil {
		return []*domain.User{}, nil
	}
	return s.resolveUsers(ctx, user.Profile.FollowingIDs), nil
}

// GetTeamMembers looks up all users for a list of raw ID strings. The list
// must be non-empty and fully numeric, and at least one ID must match.
func (s *FollowService) GetTeamMembers(ctx context.Context, rawIDs []string) ([]*domain.User, error) {
	if len(rawIDs) == 0 {
		return nil, domain.ErrEmptyIDList
	}

	ids := make([]int, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidUserID, raw)
		}
		ids = append(ids, id)
	}

	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, domain.ErrUserNotFound
	}
	return users, nil
}

func (s *FollowService) loadUser(ctx context.Context, raw string) (*domain.User, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidUserID, raw)
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *FollowService) resolveUsers(ctx context.Context, profileIDs []int) []*domain.User {
	users := make([]*domain.User, 0, len(profileIDs))
	for _, profileID := range profileIDs {
		user, err := s.userRepo.GetByProfileID(ctx, profileID)
		if err != nil {
			// Dangling list entries are skipped, not surfaced.
			log.Printf("WARN [FollowService] skipping unresolved profile %d: %v", profileID, err)
			continue
		}
		users = append(users, user)
	}
	return users
}
