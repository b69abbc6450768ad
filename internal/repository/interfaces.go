package repository

import (
	"context"

	"github.com/iris-cmd22/A13/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByIDs(ctx context.Context, ids []int) ([]*domain.User, error)
	GetByProfileID(ctx context.Context, profileID int) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id int) (*domain.UserProfile, error)
	GetByUserID(ctx context.Context, userID int) (*domain.UserProfile, error)
	Save(ctx context.Context, profile *domain.UserProfile) error
	// SavePair persists both profiles in one transaction so the two
	// sides of a follow edge commit or roll back together.
	SavePair(ctx context.Context, a, b *domain.UserProfile) error
}

type TokenRepository interface {
	Create(ctx context.Context, token *domain.AuthenticatedUser) error
	GetByUserID(ctx context.Context, userID int) ([]*domain.AuthenticatedUser, error)
	DeleteByUserID(ctx context.Context, userID int) error
}

type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	GetByRecipientID(ctx context.Context, recipientID int) ([]*domain.Notification, error)
}

type Repositories struct {
	User         UserRepository
	Profile      ProfileRepository
	Token        TokenRepository
	Notification NotificationRepository
}
