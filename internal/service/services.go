package service

import (
	"github.com/iris-cmd22/A13/internal/config"
	"github.com/iris-cmd22/A13/internal/repository"
)

type Services struct {
	Auth         *AuthService
	Profile      *ProfileService
	Follow       *FollowService
	Notification *NotificationService
}

func NewServices(repos *repository.Repositories, pusher Pusher, cfg *config.Config) *Services {
	notification := NewNotificationService(repos.Notification, pusher)
	return &Services{
		Auth:         NewAuthService(repos.User, repos.Token, cfg),
		Profile:      NewProfileService(repos.User, repos.Profile),
		Follow:       NewFollowService(repos.User, repos.Profile, notification),
		Notification: notification,
	}
}
