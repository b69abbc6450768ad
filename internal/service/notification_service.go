package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/iris-cmd22/A13/internal/domain"
	"github.com/iris-cmd22/A13/internal/repository"
)

// Pusher delivers a payload to a user's live connections.
type Pusher interface {
	Push(userID int, payload []byte)
}

// NotificationService persists notifications and pushes them to connected
// clients. Callers fire and forget: failures are logged, never returned.
type NotificationService struct {
	notificationRepo repository.NotificationRepository
	pusher           Pusher
}

func NewNotificationService(notificationRepo repository.NotificationRepository, pusher Pusher) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		pusher:           pusher,
	}
}

// Notify stores the notification and hands it to the pusher. The store
// write is synchronous so the row exists once the triggering operation
// returns; the live push happens in the background.
func (s *NotificationService) Notify(recipientID int, title, body string) {
	notification := &domain.Notification{
		RecipientID: recipientID,
		Title:       title,
		Body:        body,
		CreatedAt:   time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		log.Printf("ERROR [NotificationService] storing notification for user %d: %v", recipientID, err)
		return
	}

	if s.pusher == nil {
		return
	}

	payload, err := json.Marshal(notification)
	if err != nil {
		log.Printf("ERROR [NotificationService] marshaling notification %d: %v", notification.ID, err)
		return
	}

	go s.pusher.Push(recipientID, payload)
}

// ListForUser returns a user's stored notifications, newest first.
func (s *NotificationService) ListForUser(ctx context.Context, userID int) ([]*domain.Notification, error) {
	return s.notificationRepo.GetByRecipientID(ctx, userID)
}
