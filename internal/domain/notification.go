package domain

import "time"

// Notification is a persisted message to a user. Delivery to live
// connections is best-effort; the row is the source of truth.
type Notification struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	RecipientID int       `json:"recipientId" gorm:"not null;index"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"createdAt"`
}
