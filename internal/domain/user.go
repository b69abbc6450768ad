package domain

import (
	"strings"
	"time"
)

// User is an account record. Every user owns exactly one UserProfile,
// created together with the account.
type User struct {
	ID                   int       `json:"id" gorm:"primaryKey"`
	Email                string    `json:"email" gorm:"uniqueIndex;not null"`
	Name                 string    `json:"name"`
	Surname              string    `json:"surname"`
	PasswordHash         string    `json:"-"`
	RegisteredWithGoogle bool      `json:"registeredWithGoogle"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`

	Profile *UserProfile `json:"profile,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// FullName joins name and surname, skipping an unset surname.
func (u *User) FullName() string {
	if u.Surname == "" {
		return u.Name
	}
	return u.Name + " " + u.Surname
}

// AuthenticatedUser associates a user with an issued session token.
// A new row is written on every login; rows are never deduplicated.
type AuthenticatedUser struct {
	ID        int       `json:"id" gorm:"primaryKey"`
	UserID    int       `json:"userId" gorm:"not null;index"`
	Token     string    `json:"token" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// GoogleUser is the slice of Google's userinfo response the account flow
// needs. It is never persisted, only used as source data for user creation.
type GoogleUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Surname derives a surname from the display name: the last
// whitespace-separated token, but only when the name has more than one.
// Single-token names yield no surname.
func (g GoogleUser) Surname() string {
	parts := strings.Fields(g.Name)
	if len(parts) > 1 {
		return parts[len(parts)-1]
	}
	return ""
}
