package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/iris-cmd22/A13/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	name     string
	surname  string
	password string
	google   bool
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.New().String()[:8]
	return &UserBuilder{
		email:    fmt.Sprintf("testuser_%s@example.com", suffix),
		name:     "Test",
		surname:  "User",
		password: "testpassword123",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithName sets the name
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = name
	return b
}

// WithSurname sets the surname
func (b *UserBuilder) WithSurname(surname string) *UserBuilder {
	b.surname = surname
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// FromGoogle marks the account as OAuth-originated
func (b *UserBuilder) FromGoogle() *UserBuilder {
	b.google = true
	return b
}

// Build creates the user (with its profile) in the database and returns
// the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Email:                b.email,
		Name:                 b.name,
		Surname:              b.surname,
		PasswordHash:         string(hashedPassword),
		RegisteredWithGoogle: b.google,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
		Profile:              &domain.UserProfile{},
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	User struct {
		ID      int    `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Surname string `json:"surname"`
	} `json:"user"`
	Token string `json:"token"`
}

// BuildAndAuthenticate creates a user via API and returns the user and token
func (b *UserBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	reqBody := map[string]string{
		"email":    b.email,
		"name":     b.name,
		"surname":  b.surname,
		"password": b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register user: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	user := &domain.User{
		ID:      authResp.User.ID,
		Email:   authResp.User.Email,
		Name:    authResp.User.Name,
		Surname: authResp.User.Surname,
	}

	return user, authResp.Token
}

// Follow wires an existing follow edge between two users directly in the
// database, keeping both profile lists symmetric.
func Follow(t *testing.T, db *gorm.DB, actor, target *domain.User) {
	t.Helper()

	if actor.Profile == nil || target.Profile == nil {
		t.Fatalf("both users must have profiles loaded")
	}

	actor.Profile.AddFollowing(target.Profile.ID)
	target.Profile.AddFollower(actor.Profile.ID)

	if err := db.Save(actor.Profile).Error; err != nil {
		t.Fatalf("failed to save actor profile: %v", err)
	}
	if err := db.Save(target.Profile).Error; err != nil {
		t.Fatalf("failed to save target profile: %v", err)
	}
}

// ReloadProfile fetches the current profile row for a user
func ReloadProfile(t *testing.T, db *gorm.DB, userID int) *domain.UserProfile {
	t.Helper()

	var profile domain.UserProfile
	if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
		t.Fatalf("failed to reload profile for user %d: %v", userID, err)
	}
	return &profile
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}
