package domain_test

import (
	"testing"

	"github.com/iris-cmd22/A13/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestUserProfile_FollowLists(t *testing.T) {
	profile := &domain.UserProfile{}

	assert.False(t, profile.IsFollowing(7))

	profile.AddFollowing(7)
	profile.AddFollowing(9)
	assert.True(t, profile.IsFollowing(7))
	assert.True(t, profile.IsFollowing(9))

	profile.RemoveFollowing(7)
	assert.False(t, profile.IsFollowing(7))
	assert.True(t, profile.IsFollowing(9))

	profile.AddFollower(3)
	assert.Len(t, profile.FollowerIDs, 1)
	profile.RemoveFollower(3)
	assert.Empty(t, profile.FollowerIDs)

	// Removing an absent ID is a no-op
	profile.RemoveFollower(42)
	assert.Empty(t, profile.FollowerIDs)
}

func TestUser_FullName(t *testing.T) {
	tests := []struct {
		name     string
		user     domain.User
		expected string
	}{
		{"name and surname", domain.User{Name: "Ada", Surname: "Lovelace"}, "Ada Lovelace"},
		{"name only", domain.User{Name: "Ada"}, "Ada"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.user.FullName())
		})
	}
}

func TestGoogleUser_Surname(t *testing.T) {
	tests := []struct {
		name     string
		display  string
		expected string
	}{
		{"two tokens", "Ada Lovelace", "Lovelace"},
		{"single token", "Ada", ""},
		{"three tokens", "Ada King Lovelace", "Lovelace"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oauthUser := domain.GoogleUser{Name: tt.display}
			assert.Equal(t, tt.expected, oauthUser.Surname())
		})
	}
}
