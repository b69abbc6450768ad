package domain

import (
	"time"

	"gorm.io/datatypes"
)

// UserProfile carries the follow graph for one user. FollowerIDs and
// FollowingIDs hold profile IDs, not user IDs. For any pair (A, B), B's
// profile ID is in A's FollowingIDs exactly when A's profile ID is in
// B's FollowerIDs.
type UserProfile struct {
	ID           int                      `json:"id" gorm:"primaryKey"`
	UserID       int                      `json:"userId" gorm:"uniqueIndex;not null"`
	FollowerIDs  datatypes.JSONSlice[int] `json:"followerIds"`
	FollowingIDs datatypes.JSONSlice[int] `json:"followingIds"`
	CreatedAt    time.Time                `json:"createdAt"`
	UpdatedAt    time.Time                `json:"updatedAt"`
}

// TableName returns the table name for GORM.
func (UserProfile) TableName() string {
	return "user_profiles"
}

// IsFollowing reports whether profileID appears in the following list.
func (p *UserProfile) IsFollowing(profileID int) bool {
	for _, id := range p.FollowingIDs {
		if id == profileID {
			return true
		}
	}
	return false
}

// AddFollower records profileID as a follower of this profile.
func (p *UserProfile) AddFollower(profileID int) {
	p.FollowerIDs = append(p.FollowerIDs, profileID)
}

// AddFollowing records this profile as following profileID.
func (p *UserProfile) AddFollowing(profileID int) {
	p.FollowingIDs = append(p.FollowingIDs, profileID)
}

// RemoveFollower drops profileID from the follower list.
func (p *UserProfile) RemoveFollower(profileID int) {
	p.FollowerIDs = removeID(p.FollowerIDs, profileID)
}

// RemoveFollowing drops profileID from the following list.
func (p *UserProfile) RemoveFollowing(profileID int) {
	p.FollowingIDs = removeID(p.FollowingIDs, profileID)
}

func removeID(ids datatypes.JSONSlice[int], id int) datatypes.JSONSlice[int] {
	out := make(datatypes.JSONSlice[int], 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
