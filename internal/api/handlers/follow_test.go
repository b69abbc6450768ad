package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/iris-cmd22/A13/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doAuthed(t *testing.T, method, url string, body interface{}, token string) *http.Response {
	t.Helper()

	req := testutil.CreateAuthenticatedRequest(t, method, url, body, token)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestFollowEndpoints(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("toggle follow updates both profiles and notifies", func(t *testing.T) {
		ts.DB.Truncate(t)

		actor, token := testutil.NewUserBuilder().
			WithName("Ada").WithSurname("Lovelace").
			BuildAndAuthenticate(t, ts)
		target, targetToken := testutil.NewUserBuilder().
			WithName("Grace").WithSurname("Hopper").
			BuildAndAuthenticate(t, ts)

		resp := doAuthed(t, http.MethodPost, ts.APIURL(fmt.Sprintf("/users/%d/follow", target.ID)), nil, token)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusOK)

		actorProfile := testutil.ReloadProfile(t, ts.DB.DB, actor.ID)
		targetProfile := testutil.ReloadProfile(t, ts.DB.DB, target.ID)
		testutil.AssertProfileContains(t, actorProfile.FollowingIDs, targetProfile.ID)
		testutil.AssertProfileContains(t, targetProfile.FollowerIDs, actorProfile.ID)

		// Notification shows up in the target's inbox
		notifResp := doAuthed(t, http.MethodGet, ts.APIURL("/notifications"), nil, targetToken)
		defer notifResp.Body.Close()
		testutil.AssertStatusCode(t, notifResp, http.StatusOK)

		var notifications []struct {
			Title string `json:"title"`
			Body  string `json:"body"`
		}
		testutil.AssertJSONResponse(t, notifResp, &notifications)
		require.Len(t, notifications, 1)
		assert.Contains(t, notifications[0].Body, "Ada Lovelace")
	})

	t.Run("toggle with non-numeric target is a bad request", func(t *testing.T) {
		ts.DB.Truncate(t)
		_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

		resp := doAuthed(t, http.MethodPost, ts.APIURL("/users/abc/follow"), nil, token)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	})

	t.Run("toggle with unknown target is not found", func(t *testing.T) {
		ts.DB.Truncate(t)
		_, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

		resp := doAuthed(t, http.MethodPost, ts.APIURL("/users/999999/follow"), nil, token)
		defer resp.Body.Close()
		testutil.AssertStatusCode(t, resp, http.StatusNotFound)
	})

	t.Run("followers and following listings", func(t *testing.T) {
		ts.DB.Truncate(t)

		actor, token := testutil.NewUserBuilder().WithName("Actor").BuildAndAuthenticate(t, ts)
		target, _ := testutil.NewUserBuilder().WithName("Target").BuildAndAuthenticate(t, ts)

		resp := doAuthed(t, http.MethodPost, ts.APIURL(fmt.Sprintf("/users/%d/follow", target.ID)), nil, token)
		resp.Body.Close()

		followersResp := doAuthed(t, http.MethodGet, ts.APIURL(fmt.Sprintf("/users/%d/followers", target.ID)), nil, token)
		defer followersResp.Body.Close()
		testutil.AssertStatusCode(t, followersResp, http.StatusOK)

		var followers []struct {
			ID int `json:"id"`
		}
		testutil.AssertJSONResponse(t, followersResp, &followers)
		require.Len(t, followers, 1)
		assert.Equal(t, actor.ID, followers[0].ID)

		followingResp := doAuthed(t, http.MethodGet, ts.APIURL(fmt.Sprintf("/users/%d/following", actor.ID)), nil, token)
		defer followingResp.Body.Close()

		var following []struct {
			ID int `json:"id"`
		}
		testutil.AssertJSONResponse(t, followingResp, &following)
		require.Len(t, following, 1)
		assert.Equal(t, target.ID, following[0].ID)
	})

	t.Run("team lookup status codes", func(t *testing.T) {
		ts.DB.Truncate(t)
		user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

		tests := []struct {
			name       string
			ids        []string
			wantStatus int
		}{
			{"empty list", []string{}, http.StatusBadRequest},
			{"non-numeric entry", []string{"abc"}, http.StatusBadRequest},
			{"no matches", []string{"999999"}, http.StatusNotFound},
			{"match", []string{fmt.Sprintf("%d", user.ID)}, http.StatusOK},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				resp := doAuthed(t, http.MethodPost, ts.APIURL("/users/team"), map[string][]string{"ids": tt.ids}, token)
				defer resp.Body.Close()
				testutil.AssertStatusCode(t, resp, tt.wantStatus)
			})
		}
	})

	t.Run("profile get and update", func(t *testing.T) {
		ts.DB.Truncate(t)
		user, token := testutil.NewUserBuilder().BuildAndAuthenticate(t, ts)

		getResp := doAuthed(t, http.MethodGet, ts.APIURL("/profile"), nil, token)
		defer getResp.Body.Close()
		testutil.AssertStatusCode(t, getResp, http.StatusOK)

		var profile struct {
			ID     int `json:"id"`
			UserID int `json:"userId"`
		}
		testutil.AssertJSONResponse(t, getResp, &profile)
		assert.Equal(t, user.ID, profile.UserID)

		putResp := doAuthed(t, http.MethodPut, ts.APIURL("/profile"), map[string]interface{}{
			"followerIds": []int{123},
		}, token)
		defer putResp.Body.Close()
		testutil.AssertStatusCode(t, putResp, http.StatusOK)

		reloaded := testutil.ReloadProfile(t, ts.DB.DB, user.ID)
		testutil.AssertProfileContains(t, reloaded.FollowerIDs, 123)
	})
}
