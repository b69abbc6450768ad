package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/iris-cmd22/A13/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(payload))
	require.NoError(t, err)
	return resp
}

func TestAuthEndpoints(t *testing.T) {
	ts := testutil.NewTestServer(t)

	t.Run("register returns user and token", func(t *testing.T) {
		ts.DB.Truncate(t)

		resp := postJSON(t, ts.APIURL("/auth/register"), map[string]string{
			"email":    "reg@example.com",
			"name":     "Reg",
			"surname":  "Istrant",
			"password": "password123",
		})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var authResp testutil.AuthResponse
		testutil.AssertJSONResponse(t, resp, &authResp)
		assert.Equal(t, "reg@example.com", authResp.User.Email)
		assert.NotEmpty(t, authResp.Token)
	})

	t.Run("register with taken email conflicts", func(t *testing.T) {
		ts.DB.Truncate(t)
		testutil.NewUserBuilder().WithEmail("taken@example.com").Build(t, ts.DB.DB)

		resp := postJSON(t, ts.APIURL("/auth/register"), map[string]string{
			"email":    "taken@example.com",
			"password": "password123",
		})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusConflict, "Email already registered")
	})

	t.Run("register without password is rejected", func(t *testing.T) {
		resp := postJSON(t, ts.APIURL("/auth/register"), map[string]string{
			"email": "nopass@example.com",
		})
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	})

	t.Run("login with wrong password is unauthorized", func(t *testing.T) {
		ts.DB.Truncate(t)
		user, _ := testutil.NewUserBuilder().WithEmail("login@example.com").Build(t, ts.DB.DB)

		resp := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"email":    user.Email,
			"password": "wrongpassword",
		})
		defer resp.Body.Close()

		testutil.AssertErrorResponse(t, resp, http.StatusUnauthorized, "Invalid credentials")
	})

	t.Run("me returns the authenticated user", func(t *testing.T) {
		ts.DB.Truncate(t)
		user, token := testutil.NewUserBuilder().
			WithEmail("me@example.com").
			BuildAndAuthenticate(t, ts)

		req := testutil.CreateAuthenticatedRequest(t, http.MethodGet, ts.APIURL("/auth/me"), nil, token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusOK)

		var me struct {
			ID    int    `json:"id"`
			Email string `json:"email"`
		}
		testutil.AssertJSONResponse(t, resp, &me)
		assert.Equal(t, user.ID, me.ID)
		assert.Equal(t, user.Email, me.Email)
	})

	t.Run("me without token is unauthorized", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/auth/me"))
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusUnauthorized)
	})

	t.Run("google callback with bad state is rejected", func(t *testing.T) {
		resp, err := http.Get(ts.APIURL("/auth/google/callback?state=forged&code=x"))
		require.NoError(t, err)
		defer resp.Body.Close()

		testutil.AssertStatusCode(t, resp, http.StatusBadRequest)
	})
}
