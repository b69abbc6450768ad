package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/iris-cmd22/A13/internal/api/middleware"
	"github.com/iris-cmd22/A13/internal/domain"
	"github.com/iris-cmd22/A13/internal/service"
)

type FollowHandler struct {
	followService *service.FollowService
}

func NewFollowHandler(followService *service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

type TeamRequest struct {
	IDs []string `json:"ids"`
}

// ToggleFollow flips the follow edge from the authenticated user to the
// user named in the URL.
func (h *FollowHandler) ToggleFollow(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	targetID := chi.URLParam(r, "id")
	if err := h.followService.ToggleFollow(r.Context(), targetID, strconv.Itoa(actorID)); err != nil {
		writeFollowError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Follow status changed"})
}

func (h *FollowHandler) GetFollowers(w http.ResponseWriter, r *http.Request) {
	users, err := h.followService.GetFollowers(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeFollowError(w, err)
		return
	}

	writeUserList(w, users)
}

func (h *FollowHandler) GetFollowing(w http.ResponseWriter, r *http.Request) {
	users, err := h.followService.GetFollowing(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeFollowError(w, err)
		return
	}

	writeUserList(w, users)
}

// GetTeam bulk-resolves users by ID list.
func (h *FollowHandler) GetTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	users, err := h.followService.GetTeamMembers(r.Context(), req.IDs)
	if err != nil {
		writeFollowError(w, err)
		return
	}

	writeUserList(w, users)
}

// writeFollowError maps tagged service errors onto HTTP statuses. Anything
// untagged is a store failure and stays an opaque 500; the cause is logged.
func writeFollowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidUserID), errors.Is(err, domain.ErrEmptyIDList):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrProfileNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Printf("ERROR [FollowHandler] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func writeUserList(w http.ResponseWriter, users []*domain.User) {
	resp := make([]UserResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, toUserResponse(user))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
