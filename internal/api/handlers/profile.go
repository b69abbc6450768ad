package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/iris-cmd22/A13/internal/api/middleware"
	"github.com/iris-cmd22/A13/internal/domain"
	"github.com/iris-cmd22/A13/internal/service"
)

type ProfileHandler struct {
	authService    *service.AuthService
	profileService *service.ProfileService
}

func NewProfileHandler(authService *service.AuthService, profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		authService:    authService,
		profileService: profileService,
	}
}

// GetProfile returns the authenticated user's profile, resolved by email.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	profile, err := h.profileService.FindProfileByEmail(r.Context(), user.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrProfileNotFound) {
			http.Error(w, "Profile not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR [ProfileHandler.GetProfile] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// UpdateProfile upserts the authenticated user's profile. The owner is
// pinned to the caller regardless of what the body claims.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var profile domain.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if user.Profile == nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	profile.ID = user.Profile.ID
	profile.UserID = user.ID

	if err := h.profileService.SaveProfile(r.Context(), &profile); err != nil {
		if errors.Is(err, domain.ErrMissingProfile) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("ERROR [ProfileHandler.UpdateProfile] %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(&profile)
}
