package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/iris-cmd22/A13/internal/api/handlers"
	"github.com/iris-cmd22/A13/internal/api/middleware"
	"github.com/iris-cmd22/A13/internal/oauth"
	"github.com/iris-cmd22/A13/internal/service"
	"github.com/iris-cmd22/A13/internal/websocket"
	"github.com/rs/cors"
)

func NewRouter(services *service.Services, hub *websocket.Hub, provider *oauth.GoogleProvider) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(cors.AllowAll().Handler)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, provider)
	followHandler := handlers.NewFollowHandler(services.Follow)
	profileHandler := handlers.NewProfileHandler(services.Auth, services.Profile)
	notificationHandler := handlers.NewNotificationHandler(services.Notification)
	wsHandler := handlers.NewWebSocketHandler(hub, services.Auth)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Get("/google/login", authHandler.GoogleLogin)
			r.Get("/google/callback", authHandler.GoogleCallback)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Route("/users", func(r chi.Router) {
				r.Post("/team", followHandler.GetTeam)
				r.Post("/{id}/follow", followHandler.ToggleFollow)
				r.Get("/{id}/followers", followHandler.GetFollowers)
				r.Get("/{id}/following", followHandler.GetFollowing)
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", profileHandler.GetProfile)
				r.Put("/", profileHandler.UpdateProfile)
			})

			r.Get("/notifications", notificationHandler.List)
		})

		// WebSocket endpoint
		r.Get("/ws", wsHandler.Handle)
	})

	return r
}
