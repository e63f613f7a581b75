/*
Package handler provides the HTTP handlers and routing setup for the Mindful Campus server.

This file defines the main Router, applying necessary middleware like logging, CORS,
and IP-based rate limiting before delegating requests to the guarded page routes and
the API handlers.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"mindcampus/internal/app/guard"
	"mindcampus/internal/app/session"
	"mindcampus/internal/pkg/auth/jwt"
	"mindcampus/internal/pkg/limiter"
	"mindcampus/internal/pkg/logx"
	"mindcampus/internal/pkg/metrics"
	"mindcampus/internal/pkg/resp"
)

const (
	AuthRate  = 0.2
	AuthBurst = 5
	ChatRate  = 0.5
	ChatBurst = 3
)

// Router sets up the main HTTP routing table (chi.Router) for the application.
// It initializes IP-based rate limiters, configures CORS, and applies global and
// per-route middleware before registering the guarded pages and the API.
func Router(deps *AppDeps) http.Handler {
	authLimiter := limiter.NewIPRateLimiter(rate.Limit(AuthRate), AuthBurst)
	chatLimiter := limiter.NewIPRateLimiter(rate.Limit(ChatRate), ChatBurst)

	r := chi.NewRouter()

	allowedOrigins := make(map[string]struct{})
	for _, origin := range deps.Config.AllowedOrigins {
		allowedOrigins[origin] = struct{}{}
	}

	var wsUpgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			if deps.Config.Environment == "development" {
				return true
			}

			origin := r.Header.Get("Origin")
			if _, ok := allowedOrigins[origin]; ok {
				return true
			}

			logx.Warn("WebSocket connection rejected: Origin not allowed.", "origin", origin)
			return false
		},
	}

	corsAllowedOrigins := []string{}
	if deps.Config.Environment == "development" {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		data := map[string]string{
			"status":  "ok",
			"service": "Mindful Campus Server",
		}
		resp.RespondSuccess(w, r, data)
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Guarded page routes: the navigation surface the route guard gates.
	for _, route := range guard.Routes() {
		r.Get(route.Path, GuardPage(deps, route, HandlePage(deps, route)))
	}

	r.Route("/api", func(api chi.Router) {
		api.Use(jwt.IdentityExtractorMiddleware(deps.Config.JWTSecret))

		api.Route("/auth", func(auth chi.Router) {
			auth.Use(authLimiter.Middleware)
			auth.Post("/login", HandleLogin(deps))
			auth.Post("/signup", HandleSignup(deps))
			auth.Post("/guest", HandleGuestLogin(deps))
			auth.Post("/logout", HandleLogout(deps))
		})

		api.Route("/user", func(user chi.Router) {
			user.Get("/profile", HandleGetProfile(deps))
			user.Post("/profile", HandleUpdateProfile(deps))
		})

		rateLimitedChat := chatLimiter.Middleware(RequireRoles(deps, nil, HandleChatMessage(deps)))
		api.Post("/chat", http.HandlerFunc(rateLimitedChat.ServeHTTP))
		api.Get("/chat/transcript", RequireRoles(deps, nil, HandleChatTranscript(deps)))

		api.Get("/content/quotes", HandleQuotes(deps))
		api.Get("/content/resources", RequireRoles(deps, nil, HandleResources(deps)))
		api.Get("/content/counselors", RequireRoles(deps, nil, HandleCounselors(deps)))
		api.Get("/content/mood-options", RequireRoles(deps, nil, HandleMoodOptions(deps)))
		api.Post("/mood", RequireRoles(deps, nil, HandleMoodCheckIn(deps)))

		api.Get("/forum", RequireRoles(deps, nil, HandleForumList(deps)))
		api.Post("/forum", RequireRoles(deps, nil, HandleForumCreate(deps)))

		api.Post("/booking", RequireRoles(deps, []session.Role{session.RoleStudent}, HandleCreateBooking(deps)))

		api.Get("/analytics", RequireRoles(deps, []session.Role{session.RoleAdmin, session.RoleCounselor}, HandleAnalytics(deps)))
	})

	r.With(jwt.IdentityExtractorMiddleware(deps.Config.JWTSecret)).
		Get("/ws/chat", RequireRoles(deps, nil, HandleChatWS(deps, wsUpgrader)))

	return r
}
