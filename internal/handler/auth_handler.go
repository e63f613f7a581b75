/*
Package handler provides HTTP handler functions for session management.

Authentication here is deliberately mocked to the platform's prototype contract:
credentials are accepted without verification and identities are generated
locally, then mirrored to the durable slot by the session store. Each successful
sign-in also issues a JWT mirroring the identity for API clients.
*/
package handler

import (
	"net/http"
	"strings"
	"time"

	"mindcampus/internal/app/session"
	"mindcampus/internal/pkg/auth/jwt"
	"mindcampus/internal/pkg/errs"
	"mindcampus/internal/pkg/logx"
	"mindcampus/internal/pkg/metrics"
	"mindcampus/internal/pkg/req"
	"mindcampus/internal/pkg/resp"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// HandleLogin establishes a session from an email and password. The password is
// not verified; the display name is the email local-part.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Sessions.Current() != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrAlreadyLoggedIn))
			return
		}

		var input LoginInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input.Email = strings.TrimSpace(input.Email)
		if !strings.Contains(input.Email, "@") {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidEmail))
			return
		}

		identity, customErr := deps.Sessions.Login(r.Context(), input.Email, input.Password, input.Role)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		metrics.SessionEvents.WithLabelValues("login").Inc()
		respondSession(w, r, deps, identity)
	}
}

type SignupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// HandleSignup establishes a session using the supplied name and role verbatim.
func HandleSignup(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Sessions.Current() != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrAlreadyLoggedIn))
			return
		}

		var input SignupInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input.Email = strings.TrimSpace(input.Email)
		if !strings.Contains(input.Email, "@") {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidEmail))
			return
		}

		identity, customErr := deps.Sessions.Signup(r.Context(), input.Email, input.Password, strings.TrimSpace(input.Name), input.Role)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		metrics.SessionEvents.WithLabelValues("signup").Inc()
		respondSession(w, r, deps, identity)
	}
}

// HandleGuestLogin establishes an anonymous guest session.
func HandleGuestLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Sessions.Current() != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrAlreadyLoggedIn))
			return
		}

		identity, customErr := deps.Sessions.LoginAsGuest(r.Context())
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		metrics.SessionEvents.WithLabelValues("guest").Inc()
		respondSession(w, r, deps, identity)
	}
}

// HandleLogout clears the session and removes the durable slot. It succeeds
// whether or not a session existed.
func HandleLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deps.Sessions.Logout(r.Context())

		metrics.SessionEvents.WithLabelValues("logout").Inc()
		resp.RespondSuccess(w, r, map[string]any{
			"loggedOut": true,
		})
	}
}

// HandleGetProfile returns the current identity.
func HandleGetProfile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := deps.Sessions.Current()
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"user": identity,
		})
	}
}

// HandleUpdateProfile shallow-merges the supplied fields into the current
// identity and re-persists it.
func HandleUpdateProfile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if deps.Sessions.Current() == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		var update session.ProfileUpdate
		if customErr := req.BindJSON(r, &update); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		identity, customErr := deps.Sessions.UpdateProfile(r.Context(), update)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"user": identity,
		})
	}
}

// respondSession issues a JWT mirroring the identity and writes the standard
// sign-in response.
func respondSession(w http.ResponseWriter, r *http.Request, deps *AppDeps, identity *session.Identity) {
	payload := &jwt.Payload{
		ID:        identity.ID,
		Name:      identity.Name,
		Role:      string(identity.Role),
		Anonymous: identity.IsAnonymous,
	}

	tokenString, err := jwt.GenerateToken(payload, deps.Config.JWTSecret, jwt.SessionExpiration)
	if err != nil {
		logx.Error(err, "failed to generate session token", "identity_id", identity.ID)
		resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
		return
	}

	resp.RespondSuccess(w, r, map[string]any{
		"token":      tokenString,
		"user":       identity,
		"signedInAt": time.Now().Format(time.RFC3339),
	})
}
