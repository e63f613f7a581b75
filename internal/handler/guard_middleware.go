/*
Package handler provides the HTTP handlers and routing setup for the Mindful Campus server.

This file adapts route guard decisions to HTTP. Page routes translate a redirect
decision into a 302 toward the auth or default screen; API routes translate it
into a 401/403 JSON error. The guard itself stays a pure function of the session
snapshot and the route descriptor.
*/
package handler

import (
	"net/http"

	"mindcampus/internal/app/guard"
	"mindcampus/internal/app/session"
	"mindcampus/internal/pkg/errs"
	"mindcampus/internal/pkg/logx"
	"mindcampus/internal/pkg/metrics"
	"mindcampus/internal/pkg/resp"
)

// GuardPage wraps a page handler with the route guard. Redirect decisions
// become 302 responses; the render decision falls through to the page.
func GuardPage(deps *AppDeps, route guard.Route, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		decision := guard.Evaluate(deps.Sessions.Snapshot(), route)
		metrics.GuardDecisions.WithLabelValues(decision.String()).Inc()

		switch decision {
		case guard.RedirectToAuth:
			http.Redirect(w, r, guard.AuthPath, http.StatusFound)

		case guard.RedirectToDefault:
			http.Redirect(w, r, guard.DefaultPath, http.StatusFound)

		default:
			next(w, r)
		}
	}
}

// RequireRoles wraps an API handler with the route guard. A missing session
// maps to 401, a role outside the allow-list to 403. An empty role list admits
// every role.
func RequireRoles(deps *AppDeps, roles []session.Role, next http.HandlerFunc) http.HandlerFunc {
	route := guard.Route{AllowedRoles: roles}

	return func(w http.ResponseWriter, r *http.Request) {
		decision := guard.Evaluate(deps.Sessions.Snapshot(), route)
		metrics.GuardDecisions.WithLabelValues(decision.String()).Inc()

		switch decision {
		case guard.RedirectToAuth:
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))

		case guard.RedirectToDefault:
			snap := deps.Sessions.Snapshot()
			role := ""
			if snap.Identity != nil {
				role = string(snap.Identity.Role)
			}
			logx.Warn("API access denied by role allow-list", "path", r.URL.Path, "role", role)
			resp.RespondError(w, r, errs.NewError(errs.ErrForbidden))

		default:
			next(w, r)
		}
	}
}
