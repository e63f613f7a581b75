/*
Package handler provides the HTTP handlers and routing setup for the Mindful Campus server.

This file serves the page routes. The real presentation layer lives outside this
server; each page endpoint only reports which screen the guard allowed, so a
thin client or a smoke test can follow the same navigation surface the guard
gates.
*/
package handler

import (
	"net/http"
	"strings"

	"mindcampus/internal/app/guard"
	"mindcampus/internal/app/session"
	"mindcampus/internal/pkg/resp"
)

// HandlePage answers a guarded page route with the screen descriptor.
func HandlePage(deps *AppDeps, route guard.Route) http.HandlerFunc {
	screen := screenName(route.Path)

	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]any{
			"screen": screen,
			"path":   route.Path,
		}

		// The waiting state renders before slot rehydration settles.
		if deps.Sessions.Snapshot().Status != session.StatusReady {
			payload["loading"] = true
		}

		resp.RespondSuccess(w, r, payload)
	}
}

// screenName derives a screen identifier from the route path.
func screenName(path string) string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return "landing"
	}
	return trimmed
}
