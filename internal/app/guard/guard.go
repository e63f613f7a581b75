/*
Package guard decides whether a visitor may reach a destination.

The decision is a pure function of a session snapshot and a route descriptor:
render the destination, redirect to the authentication screen, or redirect to
the default landing screen. The guard never mutates session state, and an
allow-list is exact: a role not listed is denied even for administrators.
*/
package guard

import "mindcampus/internal/app/session"

// Decision is the outcome of evaluating a route against the current session.
type Decision int

const (
	// Render means the destination may be shown. While the session store is
	// still loading this is a neutral waiting state, not an approval.
	Render Decision = iota

	// RedirectToAuth sends the visitor to the authentication screen.
	RedirectToAuth

	// RedirectToDefault sends the visitor to the default landing screen
	// (the dashboard).
	RedirectToDefault
)

// String returns the decision name for logging.
func (d Decision) String() string {
	switch d {
	case Render:
		return "render"
	case RedirectToAuth:
		return "redirect_to_auth"
	case RedirectToDefault:
		return "redirect_to_default"
	}
	return "unknown"
}

// Route describes a navigation destination and its access policy.
type Route struct {
	// Path is the destination path, used by the HTTP adapter.
	Path string

	// PublicOnly marks destinations reserved for signed-out visitors
	// (the landing and authentication screens).
	PublicOnly bool

	// AllowedRoles is the exact allow-list for a protected destination.
	// A nil or empty list admits every role.
	AllowedRoles []session.Role
}

// allows reports whether the route's allow-list admits the given role.
func (rt Route) allows(role session.Role) bool {
	if len(rt.AllowedRoles) == 0 {
		return true
	}

	for _, allowed := range rt.AllowedRoles {
		if role == allowed {
			return true
		}
	}
	return false
}

// Evaluate produces the access decision for a route given a session snapshot.
//
// While the store is loading, every destination renders a waiting state so a
// visitor is never redirected before slot rehydration completes. Protected
// destinations require an identity whose role is on the allow-list; public-only
// destinations require the absence of one.
func Evaluate(snap session.Snapshot, route Route) Decision {
	if snap.Status != session.StatusReady {
		return Render
	}

	if route.PublicOnly {
		if snap.Identity != nil {
			return RedirectToDefault
		}
		return Render
	}

	if snap.Identity == nil {
		return RedirectToAuth
	}

	if !route.allows(snap.Identity.Role) {
		return RedirectToDefault
	}

	return Render
}
