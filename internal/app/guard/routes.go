package guard

import "mindcampus/internal/app/session"

const (
	// AuthPath is the destination of RedirectToAuth.
	AuthPath = "/auth"

	// DefaultPath is the destination of RedirectToDefault.
	DefaultPath = "/dashboard"
)

// Routes returns the platform's navigation surface: each destination with its
// public/protected status and role allow-list.
func Routes() []Route {
	return []Route{
		{Path: "/", PublicOnly: true},
		{Path: AuthPath, PublicOnly: true},
		{Path: DefaultPath},
		{Path: "/chat"},
		{Path: "/resources"},
		{Path: "/forum"},
		{Path: "/profile"},
		{Path: "/settings"},
		{Path: "/booking", AllowedRoles: []session.Role{session.RoleStudent}},
		{Path: "/admin", AllowedRoles: []session.Role{session.RoleAdmin, session.RoleCounselor}},
	}
}
