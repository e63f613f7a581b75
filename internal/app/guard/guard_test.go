package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindcampus/internal/app/session"
)

func identityWithRole(role session.Role) *session.Identity {
	return &session.Identity{ID: "id-1", Name: "Test", Role: role}
}

func routeByPath(t *testing.T, path string) Route {
	t.Helper()

	for _, rt := range Routes() {
		if rt.Path == path {
			return rt
		}
	}
	t.Fatalf("no route registered for %q", path)
	return Route{}
}

func TestEvaluate(t *testing.T) {
	ready := func(identity *session.Identity) session.Snapshot {
		return session.Snapshot{Status: session.StatusReady, Identity: identity}
	}

	tests := []struct {
		name string
		snap session.Snapshot
		path string
		want Decision
	}{
		{
			name: "loading renders regardless of destination",
			snap: session.Snapshot{Status: session.StatusLoading},
			path: "/admin",
			want: Render,
		},
		{
			name: "uninitialized renders regardless of destination",
			snap: session.Snapshot{Status: session.StatusUninitialized},
			path: "/booking",
			want: Render,
		},
		{
			name: "signed out visitor reaches landing",
			snap: ready(nil),
			path: "/",
			want: Render,
		},
		{
			name: "signed out visitor reaches auth",
			snap: ready(nil),
			path: "/auth",
			want: Render,
		},
		{
			name: "signed out visitor is sent to auth from protected route",
			snap: ready(nil),
			path: "/dashboard",
			want: RedirectToAuth,
		},
		{
			name: "signed out visitor is sent to auth from role-gated route",
			snap: ready(nil),
			path: "/admin",
			want: RedirectToAuth,
		},
		{
			name: "signed in visitor is bounced off the landing screen",
			snap: ready(identityWithRole(session.RoleStudent)),
			path: "/",
			want: RedirectToDefault,
		},
		{
			name: "signed in admin is bounced off the auth screen",
			snap: ready(identityWithRole(session.RoleAdmin)),
			path: "/auth",
			want: RedirectToDefault,
		},
		{
			name: "student reaches open protected route",
			snap: ready(identityWithRole(session.RoleStudent)),
			path: "/chat",
			want: Render,
		},
		{
			name: "student reaches booking",
			snap: ready(identityWithRole(session.RoleStudent)),
			path: "/booking",
			want: Render,
		},
		{
			name: "counselor is denied booking",
			snap: ready(identityWithRole(session.RoleCounselor)),
			path: "/booking",
			want: RedirectToDefault,
		},
		{
			name: "admin is denied booking despite elevated role",
			snap: ready(identityWithRole(session.RoleAdmin)),
			path: "/booking",
			want: RedirectToDefault,
		},
		{
			name: "student is denied admin",
			snap: ready(identityWithRole(session.RoleStudent)),
			path: "/admin",
			want: RedirectToDefault,
		},
		{
			name: "counselor reaches admin",
			snap: ready(identityWithRole(session.RoleCounselor)),
			path: "/admin",
			want: Render,
		},
		{
			name: "admin reaches admin",
			snap: ready(identityWithRole(session.RoleAdmin)),
			path: "/admin",
			want: Render,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route := routeByPath(t, tt.path)
			assert.Equal(t, tt.want, Evaluate(tt.snap, route))
		})
	}
}

func TestEmptyAllowListAdmitsEveryRole(t *testing.T) {
	route := Route{Path: "/anything"}
	for _, role := range session.AllRoles {
		snap := session.Snapshot{Status: session.StatusReady, Identity: identityWithRole(role)}
		assert.Equal(t, Render, Evaluate(snap, route), "role %s", role)
	}
}

func TestRoutesTableShape(t *testing.T) {
	routes := Routes()
	require.Len(t, routes, 10)

	byPath := make(map[string]Route, len(routes))
	for _, rt := range routes {
		byPath[rt.Path] = rt
	}

	assert.True(t, byPath["/"].PublicOnly)
	assert.True(t, byPath[AuthPath].PublicOnly)
	assert.False(t, byPath[DefaultPath].PublicOnly)
	assert.Empty(t, byPath["/chat"].AllowedRoles)
	assert.Equal(t, []session.Role{session.RoleStudent}, byPath["/booking"].AllowedRoles)
	assert.Equal(t, []session.Role{session.RoleAdmin, session.RoleCounselor}, byPath["/admin"].AllowedRoles)
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "render", Render.String())
	assert.Equal(t, "redirect_to_auth", RedirectToAuth.String())
	assert.Equal(t, "redirect_to_default", RedirectToDefault.String())
}
