/*
Package session contains the core data structures and lifecycle logic for the current
visitor's identity on the Mindful Campus platform.

This file defines the Identity struct, the visitor roles, and the preference record.
An Identity is either a registered visitor (login/signup) or an anonymous guest.
*/
package session

import "strings"

// Role classifies a visitor and determines which screens they may reach.
type Role string

const (
	// RoleStudent is the default role for new and guest visitors.
	RoleStudent Role = "student"

	// RoleCounselor identifies platform counselors.
	RoleCounselor Role = "counselor"

	// RoleAdmin identifies platform administrators.
	RoleAdmin Role = "admin"
)

// AllRoles lists every valid role. Protected destinations without an explicit
// allow-list admit all of them.
var AllRoles = []Role{RoleStudent, RoleCounselor, RoleAdmin}

// ParseRole validates a raw role string. The second return value reports whether
// the input named a known role.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleStudent, RoleCounselor, RoleAdmin:
		return Role(raw), true
	}
	return "", false
}

// AnonymityLevel describes how much of a visitor's profile is exposed to peers.
type AnonymityLevel string

const (
	AnonymityFull    AnonymityLevel = "full"
	AnonymityPartial AnonymityLevel = "partial"
	AnonymityNone    AnonymityLevel = "none"
)

// Preferences holds per-visitor platform settings.
// Field names use the JSON tags of the persisted slot record.
type Preferences struct {
	Language       string         `json:"language"`
	AnonymityLevel AnonymityLevel `json:"anonymityLevel"`
	Notifications  bool           `json:"notifications"`
}

// Identity represents the current visitor, real or guest.
type Identity struct {
	// ID is an opaque unique identifier generated locally at login, signup,
	// or guest entry. Guest IDs carry a "guest_" prefix.
	ID string `json:"id"`

	// Email is absent for guest identities.
	Email string `json:"email,omitempty"`

	// Name is the display name: the email local-part at login, the supplied
	// name at signup, or the fixed guest display name.
	Name string `json:"name"`

	// Role determines route visibility.
	Role Role `json:"role"`

	// Avatar is the URL for the visitor's avatar (reserved, may be empty).
	Avatar string `json:"avatar,omitempty"`

	// IsAnonymous is true only for guest identities. A guest always has no
	// email and the student role.
	IsAnonymous bool `json:"isAnonymous"`

	// Preferences is optional; login and signup populate defaults.
	Preferences *Preferences `json:"preferences,omitempty"`
}

// GuestDisplayName is the fixed display name assigned to guest identities.
const GuestDisplayName = "Guest User"

// defaultPreferences returns the preference record assigned at login and signup.
func defaultPreferences() *Preferences {
	return &Preferences{
		Language:       "en",
		AnonymityLevel: AnonymityPartial,
		Notifications:  true,
	}
}

// guestPreferences returns the preference record assigned to guest identities:
// full anonymity with notifications disabled.
func guestPreferences() *Preferences {
	return &Preferences{
		Language:       "en",
		AnonymityLevel: AnonymityFull,
		Notifications:  false,
	}
}

// localPart extracts the display name from an email address: everything before
// the first "@", or the whole input when no "@" is present.
func localPart(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
