package jwt

import "github.com/golang-jwt/jwt"

// Payload defines the structure of the JSON Web Token (JWT) claims for Mindful Campus.
// It includes standard claims required by the JWT specification and custom claims
// necessary for identifying the current visitor in API requests.
type Payload struct {
	// StandardClaims embeds the necessary JWT standard fields such as Exp (Expiration),
	// Iat (Issued At), and Iss (Issuer). These are crucial for token validity checks.
	jwt.StandardClaims `json:"standard_claims"`

	// ID is the identity ID issued at login, signup, or guest entry. Guest IDs
	// carry a "guest_" prefix.
	ID string `json:"id"`

	// Name is the visitor's display name.
	Name string `json:"name"`

	// Role is the visitor's role ("student", "counselor", or "admin"), allowing
	// the server to apply role-gated access to API destinations.
	Role string `json:"role"`

	// Anonymous is true only for guest identities.
	Anonymous bool `json:"anonymous"`
}
