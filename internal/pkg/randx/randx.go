/*
Package randx provides functions for generating cryptographically secure random numbers and unique identifiers.

It is primarily used to generate identity IDs: standard UUIDs for registered visitors
and fixed-length Base62 encoded IDs with a "guest_" prefix for anonymous guests.
*/
package randx

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const (
	// Base62Chars defines the character set used for Base62 encoding (0-9, A-Z, a-z).
	Base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// Base62Len is the total number of characters in the Base62 character set (62).
	Base62Len = int64(len(Base62Chars))

	// GuestIDPrefix is the required prefix for guest identity IDs.
	GuestIDPrefix = "guest_"

	// GuestIDRawLength is the fixed length of the Base62 part of a guest ID.
	GuestIDRawLength = 9
)

// base62String generates a Base62 string of the given length using a
// cryptographically secure random number generator (crypto/rand).
func base62String(length int) (string, error) {
	result := make([]byte, length)

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(Base62Len))
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %v", err)
		}

		result[i] = Base62Chars[num.Int64()]
	}

	return string(result), nil
}

// IdentityID generates a standard UUID v4 string to serve as a unique identifier
// for a registered visitor identity.
func IdentityID() string {
	return uuid.New().String()
}

// GuestID generates a guest identity ID: the "guest_" prefix followed by
// GuestIDRawLength random Base62 characters.
func GuestID() (string, error) {
	raw, err := base62String(GuestIDRawLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate guest id: %v", err)
	}

	return GuestIDPrefix + raw, nil
}

// MessageID generates a standard UUID v4 string to serve as a unique identifier for a chat message.
func MessageID() string {
	return uuid.New().String()
}

// IsValidGuestID checks if the given string is a valid guest identity ID.
// Validity criteria include: the "guest_" prefix, the fixed raw length, and all
// raw characters belonging to the Base62Chars set.
func IsValidGuestID(id string) bool {
	if !strings.HasPrefix(id, GuestIDPrefix) {
		return false
	}

	rawID := id[len(GuestIDPrefix):]

	if len(rawID) != GuestIDRawLength {
		return false
	}

	for _, char := range rawID {
		if !strings.ContainsRune(Base62Chars, char) {
			return false
		}
	}

	return true
}
