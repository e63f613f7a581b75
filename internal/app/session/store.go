/*
Package session contains the core data structures and lifecycle logic for the current
visitor's identity on the Mindful Campus platform.

This file defines the Store, the single process-wide holder of the current identity.
The Store moves through uninitialized -> loading -> ready, mirrors every identity
change to a durable slot, and rehydrates from that slot once at startup.

Authentication is deliberately mocked: passwords are accepted without verification
and identity IDs are generated locally. The operation contracts still allow for
failure so the surrounding code does not have to change if a real identity
provider is ever wired in.
*/
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"mindcampus/internal/app/storage"
	"mindcampus/internal/pkg/errs"
	"mindcampus/internal/pkg/logx"
	"mindcampus/internal/pkg/randx"
)

// Status describes the Store lifecycle state.
type Status int

const (
	// StatusUninitialized means Init has not been called yet.
	StatusUninitialized Status = iota

	// StatusLoading means rehydration from the durable slot is in progress.
	// Route decisions made in this state must render a waiting indicator
	// rather than redirect.
	StatusLoading

	// StatusReady means the Store settled, with or without an identity.
	StatusReady
)

// Slot abstracts the durable storage slot that mirrors the current identity.
// Read reports storage.ErrSlotEmpty when no session was persisted.
type Slot interface {
	Write(ctx context.Context, payload []byte) error
	Read(ctx context.Context) ([]byte, error)
	Delete(ctx context.Context) error
}

// Snapshot is an immutable view of the Store consumed by route decisions.
type Snapshot struct {
	// Status reports the lifecycle state at capture time.
	Status Status

	// Identity is the current visitor, or nil when no session exists.
	Identity *Identity
}

// Store is the single process-wide holder of the current identity.
// All methods are safe for concurrent use.
type Store struct {
	// mu protects status and current.
	mu sync.RWMutex

	// status tracks the uninitialized -> loading -> ready lifecycle.
	status Status

	// current is the active identity, or nil when signed out.
	current *Identity

	// slot is the durable storage slot mirroring every identity change.
	slot Slot

	// structured logger with store context.
	logger zerolog.Logger
}

// NewStore constructs a Store bound to the given durable slot.
// The Store starts uninitialized; call Init once at application start.
func NewStore(slot Slot) *Store {
	storeLogger := logx.Logger().With().Str("component", "SessionStore").Logger()

	return &Store{
		status: StatusUninitialized,
		slot:   slot,
		logger: storeLogger,
	}
}

// Init rehydrates the session from the durable slot. It runs once per process
// start and always leaves the Store ready: a missing or unparseable slot record
// is treated as "no session", never as a failure.
func (s *Store) Init(ctx context.Context) {
	s.mu.Lock()
	s.status = StatusLoading
	s.mu.Unlock()

	identity := s.rehydrate(ctx)

	s.mu.Lock()
	s.current = identity
	s.status = StatusReady
	s.mu.Unlock()

	if identity != nil {
		s.logger.Info().
			Str("identity_id", identity.ID).
			Str("role", string(identity.Role)).
			Bool("anonymous", identity.IsAnonymous).
			Msg("Session restored from durable slot")
	} else {
		s.logger.Info().Msg("No persisted session found")
	}
}

// rehydrate reads and parses the slot record, absorbing every failure.
func (s *Store) rehydrate(ctx context.Context) *Identity {
	payload, err := s.slot.Read(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrSlotEmpty) {
			s.logger.Warn().Err(err).Msg("Failed to read session slot, treating as no session")
		}
		return nil
	}

	var identity Identity
	if err := json.Unmarshal(payload, &identity); err != nil {
		s.logger.Warn().Err(err).Msg("Persisted session is corrupted, treating as no session")
		return nil
	}

	return &identity
}

// Login constructs a new registered identity from the supplied credentials.
// The password is accepted without verification. The name is derived from the
// email local-part, and rawRole falls back to "student" when empty.
// On failure the previous session, if any, is left unchanged.
func (s *Store) Login(ctx context.Context, email, password string, rawRole string) (*Identity, *errs.CustomError) {
	if email == "" {
		return nil, errs.NewError(errs.ErrInvalidEmail)
	}

	role := RoleStudent
	if rawRole != "" {
		parsed, ok := ParseRole(rawRole)
		if !ok {
			return nil, errs.NewError(errs.ErrInvalidRole)
		}
		role = parsed
	}

	identity := &Identity{
		ID:          randx.IdentityID(),
		Email:       email,
		Name:        localPart(email),
		Role:        role,
		IsAnonymous: false,
		Preferences: defaultPreferences(),
	}

	return s.adopt(ctx, identity, "login")
}

// Signup constructs a new registered identity using the supplied name and role verbatim.
// Like Login, it performs no credential verification.
func (s *Store) Signup(ctx context.Context, email, password, name, rawRole string) (*Identity, *errs.CustomError) {
	if email == "" {
		return nil, errs.NewError(errs.ErrInvalidEmail)
	}

	role, ok := ParseRole(rawRole)
	if !ok {
		return nil, errs.NewError(errs.ErrInvalidRole)
	}

	displayName := name
	if displayName == "" {
		displayName = localPart(email)
	}

	identity := &Identity{
		ID:          randx.IdentityID(),
		Email:       email,
		Name:        displayName,
		Role:        role,
		IsAnonymous: false,
		Preferences: defaultPreferences(),
	}

	return s.adopt(ctx, identity, "signup")
}

// LoginAsGuest constructs an anonymous guest identity: a "guest_" prefixed ID,
// the fixed guest display name, the student role, full anonymity, and
// notifications disabled.
func (s *Store) LoginAsGuest(ctx context.Context) (*Identity, *errs.CustomError) {
	id, err := randx.GuestID()
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to generate guest identity ID")
		return nil, errs.NewError(errs.ErrAuthFailed)
	}

	identity := &Identity{
		ID:          id,
		Name:        GuestDisplayName,
		Role:        RoleStudent,
		IsAnonymous: true,
		Preferences: guestPreferences(),
	}

	return s.adopt(ctx, identity, "guest")
}

// adopt persists the freshly constructed identity and, only on success, makes it
// current. A slot write failure surfaces as an auth error with the previous
// session untouched.
func (s *Store) adopt(ctx context.Context, identity *Identity, method string) (*Identity, *errs.CustomError) {
	payload, err := json.Marshal(identity)
	if err != nil {
		s.logger.Error().Err(err).Str("method", method).Msg("Failed to serialize identity")
		return nil, errs.NewError(errs.ErrAuthFailed)
	}

	if err := s.slot.Write(ctx, payload); err != nil {
		s.logger.Error().Err(err).Str("method", method).Msg("Failed to persist identity to durable slot")
		return nil, errs.NewError(errs.ErrAuthFailed)
	}

	s.mu.Lock()
	s.current = identity
	s.status = StatusReady
	s.mu.Unlock()

	s.logger.Info().
		Str("identity_id", identity.ID).
		Str("role", string(identity.Role)).
		Str("method", method).
		Msg("Session established")

	return identity.clone(), nil
}

// Logout clears the current identity and removes the durable slot. It never fails:
// a slot delete error is logged and the in-memory session is cleared regardless.
func (s *Store) Logout(ctx context.Context) {
	if err := s.slot.Delete(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to remove session slot during logout")
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.logger.Info().Msg("Session cleared")
}

// ProfileUpdate carries the fields of a partial profile update. Nil fields are
// left untouched; non-nil fields replace the current value (shallow merge).
type ProfileUpdate struct {
	Name        *string      `json:"name,omitempty"`
	Email       *string      `json:"email,omitempty"`
	Role        *string      `json:"role,omitempty"`
	Avatar      *string      `json:"avatar,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty"`
}

// UpdateProfile shallow-merges the supplied fields into the current identity and
// re-persists it. It is a no-op when no identity is current.
func (s *Store) UpdateProfile(ctx context.Context, update ProfileUpdate) (*Identity, *errs.CustomError) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()

	if current == nil {
		return nil, nil
	}

	merged := *current
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Email != nil {
		merged.Email = *update.Email
	}
	if update.Role != nil {
		role, ok := ParseRole(*update.Role)
		if !ok {
			return nil, errs.NewError(errs.ErrInvalidRole)
		}
		merged.Role = role
	}
	if update.Avatar != nil {
		merged.Avatar = *update.Avatar
	}
	if update.Preferences != nil {
		prefs := *update.Preferences
		merged.Preferences = &prefs
	}

	payload, err := json.Marshal(&merged)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to serialize updated profile")
		return nil, errs.NewError(errs.ErrUnknown)
	}

	if err := s.slot.Write(ctx, payload); err != nil {
		s.logger.Error().Err(err).Msg("Failed to persist updated profile")
		return nil, errs.NewError(errs.ErrUnknown)
	}

	s.mu.Lock()
	s.current = &merged
	s.mu.Unlock()

	s.logger.Info().Str("identity_id", merged.ID).Msg("Profile updated")

	return merged.clone(), nil
}

// Current returns a copy of the active identity, or nil when signed out.
func (s *Store) Current() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current.clone()
}

// Snapshot captures the lifecycle state and identity for a route decision.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Status:   s.status,
		Identity: s.current.clone(),
	}
}

// clone returns a deep copy so callers cannot mutate Store state through the
// returned pointer.
func (i *Identity) clone() *Identity {
	if i == nil {
		return nil
	}

	copied := *i
	if i.Preferences != nil {
		prefs := *i.Preferences
		copied.Preferences = &prefs
	}
	return &copied
}
