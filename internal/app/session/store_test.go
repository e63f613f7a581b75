package session

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindcampus/internal/app/storage"
)

// memSlot is an in-memory Slot for exercising store semantics without a database file.
type memSlot struct {
	mu      sync.Mutex
	payload []byte
	failing bool
}

func (m *memSlot) Write(ctx context.Context, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failing {
		return assert.AnError
	}
	m.payload = append([]byte(nil), payload...)
	return nil
}

func (m *memSlot) Read(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.payload == nil {
		return nil, storage.ErrSlotEmpty
	}
	return append([]byte(nil), m.payload...), nil
}

func (m *memSlot) Delete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.payload = nil
	return nil
}

func newReadyStore(t *testing.T) (*Store, *memSlot) {
	t.Helper()

	slot := &memSlot{}
	store := NewStore(slot)
	store.Init(context.Background())
	return store, slot
}

func TestLoginDerivesNameFromEmailLocalPart(t *testing.T) {
	store, _ := newReadyStore(t)

	identity, customErr := store.Login(context.Background(), "maya.patel@campus.edu", "whatever", "")
	require.Nil(t, customErr)

	assert.Equal(t, "maya.patel", identity.Name)
	assert.Equal(t, "maya.patel@campus.edu", identity.Email)
	assert.Equal(t, RoleStudent, identity.Role)
	assert.False(t, identity.IsAnonymous)
	require.NotNil(t, identity.Preferences)
	assert.Equal(t, AnonymityPartial, identity.Preferences.AnonymityLevel)
	assert.True(t, identity.Preferences.Notifications)
	assert.NotEmpty(t, identity.ID)
}

func TestLoginAcceptsExplicitRole(t *testing.T) {
	store, _ := newReadyStore(t)

	identity, customErr := store.Login(context.Background(), "dr.chen@campus.edu", "pw", "counselor")
	require.Nil(t, customErr)

	assert.Equal(t, RoleCounselor, identity.Role)
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	store, _ := newReadyStore(t)

	identity, customErr := store.Login(context.Background(), "someone@campus.edu", "pw", "superuser")
	require.NotNil(t, customErr)
	assert.Nil(t, identity)
	assert.Nil(t, store.Current())
}

func TestLoginGeneratesFreshIDPerEvent(t *testing.T) {
	store, _ := newReadyStore(t)

	first, customErr := store.Login(context.Background(), "a@campus.edu", "pw", "")
	require.Nil(t, customErr)

	store.Logout(context.Background())

	second, customErr := store.Login(context.Background(), "a@campus.edu", "pw", "")
	require.Nil(t, customErr)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestSignupUsesSuppliedNameAndRole(t *testing.T) {
	store, _ := newReadyStore(t)

	identity, customErr := store.Signup(context.Background(), "sam@campus.edu", "pw", "Sam Rivera", "admin")
	require.Nil(t, customErr)

	assert.Equal(t, "Sam Rivera", identity.Name)
	assert.Equal(t, RoleAdmin, identity.Role)
	assert.False(t, identity.IsAnonymous)
}

func TestGuestLoginInvariants(t *testing.T) {
	store, _ := newReadyStore(t)

	identity, customErr := store.LoginAsGuest(context.Background())
	require.Nil(t, customErr)

	assert.True(t, identity.IsAnonymous)
	assert.Equal(t, RoleStudent, identity.Role)
	assert.Equal(t, GuestDisplayName, identity.Name)
	assert.Empty(t, identity.Email)
	assert.True(t, strings.HasPrefix(identity.ID, "guest_"), "guest id %q must carry the guest_ prefix", identity.ID)
	require.NotNil(t, identity.Preferences)
	assert.Equal(t, AnonymityFull, identity.Preferences.AnonymityLevel)
	assert.False(t, identity.Preferences.Notifications)
}

func TestSessionSurvivesRestart(t *testing.T) {
	store, slot := newReadyStore(t)

	identity, customErr := store.Login(context.Background(), "maya@campus.edu", "pw", "counselor")
	require.Nil(t, customErr)

	// Simulate a process restart against the same durable slot.
	restarted := NewStore(slot)
	restarted.Init(context.Background())

	restored := restarted.Current()
	require.NotNil(t, restored)
	assert.Equal(t, identity.ID, restored.ID)
	assert.Equal(t, identity.Role, restored.Role)
	assert.Equal(t, identity.Name, restored.Name)
}

func TestLogoutClearsSessionAndSlot(t *testing.T) {
	store, slot := newReadyStore(t)

	_, customErr := store.Login(context.Background(), "maya@campus.edu", "pw", "")
	require.Nil(t, customErr)

	store.Logout(context.Background())
	assert.Nil(t, store.Current())

	restarted := NewStore(slot)
	restarted.Init(context.Background())
	assert.Nil(t, restarted.Current())
}

func TestCorruptedSlotIsTreatedAsNoSession(t *testing.T) {
	slot := &memSlot{payload: []byte("{not json")}
	store := NewStore(slot)
	store.Init(context.Background())

	assert.Nil(t, store.Current())
	assert.Equal(t, StatusReady, store.Snapshot().Status)
}

func TestLoginFailureLeavesPreviousSessionUnchanged(t *testing.T) {
	store, slot := newReadyStore(t)

	original, customErr := store.Login(context.Background(), "keep@campus.edu", "pw", "")
	require.Nil(t, customErr)

	slot.failing = true
	identity, customErr := store.Signup(context.Background(), "other@campus.edu", "pw", "Other", "student")
	require.NotNil(t, customErr)
	assert.Nil(t, identity)

	current := store.Current()
	require.NotNil(t, current)
	assert.Equal(t, original.ID, current.ID)
}

func TestUpdateProfileMergesOnlySuppliedFields(t *testing.T) {
	store, slot := newReadyStore(t)

	original, customErr := store.Login(context.Background(), "maya@campus.edu", "pw", "")
	require.Nil(t, customErr)

	newName := "New Name"
	updated, customErr := store.UpdateProfile(context.Background(), ProfileUpdate{Name: &newName})
	require.Nil(t, customErr)
	require.NotNil(t, updated)

	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, original.Role, updated.Role)
	assert.Equal(t, original.Email, updated.Email)

	// The durable slot must reflect the change.
	restarted := NewStore(slot)
	restarted.Init(context.Background())
	restored := restarted.Current()
	require.NotNil(t, restored)
	assert.Equal(t, "New Name", restored.Name)
}

func TestUpdateProfileWithoutSessionIsNoOp(t *testing.T) {
	store, _ := newReadyStore(t)

	newName := "Nobody"
	updated, customErr := store.UpdateProfile(context.Background(), ProfileUpdate{Name: &newName})
	assert.Nil(t, customErr)
	assert.Nil(t, updated)
	assert.Nil(t, store.Current())
}

func TestSnapshotBeforeInitReportsUninitialized(t *testing.T) {
	store := NewStore(&memSlot{})

	snap := store.Snapshot()
	assert.Equal(t, StatusUninitialized, snap.Status)
	assert.Nil(t, snap.Identity)
}

func TestCurrentReturnsCopy(t *testing.T) {
	store, _ := newReadyStore(t)

	_, customErr := store.Login(context.Background(), "maya@campus.edu", "pw", "")
	require.Nil(t, customErr)

	leaked := store.Current()
	leaked.Name = "mutated"
	leaked.Preferences.Language = "xx"

	current := store.Current()
	assert.Equal(t, "maya", current.Name)
	assert.Equal(t, "en", current.Preferences.Language)
}
