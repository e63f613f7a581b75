package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SlotStore {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "mindcampus.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestReadEmptySlot(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Read(context.Background())
	assert.ErrorIs(t, err, ErrSlotEmpty)
}

func TestWriteThenRead(t *testing.T) {
	store := openTestStore(t)

	payload := []byte(`{"id":"abc","role":"student"}`)
	require.NoError(t, store.Write(context.Background(), payload))

	got, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestWriteReplacesPreviousRecord(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Write(context.Background(), []byte(`first`)))
	require.NoError(t, store.Write(context.Background(), []byte(`second`)))

	got, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte(`second`), got)
}

func TestDeleteEmptiesSlot(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Write(context.Background(), []byte(`record`)))
	require.NoError(t, store.Delete(context.Background()))

	_, err := store.Read(context.Background())
	assert.ErrorIs(t, err, ErrSlotEmpty)
}

func TestDeleteOnEmptySlotSucceeds(t *testing.T) {
	store := openTestStore(t)

	assert.NoError(t, store.Delete(context.Background()))
}

func TestWriteRejectsEmptyPayload(t *testing.T) {
	store := openTestStore(t)

	assert.Error(t, store.Write(context.Background(), nil))
}

func TestRecordSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mindcampus.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Write(context.Background(), []byte(`persisted`)))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte(`persisted`), got)
}

func TestOpenRejectsBlankPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}
