package client

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexibook/internal/domain"
)

func TestProgressStore_LazyDefault(t *testing.T) {
	store, err := NewProgressStore(uuid.New(), newTestKV(t))
	require.NoError(t, err)

	assert.Equal(t, domain.ProgressState{}, store.Progress(uuid.New()))
}

func TestProgressStore_MarkPageCompletedPersists(t *testing.T) {
	kv := newTestKV(t)
	userID := uuid.New()
	bookID := uuid.New()

	store, err := NewProgressStore(userID, kv)
	require.NoError(t, err)

	state, err := store.MarkPageCompleted(bookID, 3, 0, 2)
	assert.NoError(t, err)
	assert.Equal(t, domain.ProgressState{CompletedPages: 1}, state)

	// A fresh store over the same storage sees the mutation.
	reloaded, err := NewProgressStore(userID, kv)
	require.NoError(t, err)
	assert.Equal(t, state, reloaded.Progress(bookID))
}

func TestProgressStore_PassRollover(t *testing.T) {
	store, err := NewProgressStore(uuid.New(), newTestKV(t))
	require.NoError(t, err)

	bookID := uuid.New()
	require.NoError(t, store.SetProgress(bookID, domain.ProgressState{CompletedPages: 2}))

	state, err := store.MarkPageCompleted(bookID, 3, 2, 2)
	assert.NoError(t, err)
	assert.Equal(t, domain.ProgressState{CompletedPages: 0, CompletedPasses: 1}, state)
}

func TestProgressStore_Clamp(t *testing.T) {
	store, err := NewProgressStore(uuid.New(), newTestKV(t))
	require.NoError(t, err)

	bookID := uuid.New()
	require.NoError(t, store.SetProgress(bookID, domain.ProgressState{CompletedPages: 9, CompletedPasses: 5}))

	assert.NoError(t, store.Clamp(bookID, 3, 2))
	assert.Equal(t, domain.ProgressState{CompletedPages: 3, CompletedPasses: 2}, store.Progress(bookID))

	// Clamping an untracked wordbook records nothing.
	unknown := uuid.New()
	assert.NoError(t, store.Clamp(unknown, 3, 2))
	assert.NotContains(t, store.All(), unknown)
}

func TestProgressStore_Remove(t *testing.T) {
	store, err := NewProgressStore(uuid.New(), newTestKV(t))
	require.NoError(t, err)

	bookID := uuid.New()
	require.NoError(t, store.SetProgress(bookID, domain.ProgressState{CompletedPages: 1}))

	assert.NoError(t, store.Remove(bookID))
	assert.Equal(t, domain.ProgressState{}, store.Progress(bookID))
	assert.Empty(t, store.All())
}

func TestProgressStore_LegacyKeyMigration(t *testing.T) {
	kv := newTestKV(t)
	userID := uuid.New()
	bookID := uuid.New()

	// Data written before keys were namespaced per user.
	legacy := map[uuid.UUID]domain.ProgressState{
		bookID: {CompletedPages: 2, CompletedPasses: 1},
	}
	require.NoError(t, kv.Set(progressKey, legacy))

	store, err := NewProgressStore(userID, kv)
	require.NoError(t, err)

	assert.Equal(t, legacy[bookID], store.Progress(bookID))
	assert.False(t, kv.Has(progressKey))
	assert.True(t, kv.Has(NamespacedKey(userID, progressKey)))
}

func TestProgressStore_PerUserIsolation(t *testing.T) {
	kv := newTestKV(t)
	bookID := uuid.New()

	alice, err := NewProgressStore(uuid.New(), kv)
	require.NoError(t, err)
	bob, err := NewProgressStore(uuid.New(), kv)
	require.NoError(t, err)

	require.NoError(t, alice.SetProgress(bookID, domain.ProgressState{CompletedPages: 2}))

	assert.Equal(t, domain.ProgressState{}, bob.Progress(bookID))
}
