package client

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexibook/internal/domain"
	"lexibook/internal/testutil"
)

func TestWordbookStore_UpsertAndGet(t *testing.T) {
	kv := newTestKV(t)
	userID := uuid.New()

	store, err := NewWordbookStore(userID, kv)
	require.NoError(t, err)

	book := testutil.NewTestWordbook(userID, "verbs", 3)
	require.NoError(t, store.Upsert(*book))

	got, ok := store.Get(book.ID)
	assert.True(t, ok)
	assert.Equal(t, "verbs", got.Title)

	// Survives reload.
	reloaded, err := NewWordbookStore(userID, kv)
	require.NoError(t, err)
	got, ok = reloaded.Get(book.ID)
	assert.True(t, ok)
	assert.Len(t, got.Words, 3)
}

func TestWordbookStore_DeleteMovesToTrash(t *testing.T) {
	store, err := NewWordbookStore(uuid.New(), newTestKV(t))
	require.NoError(t, err)

	book := testutil.NewTestWordbook(uuid.New(), "doomed", 1)
	require.NoError(t, store.Upsert(*book))

	require.NoError(t, store.Delete(book.ID))

	_, ok := store.Get(book.ID)
	assert.False(t, ok)

	trash, err := store.Trash()
	assert.NoError(t, err)
	require.Len(t, trash, 1)
	assert.Equal(t, book.ID, trash[0].Wordbook.ID)
	assert.False(t, trash[0].DeletedAt.IsZero())

	assert.Error(t, store.Delete(book.ID))
}

func TestWordbookStore_Restore(t *testing.T) {
	store, err := NewWordbookStore(uuid.New(), newTestKV(t))
	require.NoError(t, err)

	book := testutil.NewTestWordbook(uuid.New(), "back again", 1)
	require.NoError(t, store.Upsert(*book))
	require.NoError(t, store.Delete(book.ID))

	require.NoError(t, store.Restore(book.ID))

	_, ok := store.Get(book.ID)
	assert.True(t, ok)

	trash, err := store.Trash()
	assert.NoError(t, err)
	assert.Empty(t, trash)

	assert.Error(t, store.Restore(book.ID))
}

func TestWordbookStore_TrashExpiry(t *testing.T) {
	store, err := NewWordbookStore(uuid.New(), newTestKV(t))
	require.NoError(t, err)

	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	book := testutil.NewTestWordbook(uuid.New(), "fading", 1)
	require.NoError(t, store.Upsert(*book))
	require.NoError(t, store.Delete(book.ID))

	// Still recoverable just inside the retention window.
	now = now.Add(domain.TrashRetention - time.Hour)
	trash, err := store.Trash()
	assert.NoError(t, err)
	assert.Len(t, trash, 1)

	// Gone once the window elapses.
	now = now.Add(2 * time.Hour)
	trash, err = store.Trash()
	assert.NoError(t, err)
	assert.Empty(t, trash)
}

func TestWordbookStore_AllSortedNewestFirst(t *testing.T) {
	store, err := NewWordbookStore(uuid.New(), newTestKV(t))
	require.NoError(t, err)

	older := testutil.NewTestWordbook(uuid.New(), "older", 0)
	older.CreatedAt = time.Now().Add(-time.Hour)
	newer := testutil.NewTestWordbook(uuid.New(), "newer", 0)

	require.NoError(t, store.Upsert(*older))
	require.NoError(t, store.Upsert(*newer))

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, "newer", all[0].Title)
	assert.Equal(t, "older", all[1].Title)
}
