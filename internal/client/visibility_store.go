package client

import (
	"github.com/google/uuid"

	"lexibook/internal/domain"
)

const visibilityKey = "visibility.entries"

// VisibilityStore holds one user's word-visibility overrides. Entries
// equal to the fully-visible default are never stored; toggling back to
// default removes the record entirely.
type VisibilityStore struct {
	userID  uuid.UUID
	kv      *KVStore
	entries map[uuid.UUID]domain.VisibilityEntry
}

// NewVisibilityStore loads the user's overrides from local storage,
// migrating any legacy non-namespaced key first
func NewVisibilityStore(userID uuid.UUID, kv *KVStore) (*VisibilityStore, error) {
	key := NamespacedKey(userID, visibilityKey)
	if err := kv.MigrateLegacyKey(visibilityKey, key); err != nil {
		return nil, err
	}

	entries := make(map[uuid.UUID]domain.VisibilityEntry)
	if _, err := kv.Get(key, &entries); err != nil {
		return nil, err
	}

	return &VisibilityStore{
		userID:  userID,
		kv:      kv,
		entries: entries,
	}, nil
}

// IsWordVisible reports whether the word half of an entry is shown
func (s *VisibilityStore) IsWordVisible(entryID uuid.UUID) bool {
	return s.entry(entryID).ShowWord
}

// IsMeaningVisible reports whether the meaning half of an entry is shown
func (s *VisibilityStore) IsMeaningVisible(entryID uuid.UUID) bool {
	return s.entry(entryID).ShowMeaning
}

// ToggleWord flips the word visibility for one entry
func (s *VisibilityStore) ToggleWord(entryID uuid.UUID) error {
	entry := s.entry(entryID)
	entry.ShowWord = !entry.ShowWord
	s.apply(entryID, entry)
	return s.persist()
}

// ToggleMeaning flips the meaning visibility for one entry
func (s *VisibilityStore) ToggleMeaning(entryID uuid.UUID) error {
	entry := s.entry(entryID)
	entry.ShowMeaning = !entry.ShowMeaning
	s.apply(entryID, entry)
	return s.persist()
}

// Set overwrites the state for one entry. Used by sync pull.
func (s *VisibilityStore) Set(entryID uuid.UUID, entry domain.VisibilityEntry) error {
	s.apply(entryID, entry)
	return s.persist()
}

// SetMeaningVisibility bulk-applies meaning visibility to the given
// entries in a single flush
func (s *VisibilityStore) SetMeaningVisibility(visible bool, entryIDs []uuid.UUID) error {
	for _, id := range entryIDs {
		entry := s.entry(id)
		entry.ShowMeaning = visible
		s.apply(id, entry)
	}
	return s.persist()
}

// Reconcile purges overrides for word entries that no longer exist
// after a wordbook edit, so orphaned state does not accumulate
func (s *VisibilityStore) Reconcile(previous, updated *domain.Wordbook) error {
	current := make(map[uuid.UUID]bool, len(updated.Words))
	for _, e := range updated.Words {
		current[e.ID] = true
	}

	changed := false
	for _, e := range previous.Words {
		if current[e.ID] {
			continue
		}
		if _, ok := s.entries[e.ID]; ok {
			delete(s.entries, e.ID)
			changed = true
		}
	}

	if !changed {
		return nil
	}
	return s.persist()
}

// Len returns the number of stored overrides
func (s *VisibilityStore) Len() int {
	return len(s.entries)
}

// All returns a copy of every stored override
func (s *VisibilityStore) All() map[uuid.UUID]domain.VisibilityEntry {
	out := make(map[uuid.UUID]domain.VisibilityEntry, len(s.entries))
	for id, entry := range s.entries {
		out[id] = entry
	}
	return out
}

func (s *VisibilityStore) entry(entryID uuid.UUID) domain.VisibilityEntry {
	if entry, ok := s.entries[entryID]; ok {
		return entry
	}
	return domain.DefaultVisibility
}

// apply stores the entry, or removes it when it matches the implicit
// fully-visible default
func (s *VisibilityStore) apply(entryID uuid.UUID, entry domain.VisibilityEntry) {
	if entry.IsDefault() {
		delete(s.entries, entryID)
		return
	}
	s.entries[entryID] = entry
}

func (s *VisibilityStore) persist() error {
	return s.kv.Set(NamespacedKey(s.userID, visibilityKey), s.entries)
}
