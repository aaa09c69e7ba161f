package client

import (
	"github.com/google/uuid"

	"lexibook/internal/domain"
)

const progressKey = "progress.sections"

// ProgressStore holds one user's per-wordbook reading progress in
// memory and flushes to local storage on every mutation. It is a
// single-writer store; callers confine mutation to one goroutine.
type ProgressStore struct {
	userID   uuid.UUID
	kv       *KVStore
	sections map[uuid.UUID]domain.ProgressState
}

// NewProgressStore loads the user's progress from local storage,
// migrating any legacy non-namespaced key first
func NewProgressStore(userID uuid.UUID, kv *KVStore) (*ProgressStore, error) {
	key := NamespacedKey(userID, progressKey)
	if err := kv.MigrateLegacyKey(progressKey, key); err != nil {
		return nil, err
	}

	sections := make(map[uuid.UUID]domain.ProgressState)
	if _, err := kv.Get(key, &sections); err != nil {
		return nil, err
	}

	return &ProgressStore{
		userID:   userID,
		kv:       kv,
		sections: sections,
	}, nil
}

// Progress returns the state for one wordbook, defaulting to zero
// progress when none is recorded yet
func (s *ProgressStore) Progress(wordbookID uuid.UUID) domain.ProgressState {
	return s.sections[wordbookID]
}

// MarkPageCompleted advances progress for one wordbook and persists
func (s *ProgressStore) MarkPageCompleted(wordbookID uuid.UUID, totalPages, pageIndex, targetPasses int) (domain.ProgressState, error) {
	next := s.sections[wordbookID].MarkPageCompleted(totalPages, pageIndex, targetPasses)
	s.sections[wordbookID] = next
	return next, s.persist()
}

// SetProgress overwrites the state for one wordbook and persists.
// Used by sync pull, where remote wins wholesale.
func (s *ProgressStore) SetProgress(wordbookID uuid.UUID, state domain.ProgressState) error {
	s.sections[wordbookID] = state
	return s.persist()
}

// Clamp renormalizes one wordbook's state after a structural change
func (s *ProgressStore) Clamp(wordbookID uuid.UUID, totalPages, targetPasses int) error {
	state, ok := s.sections[wordbookID]
	if !ok {
		return nil
	}
	clamped := state.Clamp(totalPages, targetPasses)
	if clamped == state {
		return nil
	}
	s.sections[wordbookID] = clamped
	return s.persist()
}

// Remove drops the state for one wordbook, e.g. on section removal
func (s *ProgressStore) Remove(wordbookID uuid.UUID) error {
	if _, ok := s.sections[wordbookID]; !ok {
		return nil
	}
	delete(s.sections, wordbookID)
	return s.persist()
}

// All returns a copy of every recorded section state
func (s *ProgressStore) All() map[uuid.UUID]domain.ProgressState {
	out := make(map[uuid.UUID]domain.ProgressState, len(s.sections))
	for id, state := range s.sections {
		out[id] = state
	}
	return out
}

func (s *ProgressStore) persist() error {
	return s.kv.Set(NamespacedKey(s.userID, progressKey), s.sections)
}
