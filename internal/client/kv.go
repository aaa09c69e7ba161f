// Package client implements the device-side stores and the sync
// coordinator that reconciles them with the remote API.
package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// KVStore is flat key-value storage backed by a single JSON file,
// standing in for the device's local preference storage. Every Set or
// Delete rewrites the file; callers must serialize access.
type KVStore struct {
	path string
	data map[string]json.RawMessage
}

// OpenKV loads the store at path, creating an empty one if the file
// does not exist yet
func OpenKV(path string) (*KVStore, error) {
	s := &KVStore{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read kv file: %w", err)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("decode kv file: %w", err)
		}
	}

	return s, nil
}

// Get decodes the value at key into v, reporting whether it was present
func (s *KVStore) Get(key string, v any) (bool, error) {
	raw, ok := s.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode key %q: %w", key, err)
	}
	return true, nil
}

// Set encodes v at key and flushes to disk immediately
func (s *KVStore) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode key %q: %w", key, err)
	}
	s.data[key] = raw
	return s.flush()
}

// Delete removes key and flushes to disk
func (s *KVStore) Delete(key string) error {
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flush()
}

// Has reports whether key is present
func (s *KVStore) Has(key string) bool {
	_, ok := s.data[key]
	return ok
}

// MigrateLegacyKey copies the raw contents of a legacy non-namespaced
// key into the namespaced key and deletes the original. A no-op when
// the legacy key is absent or the namespaced key already exists.
func (s *KVStore) MigrateLegacyKey(legacyKey, namespacedKey string) error {
	raw, ok := s.data[legacyKey]
	if !ok {
		return nil
	}
	if _, exists := s.data[namespacedKey]; !exists {
		s.data[namespacedKey] = raw
	}
	delete(s.data, legacyKey)
	return s.flush()
}

// flush writes the whole store atomically via a temp file rename
func (s *KVStore) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode kv store: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".kv-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write kv store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}

// NamespacedKey prefixes a storage key with the user id so that
// switching accounts on one device does not leak data between users
func NamespacedKey(userID uuid.UUID, key string) string {
	return userID.String() + "." + key
}
