package client

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"lexibook/internal/domain"
)

const (
	wordbooksKey = "wordbooks.active"
	trashKey     = "wordbooks.trash"
)

// WordbookStore holds one user's local wordbooks plus the soft-delete
// trash. Deleted books stay recoverable for the retention window;
// expired ones are purged opportunistically on load and on listing.
type WordbookStore struct {
	userID uuid.UUID
	kv     *KVStore
	books  map[uuid.UUID]domain.Wordbook
	trash  []domain.TrashedWordbook
	now    func() time.Time
}

// NewWordbookStore loads the user's wordbooks and trash from local
// storage, migrating legacy keys and purging expired trash
func NewWordbookStore(userID uuid.UUID, kv *KVStore) (*WordbookStore, error) {
	s := &WordbookStore{
		userID: userID,
		kv:     kv,
		books:  make(map[uuid.UUID]domain.Wordbook),
		now:    time.Now,
	}

	for _, key := range []string{wordbooksKey, trashKey} {
		if err := kv.MigrateLegacyKey(key, NamespacedKey(userID, key)); err != nil {
			return nil, err
		}
	}

	if _, err := kv.Get(NamespacedKey(userID, wordbooksKey), &s.books); err != nil {
		return nil, err
	}
	if _, err := kv.Get(NamespacedKey(userID, trashKey), &s.trash); err != nil {
		return nil, err
	}

	if err := s.purgeTrash(); err != nil {
		return nil, err
	}

	return s, nil
}

// Get returns one local wordbook
func (s *WordbookStore) Get(id uuid.UUID) (domain.Wordbook, bool) {
	book, ok := s.books[id]
	return book, ok
}

// All returns the local wordbooks, newest first
func (s *WordbookStore) All() []domain.Wordbook {
	books := make([]domain.Wordbook, 0, len(s.books))
	for _, book := range s.books {
		books = append(books, book)
	}
	sort.Slice(books, func(i, j int) bool {
		return books[i].CreatedAt.After(books[j].CreatedAt)
	})
	return books
}

// Upsert inserts or overwrites one wordbook and persists
func (s *WordbookStore) Upsert(book domain.Wordbook) error {
	s.books[book.ID] = book
	return s.persistBooks()
}

// Delete moves a wordbook to the trash
func (s *WordbookStore) Delete(id uuid.UUID) error {
	book, ok := s.books[id]
	if !ok {
		return fmt.Errorf("wordbook %s not found", id)
	}

	delete(s.books, id)
	s.trash = append(s.trash, domain.TrashedWordbook{
		Wordbook:  book,
		DeletedAt: s.now(),
	})

	if err := s.persistBooks(); err != nil {
		return err
	}
	return s.persistTrash()
}

// Restore moves a trashed wordbook back to the active set
func (s *WordbookStore) Restore(id uuid.UUID) error {
	for i, item := range s.trash {
		if item.Wordbook.ID != id {
			continue
		}
		s.trash = append(s.trash[:i], s.trash[i+1:]...)
		s.books[id] = item.Wordbook

		if err := s.persistTrash(); err != nil {
			return err
		}
		return s.persistBooks()
	}
	return fmt.Errorf("wordbook %s not in trash", id)
}

// Trash returns the recoverable deleted wordbooks, purging expired
// entries first
func (s *WordbookStore) Trash() ([]domain.TrashedWordbook, error) {
	if err := s.purgeTrash(); err != nil {
		return nil, err
	}
	out := make([]domain.TrashedWordbook, len(s.trash))
	copy(out, s.trash)
	return out, nil
}

func (s *WordbookStore) purgeTrash() error {
	before := len(s.trash)
	s.trash = domain.PurgeExpired(s.trash, s.now(), domain.TrashRetention)
	if len(s.trash) == before {
		return nil
	}
	return s.persistTrash()
}

func (s *WordbookStore) persistBooks() error {
	return s.kv.Set(NamespacedKey(s.userID, wordbooksKey), s.books)
}

func (s *WordbookStore) persistTrash() error {
	return s.kv.Set(NamespacedKey(s.userID, trashKey), s.trash)
}
