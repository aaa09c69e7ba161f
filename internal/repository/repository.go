package repository

import (
	"github.com/google/uuid"

	"lexibook/internal/domain"
)

// UserRepository defines user provisioning operations
type UserRepository interface {
	EnsureUserExists(userID uuid.UUID) error
}

// EntryOwnership resolves a word entry to its wordbook's access facts
type EntryOwnership struct {
	WordEntryID uuid.UUID
	OwnerID     uuid.UUID
	IsTemplate  bool
}

// WordbookRepository defines wordbook and word-entry data operations
type WordbookRepository interface {
	ListByOwner(ownerID uuid.UUID, includeTemplates bool, limit int) ([]domain.Wordbook, error)
	GetByID(id uuid.UUID) (*domain.Wordbook, error)
	Create(book *domain.Wordbook) error
	UpdateMeta(book *domain.Wordbook) error
	Delete(id uuid.UUID) error
	InsertWords(bookID uuid.UUID, entries []domain.WordEntry) error
	ReplaceWords(bookID uuid.UUID, updates, inserts []domain.WordEntry, deleteIDs []uuid.UUID) error
	EntryOwnerships(entryIDs []uuid.UUID) ([]EntryOwnership, error)
}

// ProgressRepository defines progress data operations
type ProgressRepository interface {
	ListSections(userID uuid.UUID) ([]domain.SectionProgress, error)
	UpsertSection(userID, wordbookID uuid.UUID, state domain.ProgressState) error
	ListDaily(userID uuid.UUID) ([]domain.DailyRecord, error)
	AddDaily(userID uuid.UUID, date string, wordsLearned int) error
}

// VisibilityRepository defines visibility override data operations
type VisibilityRepository interface {
	List(userID uuid.UUID) ([]domain.VisibilityRecord, error)
	Upsert(userID, wordEntryID uuid.UUID, entry domain.VisibilityEntry) error
	Delete(userID, wordEntryID uuid.UUID) error
}

// ProfileRepository defines profile data operations
type ProfileRepository interface {
	Get(userID uuid.UUID) (*domain.Profile, error)
	Upsert(userID uuid.UUID, profile domain.Profile) error
}
