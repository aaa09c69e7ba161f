package testutil

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"lexibook/internal/domain"
	"lexibook/internal/repository"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUserExists(userID uuid.UUID) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockWordbookRepository is a mock for WordbookRepository
type MockWordbookRepository struct {
	mock.Mock
}

func (m *MockWordbookRepository) ListByOwner(ownerID uuid.UUID, includeTemplates bool, limit int) ([]domain.Wordbook, error) {
	args := m.Called(ownerID, includeTemplates, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wordbook), args.Error(1)
}

func (m *MockWordbookRepository) GetByID(id uuid.UUID) (*domain.Wordbook, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wordbook), args.Error(1)
}

func (m *MockWordbookRepository) Create(book *domain.Wordbook) error {
	args := m.Called(book)
	return args.Error(0)
}

func (m *MockWordbookRepository) UpdateMeta(book *domain.Wordbook) error {
	args := m.Called(book)
	return args.Error(0)
}

func (m *MockWordbookRepository) Delete(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockWordbookRepository) InsertWords(bookID uuid.UUID, entries []domain.WordEntry) error {
	args := m.Called(bookID, entries)
	return args.Error(0)
}

func (m *MockWordbookRepository) ReplaceWords(bookID uuid.UUID, updates, inserts []domain.WordEntry, deleteIDs []uuid.UUID) error {
	args := m.Called(bookID, updates, inserts, deleteIDs)
	return args.Error(0)
}

func (m *MockWordbookRepository) EntryOwnerships(entryIDs []uuid.UUID) ([]repository.EntryOwnership, error) {
	args := m.Called(entryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.EntryOwnership), args.Error(1)
}

// MockProgressRepository is a mock for ProgressRepository
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) ListSections(userID uuid.UUID) ([]domain.SectionProgress, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SectionProgress), args.Error(1)
}

func (m *MockProgressRepository) UpsertSection(userID, wordbookID uuid.UUID, state domain.ProgressState) error {
	args := m.Called(userID, wordbookID, state)
	return args.Error(0)
}

func (m *MockProgressRepository) ListDaily(userID uuid.UUID) ([]domain.DailyRecord, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyRecord), args.Error(1)
}

func (m *MockProgressRepository) AddDaily(userID uuid.UUID, date string, wordsLearned int) error {
	args := m.Called(userID, date, wordsLearned)
	return args.Error(0)
}

// MockVisibilityRepository is a mock for VisibilityRepository
type MockVisibilityRepository struct {
	mock.Mock
}

func (m *MockVisibilityRepository) List(userID uuid.UUID) ([]domain.VisibilityRecord, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VisibilityRecord), args.Error(1)
}

func (m *MockVisibilityRepository) Upsert(userID, wordEntryID uuid.UUID, entry domain.VisibilityEntry) error {
	args := m.Called(userID, wordEntryID, entry)
	return args.Error(0)
}

func (m *MockVisibilityRepository) Delete(userID, wordEntryID uuid.UUID) error {
	args := m.Called(userID, wordEntryID)
	return args.Error(0)
}

// MockProfileRepository is a mock for ProfileRepository
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) Get(userID uuid.UUID) (*domain.Profile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) Upsert(userID uuid.UUID, profile domain.Profile) error {
	args := m.Called(userID, profile)
	return args.Error(0)
}
