package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lexibook/internal/domain"
	"lexibook/internal/repository"
	"lexibook/internal/testutil"
)

func TestVisibilityService_Apply(t *testing.T) {
	userID := uuid.New()
	ownEntry := uuid.New()
	templateEntry := uuid.New()

	ownerships := []repository.EntryOwnership{
		{WordEntryID: ownEntry, OwnerID: userID},
		{WordEntryID: templateEntry, OwnerID: uuid.New(), IsTemplate: true},
	}

	mockBooks := new(testutil.MockWordbookRepository)
	mockBooks.On("EntryOwnerships", mock.Anything).Return(ownerships, nil)

	mockVis := new(testutil.MockVisibilityRepository)
	mockVis.On("Upsert", userID, ownEntry, domain.VisibilityEntry{ShowWord: false, ShowMeaning: true}).Return(nil)
	// The fully-visible entry is deleted, never stored.
	mockVis.On("Delete", userID, templateEntry).Return(nil)

	svc := NewVisibilityService(mockVis, mockBooks, testutil.NewTestLogger())

	err := svc.Apply(userID, []VisibilityItem{
		{WordEntryID: ownEntry, ShowWord: false, ShowMeaning: true},
		{WordEntryID: templateEntry, ShowWord: true, ShowMeaning: true},
	})

	assert.NoError(t, err)
	mockVis.AssertExpectations(t)
}

func TestVisibilityService_Apply_AtomicRejection(t *testing.T) {
	userID := uuid.New()
	ownEntry := uuid.New()
	foreignEntry := uuid.New()

	ownerships := []repository.EntryOwnership{
		{WordEntryID: ownEntry, OwnerID: userID},
		// Belongs to another user's non-template wordbook.
		{WordEntryID: foreignEntry, OwnerID: uuid.New()},
	}

	mockBooks := new(testutil.MockWordbookRepository)
	mockBooks.On("EntryOwnerships", mock.Anything).Return(ownerships, nil)

	mockVis := new(testutil.MockVisibilityRepository)

	svc := NewVisibilityService(mockVis, mockBooks, testutil.NewTestLogger())

	err := svc.Apply(userID, []VisibilityItem{
		{WordEntryID: ownEntry, ShowWord: false, ShowMeaning: true},
		{WordEntryID: foreignEntry, ShowWord: false, ShowMeaning: true},
	})

	assert.ErrorIs(t, err, ErrForbidden)

	// The valid entry in the same batch must not be persisted either.
	mockVis.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	mockVis.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestVisibilityService_Apply_UnknownEntry(t *testing.T) {
	userID := uuid.New()

	mockBooks := new(testutil.MockWordbookRepository)
	mockBooks.On("EntryOwnerships", mock.Anything).Return([]repository.EntryOwnership{}, nil)

	mockVis := new(testutil.MockVisibilityRepository)

	svc := NewVisibilityService(mockVis, mockBooks, testutil.NewTestLogger())

	err := svc.Apply(userID, []VisibilityItem{
		{WordEntryID: uuid.New(), ShowWord: false, ShowMeaning: true},
	})

	assert.ErrorIs(t, err, ErrNotFound)
	mockVis.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
}

func TestVisibilityService_Apply_EmptyBatch(t *testing.T) {
	mockBooks := new(testutil.MockWordbookRepository)
	mockVis := new(testutil.MockVisibilityRepository)

	svc := NewVisibilityService(mockVis, mockBooks, testutil.NewTestLogger())

	assert.NoError(t, svc.Apply(uuid.New(), nil))
	mockBooks.AssertNotCalled(t, "EntryOwnerships", mock.Anything)
}
