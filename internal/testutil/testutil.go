package testutil

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lexibook/internal/domain"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWordbook creates a wordbook with the given number of words
func NewTestWordbook(ownerID uuid.UUID, title string, wordCount int) *domain.Wordbook {
	book := &domain.Wordbook{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Title:        title,
		TargetPasses: 1,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	for i := 0; i < wordCount; i++ {
		book.Words = append(book.Words, NewTestEntry("word", i))
	}
	return book
}

// NewTestEntry creates a word entry with a generated suffix and ordinal
func NewTestEntry(prefix string, ordinal int) domain.WordEntry {
	return domain.WordEntry{
		ID:      uuid.New(),
		Word:    fmt.Sprintf("%s%d", prefix, ordinal),
		Meaning: "meaning",
		Ordinal: ordinal,
	}
}
