package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PageSize is the number of word entries shown on one reading page.
const PageSize = 10

// PlaceholderMeaning is stored when an entry is submitted without a meaning.
const PlaceholderMeaning = "-"

// WordEntry represents a single word-meaning pair inside a wordbook
type WordEntry struct {
	ID      uuid.UUID `json:"id"`
	Word    string    `json:"word"`
	Meaning string    `json:"meaning"`
	Ordinal int       `json:"ordinal"`
}

// Wordbook represents a collection of word entries owned by one user,
// or a shared read-only template visible to everyone
type Wordbook struct {
	ID           uuid.UUID   `json:"id"`
	OwnerID      uuid.UUID   `json:"-"`
	Title        string      `json:"title"`
	Subtitle     string      `json:"subtitle,omitempty"`
	TargetPasses int         `json:"targetPasses"`
	IsTemplate   bool        `json:"isTemplate"`
	Words        []WordEntry `json:"words"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// TotalPages returns the number of reading pages for this wordbook
func (b *Wordbook) TotalPages() int {
	return TotalPages(len(b.Words))
}

// TotalPages returns ceil(wordCount / PageSize), minimum 1
func TotalPages(wordCount int) int {
	pages := (wordCount + PageSize - 1) / PageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// NormalizeWord returns the canonical form used for duplicate detection:
// trimmed and lower-cased
func NormalizeWord(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
