package domain

import (
	"time"

	"github.com/google/uuid"
)

// VisibilityEntry records which halves of a word entry the user has
// hidden. An absent record means fully visible.
type VisibilityEntry struct {
	ShowWord    bool `json:"showWord"`
	ShowMeaning bool `json:"showMeaning"`
}

// DefaultVisibility is the implicit state when no record is stored
var DefaultVisibility = VisibilityEntry{ShowWord: true, ShowMeaning: true}

// IsDefault reports whether this entry equals the implicit fully-visible
// state and therefore should not be stored
func (v VisibilityEntry) IsDefault() bool {
	return v.ShowWord && v.ShowMeaning
}

// VisibilityRecord is a stored visibility override for one word entry
type VisibilityRecord struct {
	WordEntryID uuid.UUID `json:"wordEntryId"`
	VisibilityEntry
	UpdatedAt time.Time `json:"updatedAt"`
}
