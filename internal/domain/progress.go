package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProgressState tracks how far a user has read one wordbook.
// Pages count completed pages within the current pass; passes count
// full read-throughs of the whole book.
type ProgressState struct {
	CompletedPages  int `json:"completedPages"`
	CompletedPasses int `json:"completedPasses"`
}

// Clamp normalizes the state against the wordbook's current size and
// target pass count. It is idempotent and must be applied after every
// structural change to the wordbook.
func (p ProgressState) Clamp(totalPages, targetPasses int) ProgressState {
	if p.CompletedPasses > targetPasses {
		p.CompletedPasses = targetPasses
	}
	if p.CompletedPasses < 0 {
		p.CompletedPasses = 0
	}

	if totalPages <= 0 {
		p.CompletedPages = 0
		return p
	}

	if p.CompletedPages > totalPages {
		p.CompletedPages = totalPages
	}
	if p.CompletedPages < 0 {
		p.CompletedPages = 0
	}

	// A finished book shows full page coverage.
	if p.CompletedPasses >= targetPasses {
		p.CompletedPages = totalPages
	}

	return p
}

// MarkPageCompleted advances the state after the user finishes reading
// the page at pageIndex. Completing the last page of a pass rolls the
// page counter over and increments the pass counter; once the target
// pass count is reached the state is terminal and further calls are
// no-ops.
func (p ProgressState) MarkPageCompleted(totalPages, pageIndex, targetPasses int) ProgressState {
	if totalPages <= 0 {
		return p
	}

	// Terminal state: nothing left to advance.
	if p.CompletedPasses >= targetPasses && p.CompletedPages >= totalPages {
		return p
	}

	nextPage := pageIndex + 1
	if nextPage >= totalPages {
		newPasses := p.CompletedPasses + 1
		if newPasses >= targetPasses {
			p.CompletedPasses = targetPasses
			p.CompletedPages = totalPages
			return p
		}
		p.CompletedPasses = newPasses
		p.CompletedPages = 0
		return p
	}

	// Monotonic within a pass: revisiting an earlier page never regresses.
	if nextPage > p.CompletedPages {
		p.CompletedPages = nextPage
	}

	return p
}

// NextPageIndex returns the page to resume reading at
func (p ProgressState) NextPageIndex(totalPages, targetPasses int) int {
	if totalPages <= 0 {
		return 0
	}
	if p.CompletedPasses >= targetPasses {
		return totalPages - 1
	}
	if p.CompletedPages > totalPages-1 {
		return totalPages - 1
	}
	return p.CompletedPages
}

// IsFinished reports whether the target pass count has been reached
func (p ProgressState) IsFinished(targetPasses int) bool {
	return p.CompletedPasses >= targetPasses
}

// SectionProgress is a per-wordbook progress record as stored remotely
type SectionProgress struct {
	WordbookID uuid.UUID `json:"wordbookId"`
	ProgressState
	UpdatedAt time.Time `json:"updatedAt"`
}

// DailyDateLayout is the only accepted date format for daily records
const DailyDateLayout = "2006-01-02"

// DailyRecord counts words learned on one calendar day
type DailyRecord struct {
	Date         string `json:"date"`
	WordsLearned int    `json:"wordsLearned"`
}

// ValidDailyDate reports whether s is a strict yyyy-MM-dd date.
// Round-tripping through Format rejects shorthand like "2024-1-1".
func ValidDailyDate(s string) bool {
	t, err := time.Parse(DailyDateLayout, s)
	if err != nil {
		return false
	}
	return t.Format(DailyDateLayout) == s
}
