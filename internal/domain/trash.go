package domain

import "time"

// TrashRetention is how long a deleted wordbook stays recoverable
const TrashRetention = 30 * 24 * time.Hour

// TrashedWordbook is a soft-deleted wordbook awaiting permanent purge
type TrashedWordbook struct {
	Wordbook  Wordbook  `json:"wordbook"`
	DeletedAt time.Time `json:"deletedAt"`
}

// IsExpired reports whether the retention window has elapsed
func (t TrashedWordbook) IsExpired(now time.Time, retention time.Duration) bool {
	return now.Sub(t.DeletedAt) >= retention
}

// PurgeExpired filters out trashed wordbooks past their retention window.
// It is applied opportunistically on store load and before listing the
// trash, not by a background timer.
func PurgeExpired(items []TrashedWordbook, now time.Time, retention time.Duration) []TrashedWordbook {
	kept := items[:0]
	for _, item := range items {
		if !item.IsExpired(now, retention) {
			kept = append(kept, item)
		}
	}
	return kept
}
