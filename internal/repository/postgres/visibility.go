package postgres

import (
	"database/sql"

	"github.com/google/uuid"

	"lexibook/internal/domain"
)

// VisibilityRepo implements repository.VisibilityRepository
type VisibilityRepo struct {
	db *sql.DB
}

// NewVisibilityRepo creates a new visibility repository
func NewVisibilityRepo(db *sql.DB) *VisibilityRepo {
	return &VisibilityRepo{db: db}
}

// List returns the user's stored visibility overrides
func (r *VisibilityRepo) List(userID uuid.UUID) ([]domain.VisibilityRecord, error) {
	query := `
		SELECT word_entry_id, show_word, show_meaning, updated_at
		FROM visibility
		WHERE user_id = $1
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.VisibilityRecord
	for rows.Next() {
		var rec domain.VisibilityRecord
		if err := rows.Scan(&rec.WordEntryID, &rec.ShowWord, &rec.ShowMeaning, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Upsert writes one visibility override
func (r *VisibilityRepo) Upsert(userID, wordEntryID uuid.UUID, entry domain.VisibilityEntry) error {
	query := `
		INSERT INTO visibility (user_id, word_entry_id, show_word, show_meaning, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, word_entry_id)
		DO UPDATE SET show_word = $3, show_meaning = $4, updated_at = NOW()
	`
	_, err := r.db.Exec(query, userID, wordEntryID, entry.ShowWord, entry.ShowMeaning)
	return err
}

// Delete removes the override for one word entry, returning it to the
// implicit fully-visible default
func (r *VisibilityRepo) Delete(userID, wordEntryID uuid.UUID) error {
	query := `DELETE FROM visibility WHERE user_id = $1 AND word_entry_id = $2`
	_, err := r.db.Exec(query, userID, wordEntryID)
	return err
}
