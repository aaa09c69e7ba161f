package postgres

import (
	"database/sql"

	"github.com/google/uuid"

	"lexibook/internal/domain"
)

// ProgressRepo implements repository.ProgressRepository
type ProgressRepo struct {
	db *sql.DB
}

// NewProgressRepo creates a new progress repository
func NewProgressRepo(db *sql.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// ListSections returns the user's per-wordbook progress records
func (r *ProgressRepo) ListSections(userID uuid.UUID) ([]domain.SectionProgress, error) {
	query := `
		SELECT wordbook_id, completed_pages, completed_passes, updated_at
		FROM progress_sections
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []domain.SectionProgress
	for rows.Next() {
		var s domain.SectionProgress
		if err := rows.Scan(&s.WordbookID, &s.CompletedPages, &s.CompletedPasses, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}

	return sections, rows.Err()
}

// UpsertSection writes progress for one (user, wordbook) pair
func (r *ProgressRepo) UpsertSection(userID, wordbookID uuid.UUID, state domain.ProgressState) error {
	query := `
		INSERT INTO progress_sections (user_id, wordbook_id, completed_pages, completed_passes, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, wordbook_id)
		DO UPDATE SET completed_pages = $3, completed_passes = $4, updated_at = NOW()
	`
	_, err := r.db.Exec(query, userID, wordbookID, state.CompletedPages, state.CompletedPasses)
	return err
}

// ListDaily returns the user's daily learning records, newest first
func (r *ProgressRepo) ListDaily(userID uuid.UUID) ([]domain.DailyRecord, error) {
	query := `
		SELECT to_char(date, 'YYYY-MM-DD'), words_learned
		FROM daily_progress
		WHERE user_id = $1
		ORDER BY date DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.DailyRecord
	for rows.Next() {
		var rec domain.DailyRecord
		if err := rows.Scan(&rec.Date, &rec.WordsLearned); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// AddDaily accumulates learned words for one (user, date) pair
func (r *ProgressRepo) AddDaily(userID uuid.UUID, date string, wordsLearned int) error {
	query := `
		INSERT INTO daily_progress (user_id, date, words_learned)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, date)
		DO UPDATE SET words_learned = daily_progress.words_learned + $3
	`
	_, err := r.db.Exec(query, userID, date, wordsLearned)
	return err
}
