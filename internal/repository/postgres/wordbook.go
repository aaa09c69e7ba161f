package postgres

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"lexibook/internal/domain"
	"lexibook/internal/repository"
)

// WordbookRepo implements repository.WordbookRepository
type WordbookRepo struct {
	db *sql.DB
}

// NewWordbookRepo creates a new wordbook repository
func NewWordbookRepo(db *sql.DB) *WordbookRepo {
	return &WordbookRepo{db: db}
}

// ListByOwner returns the user's wordbooks, optionally including shared
// templates, newest first
func (r *WordbookRepo) ListByOwner(ownerID uuid.UUID, includeTemplates bool, limit int) ([]domain.Wordbook, error) {
	query := `
		SELECT id, owner_id, title, subtitle, target_passes, is_template, created_at, updated_at
		FROM wordbooks
		WHERE owner_id = $1 AND is_template = FALSE
	`
	if includeTemplates {
		query = `
		SELECT id, owner_id, title, subtitle, target_passes, is_template, created_at, updated_at
		FROM wordbooks
		WHERE (owner_id = $1 AND is_template = FALSE) OR is_template = TRUE
	`
	}
	query += ` ORDER BY created_at DESC LIMIT $2`

	rows, err := r.db.Query(query, ownerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.Wordbook
	var ids []uuid.UUID
	for rows.Next() {
		book, err := scanWordbook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
		ids = append(ids, book.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachWords(books, ids); err != nil {
		return nil, err
	}

	return books, nil
}

// GetByID returns one wordbook with its words, or nil when absent
func (r *WordbookRepo) GetByID(id uuid.UUID) (*domain.Wordbook, error) {
	query := `
		SELECT id, owner_id, title, subtitle, target_passes, is_template, created_at, updated_at
		FROM wordbooks
		WHERE id = $1
	`
	row := r.db.QueryRow(query, id)
	book, err := scanWordbook(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	books := []domain.Wordbook{book}
	if err := r.attachWords(books, []uuid.UUID{book.ID}); err != nil {
		return nil, err
	}

	return &books[0], nil
}

// Create inserts a wordbook together with its initial words
func (r *WordbookRepo) Create(book *domain.Wordbook) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO wordbooks (id, owner_id, title, subtitle, target_passes, is_template, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.Exec(query,
		book.ID, book.OwnerID, book.Title, nullString(book.Subtitle),
		book.TargetPasses, book.IsTemplate, book.CreatedAt, book.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if err := insertWordsTx(tx, book.ID, book.Words); err != nil {
		return err
	}

	return tx.Commit()
}

// UpdateMeta updates the wordbook's scalar fields, leaving words alone
func (r *WordbookRepo) UpdateMeta(book *domain.Wordbook) error {
	query := `
		UPDATE wordbooks
		SET title = $2, subtitle = $3, target_passes = $4, updated_at = $5
		WHERE id = $1
	`
	_, err := r.db.Exec(query,
		book.ID, book.Title, nullString(book.Subtitle), book.TargetPasses, book.UpdatedAt,
	)
	return err
}

// Delete removes a wordbook; word entries cascade
func (r *WordbookRepo) Delete(id uuid.UUID) error {
	query := `DELETE FROM wordbooks WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}

// InsertWords appends entries to an existing wordbook
func (r *WordbookRepo) InsertWords(bookID uuid.UUID, entries []domain.WordEntry) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := insertWordsTx(tx, bookID, entries); err != nil {
		return err
	}

	return tx.Commit()
}

// ReplaceWords applies a full word-list replacement in one transaction.
// The order matters: updates first, then inserts, then deletes, so a
// rename that keeps its id is never read as delete-then-insert.
func (r *WordbookRepo) ReplaceWords(bookID uuid.UUID, updates, inserts []domain.WordEntry, deleteIDs []uuid.UUID) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	updateQuery := `
		UPDATE word_entries
		SET word = $2, meaning = $3, ordinal = $4
		WHERE id = $1 AND wordbook_id = $5
	`
	for _, e := range updates {
		if _, err := tx.Exec(updateQuery, e.ID, e.Word, e.Meaning, e.Ordinal, bookID); err != nil {
			return fmt.Errorf("update entry %s: %w", e.ID, err)
		}
	}

	if err := insertWordsTx(tx, bookID, inserts); err != nil {
		return err
	}

	if len(deleteIDs) > 0 {
		deleteQuery := `DELETE FROM word_entries WHERE wordbook_id = $1 AND id = ANY($2)`
		if _, err := tx.Exec(deleteQuery, bookID, pq.Array(deleteIDs)); err != nil {
			return fmt.Errorf("delete removed entries: %w", err)
		}
	}

	touchQuery := `UPDATE wordbooks SET updated_at = NOW() WHERE id = $1`
	if _, err := tx.Exec(touchQuery, bookID); err != nil {
		return err
	}

	return tx.Commit()
}

// EntryOwnerships resolves each entry id to its wordbook's owner and
// template flag. Unknown ids are simply absent from the result.
func (r *WordbookRepo) EntryOwnerships(entryIDs []uuid.UUID) ([]repository.EntryOwnership, error) {
	query := `
		SELECT we.id, wb.owner_id, wb.is_template
		FROM word_entries we
		JOIN wordbooks wb ON wb.id = we.wordbook_id
		WHERE we.id = ANY($1)
	`
	rows, err := r.db.Query(query, pq.Array(entryIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []repository.EntryOwnership
	for rows.Next() {
		var o repository.EntryOwnership
		if err := rows.Scan(&o.WordEntryID, &o.OwnerID, &o.IsTemplate); err != nil {
			return nil, err
		}
		result = append(result, o)
	}

	return result, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWordbook(row rowScanner) (domain.Wordbook, error) {
	var book domain.Wordbook
	var subtitle sql.NullString
	err := row.Scan(
		&book.ID, &book.OwnerID, &book.Title, &subtitle,
		&book.TargetPasses, &book.IsTemplate, &book.CreatedAt, &book.UpdatedAt,
	)
	if err != nil {
		return domain.Wordbook{}, err
	}
	if subtitle.Valid {
		book.Subtitle = subtitle.String
	}
	return book, nil
}

// attachWords loads word entries for the given books in one query
func (r *WordbookRepo) attachWords(books []domain.Wordbook, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		SELECT id, wordbook_id, word, meaning, ordinal
		FROM word_entries
		WHERE wordbook_id = ANY($1)
		ORDER BY ordinal ASC
	`
	rows, err := r.db.Query(query, pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	byBook := make(map[uuid.UUID][]domain.WordEntry)
	for rows.Next() {
		var e domain.WordEntry
		var bookID uuid.UUID
		if err := rows.Scan(&e.ID, &bookID, &e.Word, &e.Meaning, &e.Ordinal); err != nil {
			return err
		}
		byBook[bookID] = append(byBook[bookID], e)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for i := range books {
		books[i].Words = byBook[books[i].ID]
	}

	return nil
}

func insertWordsTx(tx *sql.Tx, bookID uuid.UUID, entries []domain.WordEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query := `
		INSERT INTO word_entries (id, wordbook_id, word, meaning, ordinal)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, e := range entries {
		if _, err := tx.Exec(query, e.ID, bookID, e.Word, e.Meaning, e.Ordinal); err != nil {
			return fmt.Errorf("insert entry %q: %w", e.Word, err)
		}
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
