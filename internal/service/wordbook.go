package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"lexibook/internal/domain"
	"lexibook/internal/repository"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// WordbookService handles wordbook business logic: ownership checks,
// duplicate detection and the full word-list replacement
type WordbookService struct {
	bookRepo repository.WordbookRepository
}

// NewWordbookService creates a new wordbook service
func NewWordbookService(bookRepo repository.WordbookRepository) *WordbookService {
	return &WordbookService{bookRepo: bookRepo}
}

// EntryInput is a submitted word entry; ID is set when the caller wants
// to keep an existing entry's identity through a full replace
type EntryInput struct {
	ID      *uuid.UUID `json:"id,omitempty"`
	Word    string     `json:"word"`
	Meaning string     `json:"meaning"`
	Ordinal *int       `json:"ordinal,omitempty"`
}

// CreateWordbookInput carries fields for a new wordbook
type CreateWordbookInput struct {
	ID           *uuid.UUID   `json:"id,omitempty"`
	Title        string       `json:"title"`
	Subtitle     string       `json:"subtitle"`
	TargetPasses int          `json:"targetPasses"`
	Words        []EntryInput `json:"words"`
}

// UpdateWordbookInput carries partial fields; nil means leave unchanged.
// A non-nil Words replaces the entire word list.
type UpdateWordbookInput struct {
	Title        *string       `json:"title,omitempty"`
	Subtitle     *string       `json:"subtitle,omitempty"`
	TargetPasses *int          `json:"targetPasses,omitempty"`
	Words        *[]EntryInput `json:"words,omitempty"`
}

// ImportResult reports a bulk-add outcome; duplicates are reported in
// their original casing, not treated as errors
type ImportResult struct {
	AddedCount     int      `json:"addedCount"`
	DuplicateWords []string `json:"duplicateWords"`
}

// List returns the user's wordbooks, optionally including templates
func (s *WordbookService) List(ownerID uuid.UUID, includeTemplates bool, limit int) ([]domain.Wordbook, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.bookRepo.ListByOwner(ownerID, includeTemplates, limit)
}

// Get returns one wordbook the user may read: their own or a template
func (s *WordbookService) Get(userID, id uuid.UUID) (*domain.Wordbook, error) {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrNotFound
	}
	if book.OwnerID != userID && !book.IsTemplate {
		return nil, ErrForbidden
	}
	return book, nil
}

// Create creates a wordbook for the user; dedup and defaults follow the
// same rules as import
func (s *WordbookService) Create(ownerID uuid.UUID, in CreateWordbookInput) (*domain.Wordbook, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if in.TargetPasses < 0 {
		return nil, fmt.Errorf("%w: targetPasses must be >= 1", ErrInvalidInput)
	}
	targetPasses := in.TargetPasses
	if targetPasses == 0 {
		targetPasses = 1
	}

	id := uuid.New()
	if in.ID != nil && *in.ID != uuid.Nil {
		id = *in.ID
	}

	accepted, _ := dedupe(nil, in.Words)
	now := time.Now().UTC()
	book := &domain.Wordbook{
		ID:           id,
		OwnerID:      ownerID,
		Title:        title,
		Subtitle:     strings.TrimSpace(in.Subtitle),
		TargetPasses: targetPasses,
		Words:        buildEntries(accepted, 0),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.bookRepo.Create(book); err != nil {
		return nil, fmt.Errorf("create wordbook: %w", err)
	}

	return book, nil
}

// Update applies partial field changes and, when Words is set, replaces
// the word list wholesale via the three-phase write
func (s *WordbookService) Update(ownerID, id uuid.UUID, in UpdateWordbookInput) (*domain.Wordbook, error) {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrNotFound
	}
	if book.OwnerID != ownerID || book.IsTemplate {
		return nil, ErrForbidden
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		book.Title = title
	}
	if in.Subtitle != nil {
		book.Subtitle = strings.TrimSpace(*in.Subtitle)
	}
	if in.TargetPasses != nil {
		if *in.TargetPasses < 1 {
			return nil, fmt.Errorf("%w: targetPasses must be >= 1", ErrInvalidInput)
		}
		book.TargetPasses = *in.TargetPasses
	}

	book.UpdatedAt = time.Now().UTC()
	if err := s.bookRepo.UpdateMeta(book); err != nil {
		return nil, fmt.Errorf("update wordbook: %w", err)
	}

	if in.Words != nil {
		if err := s.replaceWords(book, *in.Words); err != nil {
			return nil, err
		}
		// Reload so the response reflects the stored word list.
		book, err = s.bookRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
	}

	return book, nil
}

// Delete removes the user's wordbook. The remote store hard-deletes;
// the client keeps its own trash.
func (s *WordbookService) Delete(ownerID, id uuid.UUID) error {
	book, err := s.bookRepo.GetByID(id)
	if err != nil {
		return err
	}
	if book == nil {
		return ErrNotFound
	}
	if book.OwnerID != ownerID || book.IsTemplate {
		return ErrForbidden
	}
	return s.bookRepo.Delete(id)
}

// ImportEntries bulk-adds entries into an owned wordbook. Duplicates
// against the persisted set or earlier batch positions are rejected and
// reported; the first occurrence wins.
func (s *WordbookService) ImportEntries(ownerID, bookID uuid.UUID, words []EntryInput) (*ImportResult, error) {
	book, err := s.bookRepo.GetByID(bookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrNotFound
	}
	if book.OwnerID != ownerID || book.IsTemplate {
		return nil, ErrForbidden
	}

	accepted, duplicates := dedupe(book.Words, words)
	entries := buildEntries(accepted, len(book.Words))

	if len(entries) > 0 {
		if err := s.bookRepo.InsertWords(bookID, entries); err != nil {
			return nil, fmt.Errorf("import entries: %w", err)
		}
	}

	result := &ImportResult{
		AddedCount:     len(entries),
		DuplicateWords: duplicates,
	}
	if result.DuplicateWords == nil {
		result.DuplicateWords = []string{}
	}
	return result, nil
}

// replaceWords runs the full-replace flow: dedup inside the batch,
// partition into updates (carry a known id) and inserts, delete every
// previously-existing id missing from the payload.
func (s *WordbookService) replaceWords(book *domain.Wordbook, words []EntryInput) error {
	accepted, _ := dedupe(nil, words)

	existing := make(map[uuid.UUID]bool, len(book.Words))
	for _, e := range book.Words {
		existing[e.ID] = true
	}

	var updates, inserts []domain.WordEntry
	kept := make(map[uuid.UUID]bool, len(accepted))
	for i, in := range accepted {
		entry := buildEntry(in, i)
		if in.ID != nil && existing[*in.ID] {
			entry.ID = *in.ID
			kept[entry.ID] = true
			updates = append(updates, entry)
		} else {
			inserts = append(inserts, entry)
		}
	}

	var deleteIDs []uuid.UUID
	for _, e := range book.Words {
		if !kept[e.ID] {
			deleteIDs = append(deleteIDs, e.ID)
		}
	}

	if err := s.bookRepo.ReplaceWords(book.ID, updates, inserts, deleteIDs); err != nil {
		return fmt.Errorf("replace words: %w", err)
	}
	return nil
}

// dedupe drops candidates whose normalized form already exists in the
// persisted set or earlier in the same batch. Blank words are dropped
// silently. Duplicates keep their original casing in the report.
func dedupe(existing []domain.WordEntry, batch []EntryInput) (accepted []EntryInput, duplicates []string) {
	seen := make(map[string]struct{}, len(existing)+len(batch))
	for _, e := range existing {
		seen[domain.NormalizeWord(e.Word)] = struct{}{}
	}

	for _, in := range batch {
		norm := domain.NormalizeWord(in.Word)
		if norm == "" {
			continue
		}
		if _, dup := seen[norm]; dup {
			duplicates = append(duplicates, in.Word)
			continue
		}
		seen[norm] = struct{}{}
		accepted = append(accepted, in)
	}

	return accepted, duplicates
}

func buildEntries(inputs []EntryInput, ordinalBase int) []domain.WordEntry {
	entries := make([]domain.WordEntry, 0, len(inputs))
	for i, in := range inputs {
		entries = append(entries, buildEntry(in, ordinalBase+i))
	}
	return entries
}

// buildEntry normalizes one submitted entry: trimmed word, placeholder
// meaning when blank, positional ordinal unless supplied
func buildEntry(in EntryInput, ordinal int) domain.WordEntry {
	meaning := strings.TrimSpace(in.Meaning)
	if meaning == "" {
		meaning = domain.PlaceholderMeaning
	}
	if in.Ordinal != nil {
		ordinal = *in.Ordinal
	}
	return domain.WordEntry{
		ID:      uuid.New(),
		Word:    strings.TrimSpace(in.Word),
		Meaning: meaning,
		Ordinal: ordinal,
	}
}
