package service

import (
	"fmt"

	"github.com/google/uuid"

	"lexibook/internal/domain"
	"lexibook/internal/repository"
)

// ProgressService handles section and daily progress logic
type ProgressService struct {
	progressRepo repository.ProgressRepository
	bookRepo     repository.WordbookRepository
}

// NewProgressService creates a new progress service
func NewProgressService(progressRepo repository.ProgressRepository, bookRepo repository.WordbookRepository) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		bookRepo:     bookRepo,
	}
}

// ListSections returns the user's per-wordbook progress records
func (s *ProgressService) ListSections(userID uuid.UUID) ([]domain.SectionProgress, error) {
	return s.progressRepo.ListSections(userID)
}

// UpsertSection stores progress for one wordbook. The state is clamped
// against the wordbook's current page count and pass target before it
// is written, so stored records always satisfy the progress invariants.
func (s *ProgressService) UpsertSection(userID, wordbookID uuid.UUID, state domain.ProgressState) error {
	book, err := s.bookRepo.GetByID(wordbookID)
	if err != nil {
		return err
	}
	if book == nil {
		return ErrNotFound
	}
	if book.OwnerID != userID && !book.IsTemplate {
		return ErrForbidden
	}

	clamped := state.Clamp(book.TotalPages(), book.TargetPasses)
	return s.progressRepo.UpsertSection(userID, wordbookID, clamped)
}

// ListDaily returns the user's daily learning records
func (s *ProgressService) ListDaily(userID uuid.UUID) ([]domain.DailyRecord, error) {
	return s.progressRepo.ListDaily(userID)
}

// RecordDaily accumulates words learned on one day. The date must be a
// strict yyyy-MM-dd string.
func (s *ProgressService) RecordDaily(userID uuid.UUID, date string, wordsLearned int) error {
	if !domain.ValidDailyDate(date) {
		return fmt.Errorf("%w: date must be yyyy-MM-dd, got %q", ErrInvalidInput, date)
	}
	if wordsLearned < 0 {
		return fmt.Errorf("%w: wordsLearned cannot be negative", ErrInvalidInput)
	}
	return s.progressRepo.AddDaily(userID, date, wordsLearned)
}
