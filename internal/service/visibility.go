package service

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lexibook/internal/domain"
	"lexibook/internal/repository"
)

// VisibilityService handles word-visibility overrides
type VisibilityService struct {
	visRepo  repository.VisibilityRepository
	bookRepo repository.WordbookRepository
	logger   *zap.Logger
}

// NewVisibilityService creates a new visibility service
func NewVisibilityService(visRepo repository.VisibilityRepository, bookRepo repository.WordbookRepository, logger *zap.Logger) *VisibilityService {
	return &VisibilityService{
		visRepo:  visRepo,
		bookRepo: bookRepo,
		logger:   logger,
	}
}

// VisibilityItem is one submitted visibility override
type VisibilityItem struct {
	WordEntryID uuid.UUID `json:"wordEntryId"`
	ShowWord    bool      `json:"showWord"`
	ShowMeaning bool      `json:"showMeaning"`
}

// List returns the user's stored visibility overrides
func (s *VisibilityService) List(userID uuid.UUID) ([]domain.VisibilityRecord, error) {
	return s.visRepo.List(userID)
}

// Apply validates and stores a batch of visibility overrides. Every
// referenced entry must belong to a wordbook the user owns or a
// template; if any entry fails the check the whole batch is rejected
// before a single write is issued. Entries back at the fully-visible
// default are deleted instead of stored.
func (s *VisibilityService) Apply(userID uuid.UUID, items []VisibilityItem) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.WordEntryID)
	}

	ownerships, err := s.bookRepo.EntryOwnerships(ids)
	if err != nil {
		return fmt.Errorf("resolve entry ownership: %w", err)
	}

	access := make(map[uuid.UUID]repository.EntryOwnership, len(ownerships))
	for _, o := range ownerships {
		access[o.WordEntryID] = o
	}

	// Validate everything before writing anything.
	for _, item := range items {
		o, ok := access[item.WordEntryID]
		if !ok {
			return fmt.Errorf("%w: word entry %s", ErrNotFound, item.WordEntryID)
		}
		if !o.IsTemplate && o.OwnerID != userID {
			return fmt.Errorf("%w: word entry %s", ErrForbidden, item.WordEntryID)
		}
	}

	for _, item := range items {
		entry := domain.VisibilityEntry{ShowWord: item.ShowWord, ShowMeaning: item.ShowMeaning}
		if entry.IsDefault() {
			err = s.visRepo.Delete(userID, item.WordEntryID)
		} else {
			err = s.visRepo.Upsert(userID, item.WordEntryID, entry)
		}
		if err != nil {
			return fmt.Errorf("store visibility for %s: %w", item.WordEntryID, err)
		}
	}

	s.logger.Debug("Visibility batch applied",
		zap.String("user_id", userID.String()),
		zap.Int("count", len(items)),
	)

	return nil
}
