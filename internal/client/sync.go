package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"

	"go.uber.org/zap"

	"lexibook/internal/domain"
	"lexibook/internal/service"
)

// SyncCoordinator reconciles the local stores with the remote API. Pull
// and push are independent, idempotent and safe to retry; remote state
// wins wholesale on pull, push is a best-effort fan-out. At most one
// pass per direction runs at a time; a second trigger while one is in
// flight is a silent no-op.
type SyncCoordinator struct {
	api        *Client
	books      *WordbookStore
	progress   *ProgressStore
	visibility *VisibilityStore
	logger     *zap.Logger

	pullInFlight atomic.Bool
	pushInFlight atomic.Bool
}

// NewSyncCoordinator creates a sync coordinator over the given stores
func NewSyncCoordinator(api *Client, books *WordbookStore, progress *ProgressStore, visibility *VisibilityStore, logger *zap.Logger) *SyncCoordinator {
	return &SyncCoordinator{
		api:        api,
		books:      books,
		progress:   progress,
		visibility: visibility,
		logger:     logger,
	}
}

// Pull fetches remote wordbooks, progress and visibility and overwrites
// local state. A cancelled pull may leave some wordbooks updated and
// others not; rerunning is always safe.
func (s *SyncCoordinator) Pull(ctx context.Context) error {
	if !s.pullInFlight.CompareAndSwap(false, true) {
		s.logger.Debug("Pull already in flight, skipping")
		return nil
	}
	defer s.pullInFlight.Store(false)

	remoteBooks, err := s.api.ListWordbooks(ctx, false)
	if err != nil {
		return fmt.Errorf("pull wordbooks: %w", err)
	}

	for _, remote := range remoteBooks {
		if err := s.books.Upsert(remote); err != nil {
			return fmt.Errorf("store wordbook %s: %w", remote.ID, err)
		}
		// The remote copy may have a different size or target; keep the
		// local progress invariants intact.
		if err := s.progress.Clamp(remote.ID, remote.TotalPages(), remote.TargetPasses); err != nil {
			return fmt.Errorf("clamp progress for %s: %w", remote.ID, err)
		}
	}

	sections, err := s.api.ListSections(ctx)
	if err != nil {
		return fmt.Errorf("pull progress: %w", err)
	}

	for _, sec := range sections {
		book, ok := s.books.Get(sec.WordbookID)
		if !ok {
			s.logger.Warn("Skipping progress for unknown wordbook",
				zap.String("wordbook_id", sec.WordbookID.String()),
			)
			continue
		}
		state := sec.ProgressState.Clamp(book.TotalPages(), book.TargetPasses)
		if err := s.progress.SetProgress(sec.WordbookID, state); err != nil {
			return fmt.Errorf("store progress for %s: %w", sec.WordbookID, err)
		}
	}

	records, err := s.api.ListVisibility(ctx)
	if err != nil {
		return fmt.Errorf("pull visibility: %w", err)
	}

	for _, rec := range records {
		if err := s.visibility.Set(rec.WordEntryID, rec.VisibilityEntry); err != nil {
			return fmt.Errorf("store visibility for %s: %w", rec.WordEntryID, err)
		}
	}

	s.logger.Info("Pull completed",
		zap.Int("wordbooks", len(remoteBooks)),
		zap.Int("sections", len(sections)),
		zap.Int("visibility", len(records)),
	)

	return nil
}

// Push uploads local wordbooks, progress and visibility. Each wordbook
// is pushed independently; a failure on one does not block the others.
// Collected errors are returned joined after the fan-out finishes.
func (s *SyncCoordinator) Push(ctx context.Context) error {
	if !s.pushInFlight.CompareAndSwap(false, true) {
		s.logger.Debug("Push already in flight, skipping")
		return nil
	}
	defer s.pushInFlight.Store(false)

	var errs []error

	for _, book := range s.books.All() {
		if err := s.pushWordbook(ctx, book); err != nil {
			s.logger.Warn("Failed to push wordbook",
				zap.String("wordbook_id", book.ID.String()),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("wordbook %s: %w", book.ID, err))
		}
	}

	for id, state := range s.progress.All() {
		if err := s.api.UpsertSection(ctx, id, state); err != nil {
			s.logger.Warn("Failed to push progress",
				zap.String("wordbook_id", id.String()),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("progress %s: %w", id, err))
		}
	}

	overrides := s.visibility.All()
	if len(overrides) > 0 {
		items := make([]service.VisibilityItem, 0, len(overrides))
		for id, entry := range overrides {
			items = append(items, service.VisibilityItem{
				WordEntryID: id,
				ShowWord:    entry.ShowWord,
				ShowMeaning: entry.ShowMeaning,
			})
		}
		if err := s.api.ApplyVisibility(ctx, items); err != nil {
			s.logger.Warn("Failed to push visibility", zap.Error(err))
			errs = append(errs, fmt.Errorf("visibility: %w", err))
		}
	}

	return errors.Join(errs...)
}

// pushWordbook tries update-by-id first and falls back to create when
// the book has never been persisted remotely, e.g. created offline
func (s *SyncCoordinator) pushWordbook(ctx context.Context, book domain.Wordbook) error {
	_, err := s.api.UpdateWordbook(ctx, book)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		_, err = s.api.CreateWordbook(ctx, book)
	}
	return err
}
