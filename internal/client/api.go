package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"lexibook/internal/domain"
	"lexibook/internal/service"
)

const (
	connectTimeout = 30 * time.Second
	requestTimeout = 60 * time.Second
)

// APIError is a typed failure returned for non-2xx responses. The
// client never retries internally; retry policy belongs to the caller.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client talks to the remote lexibook API with bearer-token auth
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates an API client with bounded connect and total
// request timeouts
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http: &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
			},
		},
	}
}

// ListWordbooks fetches the user's wordbooks
func (c *Client) ListWordbooks(ctx context.Context, includeTemplates bool) ([]domain.Wordbook, error) {
	path := "/api/wordbooks"
	if includeTemplates {
		path += "?includeTemplates=true"
	}
	var out struct {
		Wordbooks []domain.Wordbook `json:"wordbooks"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Wordbooks, nil
}

// CreateWordbook creates a wordbook remotely, preserving the local id
func (c *Client) CreateWordbook(ctx context.Context, book domain.Wordbook) (*domain.Wordbook, error) {
	in := service.CreateWordbookInput{
		ID:           &book.ID,
		Title:        book.Title,
		Subtitle:     book.Subtitle,
		TargetPasses: book.TargetPasses,
		Words:        entryInputs(book.Words),
	}
	var out domain.Wordbook
	if err := c.do(ctx, http.MethodPost, "/api/wordbooks", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateWordbook pushes the full local wordbook, replacing the remote
// word list
func (c *Client) UpdateWordbook(ctx context.Context, book domain.Wordbook) (*domain.Wordbook, error) {
	words := entryInputs(book.Words)
	in := service.UpdateWordbookInput{
		Title:        &book.Title,
		Subtitle:     &book.Subtitle,
		TargetPasses: &book.TargetPasses,
		Words:        &words,
	}
	var out domain.Wordbook
	if err := c.do(ctx, http.MethodPatch, "/api/wordbooks/"+book.ID.String(), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteWordbook removes a wordbook remotely (hard delete)
func (c *Client) DeleteWordbook(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/wordbooks/"+id.String(), nil, nil)
}

// ImportEntries bulk-adds entries into a remote wordbook
func (c *Client) ImportEntries(ctx context.Context, bookID uuid.UUID, words []service.EntryInput) (*service.ImportResult, error) {
	body := map[string]any{"words": words}
	var out service.ImportResult
	path := "/api/wordbooks/" + bookID.String() + "/entries"
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSections fetches the user's remote progress records
func (c *Client) ListSections(ctx context.Context) ([]domain.SectionProgress, error) {
	var out struct {
		Sections []domain.SectionProgress `json:"sections"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/progress/sections", nil, &out); err != nil {
		return nil, err
	}
	return out.Sections, nil
}

// UpsertSection pushes progress for one wordbook
func (c *Client) UpsertSection(ctx context.Context, wordbookID uuid.UUID, state domain.ProgressState) error {
	body := map[string]any{
		"wordbookId":      wordbookID,
		"completedPages":  state.CompletedPages,
		"completedPasses": state.CompletedPasses,
	}
	return c.do(ctx, http.MethodPost, "/api/progress/sections", body, nil)
}

// ListDaily fetches the user's daily learning records
func (c *Client) ListDaily(ctx context.Context) ([]domain.DailyRecord, error) {
	var out struct {
		Records []domain.DailyRecord `json:"records"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/progress/daily", nil, &out); err != nil {
		return nil, err
	}
	return out.Records, nil
}

// RecordDaily adds learned words to one day's record
func (c *Client) RecordDaily(ctx context.Context, record domain.DailyRecord) error {
	return c.do(ctx, http.MethodPost, "/api/progress/daily", record, nil)
}

// ListVisibility fetches the user's remote visibility overrides
func (c *Client) ListVisibility(ctx context.Context) ([]domain.VisibilityRecord, error) {
	var out struct {
		Visibility []domain.VisibilityRecord `json:"visibility"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/visibility", nil, &out); err != nil {
		return nil, err
	}
	return out.Visibility, nil
}

// ApplyVisibility pushes a batch of visibility overrides
func (c *Client) ApplyVisibility(ctx context.Context, items []service.VisibilityItem) error {
	body := map[string]any{"items": items}
	return c.do(ctx, http.MethodPost, "/api/visibility", body, nil)
}

// GetProfile fetches the user's profile
func (c *Client) GetProfile(ctx context.Context) (*domain.Profile, error) {
	var out domain.Profile
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile pushes partial profile changes
func (c *Client) UpdateProfile(ctx context.Context, displayName, avatarEmoji *string) (*domain.Profile, error) {
	body := map[string]any{}
	if displayName != nil {
		body["displayName"] = *displayName
	}
	if avatarEmoji != nil {
		body["avatarEmoji"] = *avatarEmoji
	}
	var out domain.Profile
	if err := c.do(ctx, http.MethodPatch, "/api/profile", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do runs one authenticated JSON request. Non-2xx responses become a
// typed *APIError carrying the server's error message.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var errBody struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Error != "" {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

func entryInputs(entries []domain.WordEntry) []service.EntryInput {
	inputs := make([]service.EntryInput, 0, len(entries))
	for _, e := range entries {
		e := e
		inputs = append(inputs, service.EntryInput{
			ID:      &e.ID,
			Word:    e.Word,
			Meaning: e.Meaning,
			Ordinal: &e.Ordinal,
		})
	}
	return inputs
}
