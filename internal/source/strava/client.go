package strava

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"fitsync/internal/domain"
)

const (
	ProviderID   = "strava"
	ProviderName = "Strava"
)

// ErrNotFound marks a provider 404. A missing activity or stream is a
// legitimate condition (deleted on the provider side), not a failure.
var ErrNotFound = errors.New("strava: resource not found")

// TokenSource yields a valid access token for a user, refreshing it when
// necessary.
type TokenSource interface {
	Token(ctx context.Context, userID string) (string, error)
}

// Config holds Strava client configuration.
type Config struct {
	BaseURL          string
	PageSize         int
	Timeout          time.Duration
	MaxAttempts      int
	InitialBackoff   time.Duration
	MaxBackoff       time.Duration
	StreamBatchSize  int
	StreamBatchDelay time.Duration
}

// Client talks to the Strava v3 API on behalf of connected users.
type Client struct {
	httpClient       *http.Client
	baseURL          string
	pageSize         int
	maxAttempts      int
	initialBackoff   time.Duration
	maxBackoff       time.Duration
	streamBatchSize  int
	streamBatchDelay time.Duration
	tokens           TokenSource
	logger           *slog.Logger

	// sleep is swapped out in tests to observe inter-batch pacing.
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a new Strava client.
func New(cfg Config, tokens TokenSource, logger *slog.Logger) *Client {
	batchSize := cfg.StreamBatchSize
	if batchSize < 1 {
		batchSize = 1
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:          cfg.BaseURL,
		pageSize:         cfg.PageSize,
		maxAttempts:      cfg.MaxAttempts,
		initialBackoff:   cfg.InitialBackoff,
		maxBackoff:       cfg.MaxBackoff,
		streamBatchSize:  batchSize,
		streamBatchDelay: cfg.StreamBatchDelay,
		tokens:           tokens,
		logger:           logger.With("source", ProviderID),
		sleep:            sleepCtx,
	}
}

// Provider returns the provider identifier.
func (c *Client) Provider() string {
	return ProviderID
}

// ListActivities pages through a user's activities inside the window and
// keeps only rides. Pages are fetched in increasing order; a short or
// empty page terminates the walk.
func (c *Client) ListActivities(ctx context.Context, userID string, after, before time.Time) ([]domain.Activity, error) {
	var activities []domain.Activity

	for page := 1; ; page++ {
		batch, err := c.fetchActivityPage(ctx, userID, after, before, page)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}

		for _, a := range batch {
			if !a.isRide() {
				continue
			}
			activity, err := a.toDomain(userID)
			if err != nil {
				c.logger.Warn("skipping activity with malformed payload",
					"activity_id", a.ID,
					"error", err,
				)
				continue
			}
			activities = append(activities, activity)
		}

		c.logger.Debug("fetched activity page",
			"user_id", userID,
			"page", page,
			"activities", len(batch),
			"total", len(activities),
		)

		if len(batch) < c.pageSize {
			break
		}
	}

	return activities, nil
}

// GetActivity fetches a single activity by its provider id.
func (c *Client) GetActivity(ctx context.Context, userID, sourceID string) (*domain.Activity, error) {
	var payload apiActivity
	if err := c.getJSON(ctx, userID, "/activities/"+url.PathEscape(sourceID), nil, &payload); err != nil {
		return nil, err
	}

	activity, err := payload.toDomain(userID)
	if err != nil {
		return nil, fmt.Errorf("transform activity %s: %w", sourceID, err)
	}
	return &activity, nil
}

func (c *Client) fetchActivityPage(ctx context.Context, userID string, after, before time.Time, page int) ([]apiActivity, error) {
	params := url.Values{}
	params.Set("after", strconv.FormatInt(after.Unix(), 10))
	params.Set("before", strconv.FormatInt(before.Unix(), 10))
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(c.pageSize))

	var payload []apiActivity
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = c.getJSON(ctx, userID, "/athlete/activities", params, &payload)
		if err == nil {
			return payload, nil
		}
		if errors.Is(err, ErrNotFound) || attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		if serr := c.sleep(ctx, backoff); serr != nil {
			return nil, serr
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func (c *Client) getJSON(ctx context.Context, userID, path string, params url.Values, out any) error {
	token, err := c.tokens.Token(ctx, userID)
	if err != nil {
		return fmt.Errorf("get access token: %w", err)
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
