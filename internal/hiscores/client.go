// Package hiscores fetches player records from the game's leaderboard
// service. It is thin I/O glue: no retries, no caching, cancellation via
// context.
package hiscores

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/halwyn/runescore/internal/config"
	"github.com/halwyn/runescore/internal/model"
)

// Client looks up player records. Safe for concurrent use.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
}

// NewClient builds a Client from HTTP config. An empty BaseURL targets
// the official service.
func NewClient(cfg config.HTTPConfig) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout()},
		baseURL:   strings.TrimSuffix(base, "/"),
		userAgent: cfg.UserAgent,
	}
}

// Lookup fetches and decodes the JSON record for player on the given
// leaderboard. A 404 means the player is not ranked there.
func (c *Client) Lookup(ctx context.Context, player string, mode Mode) (*model.PlayerRecord, error) {
	body, err := c.get(ctx, player, mode, FormatJSON)
	if err != nil {
		return nil, err
	}

	var rec model.PlayerRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("decoding record for %q: %w", player, err)
	}

	slog.Debug("record decoded",
		"player", player,
		"skills", len(rec.Skills),
		"activities", len(rec.Activities))
	return &rec, nil
}

// LookupRaw fetches the legacy CSV payload for player verbatim.
func (c *Client) LookupRaw(ctx context.Context, player string, mode Mode) (string, error) {
	body, err := c.get(ctx, player, mode, FormatCSV)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, player string, mode Mode, format Format) ([]byte, error) {
	u, err := buildURL(c.baseURL, player, mode, format)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	slog.Debug("fetching hiscores", "player", player, "mode", mode, "format", format)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching hiscores for %q: %w", player, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d for player %q", ErrBadStatus, resp.StatusCode, player)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response for %q: %w", player, err)
	}
	return body, nil
}
