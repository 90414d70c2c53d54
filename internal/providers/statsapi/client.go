package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"mlb-apple-service/internal/domain"
	"mlb-apple-service/internal/providers"
)

// Config controls how the statsapi client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches schedule, live-feed, and play-by-play data from the MLB
// Stats API and maps it to domain models. The API is public and keyless.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a statsapi client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// Schedule lists the team's games between startDate and endDate inclusive.
func (c *Client) Schedule(ctx context.Context, teamID int, startDate, endDate string) ([]domain.ScheduledGame, error) {
	q := url.Values{}
	q.Set("sportId", strconv.Itoa(sportID))
	q.Set("teamId", strconv.Itoa(teamID))
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)

	var payload scheduleResponse
	if err := c.getJSON(ctx, schedulePath, q, &payload); err != nil {
		return nil, err
	}
	return mapSchedule(payload), nil
}

// GameDetail fetches the live feed for one game.
func (c *Client) GameDetail(ctx context.Context, gamePk int) (domain.GameDetail, error) {
	var payload liveFeedResponse
	if err := c.getJSON(ctx, fmt.Sprintf(liveFeedPath, gamePk), nil, &payload); err != nil {
		return domain.GameDetail{}, err
	}
	return mapGameDetail(gamePk, payload), nil
}

// PlayByPlay fetches the ordered play list for one game.
func (c *Client) PlayByPlay(ctx context.Context, gamePk int) ([]domain.Play, error) {
	var payload playByPlayResponse
	if err := c.getJSON(ctx, fmt.Sprintf(playByPlayPath, gamePk), nil, &payload); err != nil {
		return nil, err
	}
	return mapPlays(payload), nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", providers.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", providerName, err)
	}
	return nil
}
