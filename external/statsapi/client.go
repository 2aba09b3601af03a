package statsapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/goal"
	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/match"
	"github.com/jbaranski/majorleaguesoccer-today/internal/platform/logging"
	"github.com/jbaranski/majorleaguesoccer-today/internal/platform/resilience"
	"github.com/jbaranski/majorleaguesoccer-today/internal/usecase"
)

const (
	defaultBaseURL   = "https://stats-api.mlssoccer.com"
	defaultUserAgent = "JEFF-Bot"
	maxBodyBytes     = 6 << 20
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	UserAgent      string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.BreakerConfig
}

// Client talks to the match-schedule and match-events endpoints.
// FetchSchedule failures are fatal to the run; FetchGoalEvents
// failures are degraded.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	userAgent      string
	logger         *logging.Logger
	breaker        *resilience.Breaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		userAgent:      userAgent,
		logger:         logger,
		breaker:        resilience.NewBreaker(cfg.CircuitBreaker),
		circuitEnabled: cfg.CircuitBreaker.Enabled,
	}
}

type scheduleEnvelope struct {
	Schedule []match.Match `json:"schedule"`
}

// FetchSchedule queries the season schedule inside [gteDate, lteDate].
// The window is requested one day wider than the pipeline needs so a
// timezone boundary cannot drop a match. Any failure here aborts the
// run.
func (c *Client) FetchSchedule(ctx context.Context, seasonID, gteDate, lteDate string) ([]match.Match, error) {
	if strings.TrimSpace(seasonID) == "" {
		return nil, fmt.Errorf("%w: season id is required", usecase.ErrFatalFetch)
	}

	query := url.Values{}
	query.Set("match_date[gte]", gteDate)
	query.Set("match_date[lte]", lteDate)
	query.Set("per_page", "1000")
	query.Set("sort", "planned_kickoff_time:asc,home_team_name:asc")

	path := fmt.Sprintf("/matches/seasons/%s", url.PathEscape(seasonID))
	raw, err := c.doGET(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrFatalFetch, err)
	}

	var envelope scheduleEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decode schedule payload: %v", usecase.ErrFatalFetch, err)
	}

	return envelope.Schedule, nil
}

type eventsEnvelope struct {
	Events []eventItem `json:"events"`
	Data   []eventItem `json:"data"`
}

type eventItem struct {
	Type       string `json:"type"`
	Minute     int    `json:"minute"`
	PlayerName string `json:"player_name"`
	TeamID     string `json:"team_id"`
	TeamName   string `json:"team_name"`
	OwnGoal    bool   `json:"own_goal"`
	Penalty    bool   `json:"penalty"`
}

// FetchGoalEvents pulls structured events for one match and keeps only
// the goal kinds. Any failure degrades to an error the caller swallows.
func (c *Client) FetchGoalEvents(ctx context.Context, matchID string) ([]goal.Event, error) {
	if strings.TrimSpace(matchID) == "" {
		return nil, fmt.Errorf("%w: match id is required", usecase.ErrDegradedFetch)
	}

	path := fmt.Sprintf("/matches/%s/events", url.PathEscape(matchID))
	raw, err := c.doGET(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrDegradedFetch, err)
	}

	var envelope eventsEnvelope
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decode events payload: %v", usecase.ErrDegradedFetch, err)
	}

	items := envelope.Events
	if len(items) == 0 {
		items = envelope.Data
	}

	out := make([]goal.Event, 0, len(items))
	for _, item := range items {
		kind := strings.ToLower(strings.TrimSpace(item.Type))
		if kind != "goal" && kind != "own_goal" && kind != "penalty_goal" {
			continue
		}
		minute := item.Minute
		if minute < 0 {
			minute = 0
		}
		out = append(out, goal.Event{
			Minute:     minute,
			PlayerName: strings.TrimSpace(item.PlayerName),
			TeamID:     item.TeamID,
			TeamName:   strings.TrimSpace(item.TeamName),
			IsOwnGoal:  item.OwnGoal || kind == "own_goal",
			IsPenalty:  item.Penalty || kind == "penalty_goal",
		})
	}

	return out, nil
}

func (c *Client) doGET(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "stats api circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("stats api is temporarily unavailable: %w", err)
		}
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	raw, err := c.executeRequest(ctx, fullURL)
	if c.circuitEnabled {
		c.breaker.Report(err)
	}
	if err != nil {
		return nil, err
	}

	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("stats api status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
	}

	return raw, nil
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}
