package videofeed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/video"
	"github.com/jbaranski/majorleaguesoccer-today/internal/platform/logging"
	"github.com/jbaranski/majorleaguesoccer-today/internal/usecase"
)

const (
	defaultBaseURL = "https://dapi.mlssoccer.com/v2/content"
	defaultLimit   = 50
	maxBodyBytes   = 6 << 20
)

// envelopeKeys are the known list containers, probed in order. An
// envelope carrying none of them is treated as an empty feed, not an
// error.
var envelopeKeys = []string{"data", "content", "hits", "results"}

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Limit      int
	Timeout    time.Duration
	Logger     *logging.Logger
}

// Client fetches the recent-highlights feed. Everything about the feed
// is best-effort: any failure surfaces as a degraded error the caller
// substitutes with an empty pool.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limit      int
	logger     *logging.Logger
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
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	limit := cfg.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		limit:      limit,
		logger:     logger,
	}
}

// FetchRecentVideos pulls one page of the most recent highlight
// videos.
func (c *Client) FetchRecentVideos(ctx context.Context) ([]video.Item, error) {
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(c.limit))
	query.Set("sort", "-published_date")

	fullURL := c.baseURL + "/videos?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", usecase.ErrDegradedFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: send request: %v", usecase.ErrDegradedFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", usecase.ErrDegradedFetch, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: video feed status=%d", usecase.ErrDegradedFetch, resp.StatusCode)
	}

	var envelope map[string]any
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: decode video feed payload: %v", usecase.ErrDegradedFetch, err)
	}

	return parseEnvelope(envelope), nil
}

// parseEnvelope extracts video items from whichever known container
// the feed used this time. Unrecognized shapes yield an empty slice.
func parseEnvelope(envelope map[string]any) []video.Item {
	for _, key := range envelopeKeys {
		list, ok := envelope[key].([]any)
		if !ok {
			continue
		}

		out := make([]video.Item, 0, len(list))
		for _, entry := range list {
			item, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			out = append(out, parseItem(item))
		}
		return out
	}

	return nil
}

func parseItem(item map[string]any) video.Item {
	return video.Item{
		Title:      getStringAny(item, "title", "headline", "name"),
		Slug:       getStringAny(item, "slug"),
		ContentURL: getStringAny(item, "contentUrl", "content_url"),
		URL:        getStringAny(item, "url", "link"),
		Tags:       parseTags(item["tags"]),
		Date:       getStringAny(item, "date", "published_date", "publishedDate", "updated_date"),
	}
}

// parseTags accepts both plain string tags and tag objects carrying a
// name-like field.
func parseTags(raw any) []string {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(list))
	for _, entry := range list {
		switch tag := entry.(type) {
		case string:
			if trimmed := strings.TrimSpace(tag); trimmed != "" {
				out = append(out, trimmed)
			}
		case map[string]any:
			if name := getStringAny(tag, "name", "title", "label", "slug"); name != "" {
				out = append(out, name)
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func getStringAny(item map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := item[key].(string); ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}
