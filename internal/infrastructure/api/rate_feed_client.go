// Package api holds clients for external rate feeds.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mhartwell/fxresolver/internal/domain/entity"
	"github.com/mhartwell/fxresolver/internal/infrastructure/logger"
)

const defaultFeedBaseURL = "https://api.frankfurter.app"

// RateFeedClient fetches daily reference-rate sheets from an ECB-style
// JSON feed.
type RateFeedClient struct {
	baseURL    string
	base       string
	httpClient *http.Client
	logger     logger.Logger
}

// NewRateFeedClient creates a feed client quoting against base (e.g.
// "EUR"). A nil httpClient gets a 10s-timeout default.
func NewRateFeedClient(baseURL, base string, httpClient *http.Client, log logger.Logger) *RateFeedClient {
	if baseURL == "" {
		baseURL = defaultFeedBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if log == nil {
		log = logger.GetDefaultLogger()
	}

	return &RateFeedClient{
		baseURL:    baseURL,
		base:       base,
		httpClient: httpClient,
		logger:     log,
	}
}

// feedResponse is the wire shape of the feed: a base currency, the
// publication date, and a code-to-rate map.
type feedResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// FetchRateSheet retrieves the sheet published for date, retrying
// transient transport failures with exponential backoff.
func (c *RateFeedClient) FetchRateSheet(ctx context.Context, date time.Time) (*entity.RateSheet, error) {
	reqURL := fmt.Sprintf("%s/%s?base=%s",
		c.baseURL,
		date.Format("2006-01-02"),
		url.QueryEscape(c.base))

	const maxRetries = 3
	var resp *http.Response
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Add("Accept", "application/json")

		resp, err = c.httpClient.Do(req)
		if err == nil {
			break
		}
		if attempt < maxRetries {
			backoff := time.Duration(attempt*attempt) * time.Second
			c.logger.Warn("Rate feed request failed, retrying", map[string]interface{}{
				"attempt": attempt,
				"backoff": backoff.String(),
				"error":   err.Error(),
			})
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to execute request after %d attempts: %w", maxRetries, err)
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Error closing feed response body", map[string]interface{}{
				"error": closeErr.Error(),
			})
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed feedResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}
	if len(parsed.Rates) == 0 {
		return nil, fmt.Errorf("feed returned no rates for %s", date.Format("2006-01-02"))
	}

	sheetDate, err := time.Parse("2006-01-02", parsed.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed date %q: %w", parsed.Date, err)
	}

	for code, rate := range parsed.Rates {
		if rate <= 0 {
			return nil, fmt.Errorf("feed returned non-positive rate %v for %s", rate, code)
		}
	}

	c.logger.Debug("Rate sheet fetched", map[string]interface{}{
		"base":  parsed.Base,
		"date":  parsed.Date,
		"count": len(parsed.Rates),
	})

	return &entity.RateSheet{
		Base:  parsed.Base,
		Date:  sheetDate,
		Rates: parsed.Rates,
	}, nil
}
