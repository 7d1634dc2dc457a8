package crawler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"bookstats/pkg/utils"
)

// Scraper errors.
var (
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
	ErrMalformedPayload     = errors.New("malformed JSON payload")
)

// maxBodyBytes bounds a single catalog response.
const maxBodyBytes = 4 << 20

// Scraper performs single-attempt JSON GETs with a per-request timeout.
type Scraper struct {
	client  *http.Client
	limiter *rate.Limiter
	headers *utils.HTTPHelper
}

// NewScraper creates a scraper. A requestsPerSecond of zero disables throttling.
func NewScraper(timeout time.Duration, requestsPerSecond float64, userAgent string) *Scraper {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}

	return &Scraper{
		client: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(limit, 1),
		headers: utils.NewHTTPHelper(userAgent),
	}
}

// GetJSON fetches url and decodes the body into target. Anything but a
// 200 response with a decodable body is an error; there are no retries.
func (s *Scraper) GetJSON(ctx context.Context, url string, target any) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header = s.headers.BuildHeaders()

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	return nil
}
