// Package crawler reads the ISBN list and fetches catalog records from Open Library.
package crawler

import (
	"context"
	"net/url"
	"strings"

	"bookstats/internal/config"
	"bookstats/internal/logger"
	"bookstats/internal/metrics"
	"bookstats/internal/models"
)

// Client looks books up in the Open Library catalog.
type Client struct {
	scraper *Scraper
	baseURL string
	logger  *logger.Logger
	metrics *metrics.FetchMetrics
}

// NewClient creates a catalog client from configuration.
func NewClient(cfg config.OpenLibraryConfig, log *logger.Logger, m *metrics.FetchMetrics) *Client {
	scraper := NewScraper(cfg.GetTimeout(), cfg.RequestsPerSecond, cfg.UserAgent)

	return NewClientWithDeps(scraper, cfg.BaseURL, log, m)
}

// NewClientWithDeps creates a catalog client with injected dependencies.
func NewClientWithDeps(scraper *Scraper, baseURL string, log *logger.Logger, m *metrics.FetchMetrics) *Client {
	return &Client{
		scraper: scraper,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  log,
		metrics: m,
	}
}

// FetchBook returns the catalog entry for isbn and, when the entry names a
// key, its detail record. Failures never propagate: a failed catalog lookup
// yields an empty entry and a nil detail, and a failed detail lookup yields
// a nil detail next to the catalog entry.
func (c *Client) FetchBook(ctx context.Context, isbn string) (*models.RawCatalogEntry, *models.RawDetailEntry) {
	entry, ok := c.fetchCatalog(ctx, isbn)
	if !ok || entry.IsEmpty() {
		return &models.RawCatalogEntry{}, nil
	}

	return entry, c.fetchDetail(ctx, isbn, entry.Key)
}

func (c *Client) fetchCatalog(ctx context.Context, isbn string) (*models.RawCatalogEntry, bool) {
	bibkey := "ISBN:" + isbn
	u := c.baseURL + "/api/books?bibkeys=" + url.QueryEscape(bibkey) + "&format=json&jscmd=data"

	var res map[string]models.RawCatalogEntry
	if err := c.scraper.GetJSON(ctx, u, &res); err != nil {
		c.logger.Error("Failed to get data for ISBN", "isbn", isbn, "error", err)
		c.metrics.CatalogResult(metrics.OutcomeFailed)

		return nil, false
	}

	entry, found := res[bibkey]
	if !found || entry.IsEmpty() {
		c.logger.Warn("No catalog entry for ISBN", "isbn", isbn)
		c.metrics.CatalogResult(metrics.OutcomeMissing)

		return nil, false
	}

	c.metrics.CatalogResult(metrics.OutcomeOK)

	return &entry, true
}

func (c *Client) fetchDetail(ctx context.Context, isbn, key string) *models.RawDetailEntry {
	if key == "" {
		c.metrics.DetailResult(metrics.OutcomeMissing)

		return nil
	}

	if !strings.HasPrefix(key, "/") {
		key = "/" + key
	}

	var detail models.RawDetailEntry
	if err := c.scraper.GetJSON(ctx, c.baseURL+key+".json", &detail); err != nil {
		c.logger.Error("Failed to get extra data for ISBN", "isbn", isbn, "key", key, "error", err)
		c.metrics.DetailResult(metrics.OutcomeFailed)

		return nil
	}

	c.metrics.DetailResult(metrics.OutcomeOK)

	return &detail
}
