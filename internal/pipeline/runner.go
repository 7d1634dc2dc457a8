// Package pipeline runs the fetch, normalize and report phases in order.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"bookstats/internal/analysis"
	"bookstats/internal/config"
	"bookstats/internal/crawler"
	"bookstats/internal/formatter"
	"bookstats/internal/logger"
	"bookstats/internal/metrics"
	"bookstats/internal/models"
	"bookstats/internal/normalizer"
	"bookstats/internal/report"
	"bookstats/internal/validator"
)

// Runner executes one report run.
type Runner struct {
	runID     string
	inputPath string
	validator *validator.ISBNValidator
	client    *crawler.Client
	processor *normalizer.Processor
	reporter  *report.Reporter
	metrics   *metrics.FetchMetrics
	logger    *logger.Logger
}

// NewRunner wires a run from configuration. The report goes to every sink.
func NewRunner(cfg *config.Config, log *logger.Logger, sinks ...io.Writer) (*Runner, error) {
	style, err := formatter.ParseStyle(cfg.Output.TableStyle)
	if err != nil {
		return nil, fmt.Errorf("invalid output config: %w", err)
	}

	runID := uuid.NewString()
	log = log.With("run_id", runID)
	m := metrics.NewFetchMetrics()

	return &Runner{
		runID:     runID,
		inputPath: cfg.Input.Path,
		validator: validator.NewISBNValidator(),
		client:    crawler.NewClient(cfg.OpenLibrary, log, m),
		processor: normalizer.NewProcessor(),
		reporter:  report.New(style, sinks...),
		metrics:   m,
		logger:    log,
	}, nil
}

// RunID identifies this run in diagnostic logs.
func (r *Runner) RunID() string {
	return r.runID
}

// Run reads the ISBN list, builds the book collection and writes the report.
// A missing input file is reported as crawler.ErrInputNotFound before any
// report block is written.
func (r *Runner) Run(ctx context.Context) error {
	start := time.Now()

	isbns, err := crawler.ReadISBNList(r.inputPath)
	if err != nil {
		r.logger.Error("Could not read ISBN list, exiting", "path", r.inputPath, "error", err)

		return err
	}

	r.checkInput(isbns)

	r.logger.Info("Phase 1: fetching catalog entries", "isbns", len(isbns))

	books, err := r.Collect(ctx, isbns)
	if err != nil {
		return err
	}

	r.logger.Info("Phase 2: answering questions", "books", len(books))

	if err := r.reporter.Report(analysis.Questions(), books); err != nil {
		return fmt.Errorf("report failed: %w", err)
	}

	summary, err := r.metrics.Summary()
	if err != nil {
		r.logger.Warn("Fetch summary unavailable", "error", err)
	} else {
		r.logger.Info("Run complete", "fetch", summary.String(), "books", len(books), "duration", time.Since(start))
	}

	return nil
}

// checkInput logs suspicious lines of the ISBN list. It never drops any.
func (r *Runner) checkInput(isbns []string) {
	result := r.validator.ValidateList(isbns)

	for _, issue := range result.Issues {
		r.logger.Warn("Suspicious ISBN in input", "line", issue.Line, "value", issue.Value, "reason", issue.Message)
	}

	r.logger.Info("Input checked", "stats", result.Stats.String())
}

// Collect fetches and normalizes every ISBN in input order. Identifiers the
// catalog has nothing for are left out of the collection.
func (r *Runner) Collect(ctx context.Context, isbns []string) ([]models.Book, error) {
	books := make([]models.Book, 0, len(isbns))

	for _, isbn := range isbns {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("run cancelled: %w", err)
		}

		entry, detail := r.client.FetchBook(ctx, isbn)
		if entry.IsEmpty() {
			continue
		}

		book, err := r.processor.Process(entry, detail)
		if err != nil {
			r.logger.Warn("Skipping ISBN", "isbn", isbn, "error", err)

			continue
		}

		r.logger.Debug("Normalized ISBN", "isbn", isbn, "title", book.Title)
		books = append(books, book)
	}

	return books, nil
}
