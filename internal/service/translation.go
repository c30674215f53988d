package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/UnknownOlympus/atlas-indoor/internal/document"
	"github.com/UnknownOlympus/atlas-indoor/internal/geometry"
	"github.com/UnknownOlympus/atlas-indoor/internal/metrics"
	"github.com/UnknownOlympus/atlas-indoor/internal/models"
)

// Summary reports how many entries a run saw, translated and rejected.
type Summary struct {
	Total      int // Entries read from the input document.
	Translated int // Entries written to the output document.
	Failed     int // Entries that were malformed or skipped due to cancellation.
}

// TranslationService moves every linear object of a document by a fixed vector.
type TranslationService struct {
	log        *slog.Logger       // Logger for logging service activities
	repo       document.Interface // Source and destination of serialized linear objects
	metrics    *metrics.Metrics   // Metrics for tracking service performance
	numWorkers int                // Number of concurrent workers for processing
	dX         float64            // Translation on the X axis
	dY         float64            // Translation on the Y axis
}

// job is a single document entry together with its position in the document.
type job struct {
	idx   int
	entry map[string]any
}

// NewTranslationService creates a new instance of TranslationService.
// A non-positive numWorkers is treated as one worker.
func NewTranslationService(
	log *slog.Logger,
	repo document.Interface,
	metrics *metrics.Metrics,
	numWorkers int,
	dX, dY float64,
) *TranslationService {
	if numWorkers < 1 {
		numWorkers = 1
	}

	return &TranslationService{
		log:        log,
		repo:       repo,
		metrics:    metrics,
		numWorkers: numWorkers,
		dX:         dX,
		dY:         dY,
	}
}

// Run fetches the input document, translates every entry with a pool of workers and stores
// the translated entries in their original order. Malformed entries are logged, counted
// and left out of the output; they do not fail the run.
//
// Returns an error if the document cannot be fetched or stored, or ctx is cancelled
// before every entry was handled. Nothing is stored in the latter case.
func (ts *TranslationService) Run(ctx context.Context) (Summary, error) {
	entries, err := ts.repo.FetchLinearObjects(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to fetch linear objects: %w", err)
	}

	summary := Summary{Total: len(entries)}
	translated := make([]map[string]any, len(entries))
	failures := make([]error, len(entries))

	if len(entries) == 0 {
		ts.log.InfoContext(ctx, "No linear objects to process.")
	} else {
		ts.log.InfoContext(ctx, "Found linear objects to process. Starting worker pool.",
			"jobs", len(entries),
			"num_workers", ts.numWorkers,
			"dx", ts.dX,
			"dy", ts.dY,
		)

		jobs := make(chan job, len(entries))
		var wgr sync.WaitGroup

		for i := 1; i <= ts.numWorkers; i++ {
			wgr.Add(1)
			go ts.worker(ctx, i, &wgr, jobs, translated, failures)
		}

		for idx, entry := range entries {
			jobs <- job{idx: idx, entry: entry}
		}
		close(jobs)

		wgr.Wait()
	}

	output := make([]map[string]any, 0, len(entries))
	for idx := range entries {
		if failures[idx] != nil {
			summary.Failed++
			continue
		}
		output = append(output, translated[idx])
	}
	summary.Translated = len(output)

	if err = ctx.Err(); err != nil {
		ts.log.WarnContext(ctx, "Translation interrupted, output not stored.",
			"translated", summary.Translated, "failed", summary.Failed)
		return summary, err
	}

	if err = ts.repo.StoreLinearObjects(ctx, output); err != nil {
		return summary, fmt.Errorf("failed to store linear objects: %w", err)
	}

	ts.log.InfoContext(ctx, "Processing batch finished",
		"total", summary.Total, "translated", summary.Translated, "failed", summary.Failed)

	return summary, nil
}

// worker translates entries from the jobs channel, writing each outcome to the slot of
// translated or failures that matches the entry's index.
// Once ctx is cancelled the remaining entries are marked failed without being decoded.
func (ts *TranslationService) worker(
	ctx context.Context,
	idx int,
	wg *sync.WaitGroup,
	jobs <-chan job,
	translated []map[string]any,
	failures []error,
) {
	defer wg.Done()
	for jb := range jobs {
		if err := ctx.Err(); err != nil {
			failures[jb.idx] = err
			ts.metrics.ObjectsProcessed.WithLabelValues(metrics.StatusFailure).Inc()
			continue
		}

		ts.metrics.ActiveWorkers.Inc()
		ts.log.DebugContext(ctx, "Processing linear object", "worker", idx, "entry", jb.idx)

		startTime := time.Now()
		out, err := ts.translate(jb.entry)
		ts.metrics.TranslateSeconds.Observe(time.Since(startTime).Seconds())

		if err != nil {
			ts.log.ErrorContext(ctx, "Failed to translate linear object", "worker", idx, "entry", jb.idx, "error", err)
			ts.metrics.ObjectsProcessed.WithLabelValues(metrics.StatusFailure).Inc()
			ts.metrics.DecodeErrors.WithLabelValues(decodeErrorReason(err)).Inc()
			failures[jb.idx] = err
		} else {
			ts.metrics.ObjectsProcessed.WithLabelValues(metrics.StatusSuccess).Inc()
			translated[jb.idx] = out
		}

		ts.metrics.ActiveWorkers.Dec()
	}
}

// translate decodes a single entry, moves it and encodes it back.
// An entry whose coordinates overflow when moved is rejected, since it could not be written.
func (ts *TranslationService) translate(entry map[string]any) (map[string]any, error) {
	obj, err := models.LinearObjectFromDictionary(entry)
	if err != nil {
		return nil, err
	}

	moved := obj.TranslatedBy(ts.dX, ts.dY)
	if err = moved.LinePosition().Validate(); err != nil {
		return nil, fmt.Errorf("failed to translate %s by (%v, %v): %w", obj, ts.dX, ts.dY, err)
	}

	return moved.ToDictionary(), nil
}

func decodeErrorReason(err error) string {
	switch {
	case errors.Is(err, models.ErrMalformedInput):
		return "malformed"
	case errors.Is(err, geometry.ErrInvalidSegment):
		return "out_of_range"
	default:
		return "unknown"
	}
}
