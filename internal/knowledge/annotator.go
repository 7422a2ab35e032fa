package knowledge

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"importlens/internal/graph"
)

// PlaceholderDescription is stored on a node when its summarization call
// fails. A single failed call never aborts the batch.
const PlaceholderDescription = "description unavailable"

// DefaultAnnotationTimeout bounds one summarization call.
const DefaultAnnotationTimeout = 30 * time.Second

// Annotator fills in module descriptions by sending each node's snippet to
// the summarizer, with an optional content-hash cache in front of it.
type Annotator struct {
	summarizer Summarizer
	cache      SummaryCache
	workers    int
	timeout    time.Duration
}

// NewAnnotator creates an annotator. cache may be nil to disable caching;
// workers <= 1 means sequential; timeout <= 0 falls back to the default.
func NewAnnotator(summarizer Summarizer, cache SummaryCache, workers int, timeout time.Duration) *Annotator {
	if workers < 1 {
		workers = 1
	}
	if timeout <= 0 {
		timeout = DefaultAnnotationTimeout
	}
	return &Annotator{
		summarizer: summarizer,
		cache:      cache,
		workers:    workers,
		timeout:    timeout,
	}
}

// Annotate describes every module in the graph. Each worker writes only its
// own node, so descriptions are identical whatever the worker count. Failures
// downgrade to the placeholder description and come back as warnings.
func (a *Annotator) Annotate(ctx context.Context, g *graph.Graph) []string {
	var (
		mu       sync.Mutex
		warnings []string
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(a.workers)

	for _, m := range g.Modules() {
		eg.Go(func() error {
			warning := a.annotateModule(ctx, m)
			if warning != "" {
				mu.Lock()
				warnings = append(warnings, warning)
				mu.Unlock()
			}
			// per-node failures never cancel the batch
			return nil
		})
	}
	_ = eg.Wait()

	return warnings
}

func (a *Annotator) annotateModule(ctx context.Context, m *graph.Module) (warning string) {
	if a.cache != nil {
		if description, ok, err := a.cache.Get(ctx, m.Hash); err != nil {
			slog.Warn("summary cache read failed", "module", m.Path, "error", err)
		} else if ok {
			m.Description = description
			return ""
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	description, err := a.summarizer.Summarize(callCtx, m.Path, m.Snippet)
	if err != nil {
		m.Description = PlaceholderDescription
		slog.Warn("annotation failed", "module", m.Path, "error", err)
		return fmt.Sprintf("annotation failed for %s: %v", m.Path, err)
	}
	m.Description = description

	if a.cache != nil {
		if err := a.cache.Put(ctx, m.Hash, m.Path, a.summarizer.Name(), description); err != nil {
			slog.Warn("summary cache write failed", "module", m.Path, "error", err)
		}
	}
	return ""
}
