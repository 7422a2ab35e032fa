package knowledge

import (
	"context"
)

// Summarizer defines the interface for generating module descriptions.
type Summarizer interface {
	// Summarize returns a short natural-language description of the module
	// whose head is given in snippet.
	Summarize(ctx context.Context, modulePath, snippet string) (string, error)
	// Name identifies the provider, for logging and cache bookkeeping.
	Name() string
}

// SummaryCache is the lookaside store the annotator consults before calling
// the summarizer. Implementations key entries by content hash, so unchanged
// modules are never re-summarized.
type SummaryCache interface {
	Get(ctx context.Context, hash string) (string, bool, error)
	Put(ctx context.Context, hash, module, model, description string) error
}
