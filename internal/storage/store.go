package storage

import "context"

// SummaryStore persists module summaries between runs, keyed by the sha256 of
// the module source. A hash hit means the content is unchanged and the cached
// description can be reused without another API call.
type SummaryStore interface {
	// Get returns the cached description for a content hash, with ok=false
	// on a miss.
	Get(ctx context.Context, hash string) (description string, ok bool, err error)

	// Put stores or replaces the description for a content hash.
	Put(ctx context.Context, hash, module, model, description string) error

	Close() error
}
