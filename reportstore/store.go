package reportstore

import (
	"context"
	"os"
)

// ErrNotFound is returned when a report does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ReportStore is an abstraction for persisting immutable report documents.
type ReportStore interface {
	// Put writes a report atomically under the given name.
	Put(ctx context.Context, name string, data []byte) error

	// Get reads a report back. Returns ErrNotFound when absent.
	Get(ctx context.Context, name string) ([]byte, error)
}
