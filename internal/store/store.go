package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/tazman887/rork-organizator-nunta/internal/domain"
)

// ErrNotConfigured is returned by write operations when the remote store
// has no connection parameters. Reads short-circuit to "no data" instead.
var ErrNotConfigured = errors.New("remote store is not configured")

// RemoteError wraps a non-success response from the key-value service.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("kv service returned status %d: %s", e.StatusCode, e.Body)
}

// DocumentStore reads and writes the single planning snapshot. Fetch
// returns (nil, nil) when no snapshot exists yet.
type DocumentStore interface {
	Fetch(ctx context.Context) (*domain.Document, error)
	Put(ctx context.Context, doc *domain.Document) error
}
