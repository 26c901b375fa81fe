package storage

import (
	"context"
	"io"
)

// Store defines the interface for the file backend the site is exported to.
type Store interface {
	Save(ctx context.Context, path string, reader io.Reader) (int64, error)
}
