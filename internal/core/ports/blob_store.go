package ports

import (
	"context"
	"io"
)

// BlobStore accepts an uploaded file and returns the URL it will be served
// from.
type BlobStore interface {
	Store(ctx context.Context, filename string, r io.Reader) (string, error)
}
