// Package storage provides the blob store implementation backing image
// uploads: files land on local disk and are served statically by the router.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DiskStore writes uploaded files into a directory and returns the URL they
// are served from. Filenames are prefixed with the upload timestamp so
// repeated uploads of the same file never collide.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) *DiskStore {
	return &DiskStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *DiskStore) Store(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	// filepath.Base strips any path components a hostile client sends.
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return s.baseURL + "/" + name, nil
}
