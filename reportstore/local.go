package reportstore

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// LocalStore implements ReportStore on the local file system. Writes go to a
// temp file in the same directory followed by a rename, so readers never see
// a partial report.
type LocalStore struct {
	root     string
	compress bool
}

// LocalOption configures a LocalStore.
type LocalOption func(*LocalStore)

// WithCompression gzip-compresses report bytes on disk. Reports read back via
// Get are transparently decompressed.
func WithCompression() LocalOption {
	return func(s *LocalStore) {
		s.compress = true
	}
}

// NewLocalStore creates a LocalStore rooted at the given directory.
func NewLocalStore(root string, optFns ...LocalOption) *LocalStore {
	s := &LocalStore{root: root}
	for _, fn := range optFns {
		fn(s)
	}
	return s
}

// Put writes a report atomically.
func (s *LocalStore) Put(_ context.Context, name string, data []byte) error {
	path := filepath.Join(s.root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	if s.compress {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return fmt.Errorf("compress report %s: %w", name, err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("compress report %s: %w", name, err)
		}
		data = buf.Bytes()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".report-*")
	if err != nil {
		return fmt.Errorf("create temp report: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write report %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write report %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("publish report %s: %w", name, err)
	}
	return nil
}

// Get reads a report back, decompressing when the store compresses.
func (s *LocalStore) Get(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !s.compress {
		return data, nil
	}

	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decompress report %s: %w", name, err)
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
