// Package assets stores uploaded binary files (photos, contract scans) in a
// content-addressed directory tree. The returned reference is the hex MD5 of
// the content; the rest of the system treats it as an opaque string.
package assets

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store writes blobs under a root directory, sharded by reference prefix so
// no single directory grows unbounded: ab/cd/ef0123... for ref abcdef0123...
type Store struct {
	root string
}

// NewStore creates an asset store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Save streams content to disk and returns its reference. Saving the same
// content twice is idempotent: the second write is skipped and the same
// reference returned.
func (s *Store) Save(r io.Reader) (string, error) {
	tmp, err := os.CreateTemp(s.root, "upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	hasher := md5.New()
	if _, err := io.Copy(io.MultiWriter(tmp, hasher), r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close upload: %w", err)
	}

	ref := hex.EncodeToString(hasher.Sum(nil))
	path := s.Path(ref)
	if _, err := os.Stat(path); err == nil {
		return ref, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create asset directory: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to store asset %s: %w", ref, err)
	}
	return ref, nil
}

// Open returns a reader over the content behind ref.
func (s *Store) Open(ref string) (io.ReadCloser, error) {
	f, err := os.Open(s.Path(ref))
	if err != nil {
		return nil, fmt.Errorf("failed to open asset %s: %w", ref, err)
	}
	return f, nil
}

// Path maps a reference to its on-disk location.
func (s *Store) Path(ref string) string {
	if len(ref) < 4 {
		return filepath.Join(s.root, ref)
	}
	return filepath.Join(s.root, ref[:2], ref[2:4], ref[4:])
}
