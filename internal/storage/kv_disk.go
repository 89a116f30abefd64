// ABOUTME: diskv-backed key-value store rooted at a base directory.
// ABOUTME: Each key is one file; writes go through a temp dir so they land atomically.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

const defaultCacheSize = 1024 * 1024 // 1MB

// DiskKV stores values as files under a base directory using diskv.
type DiskKV struct {
	d        *diskv.Diskv
	basePath string
}

// DiskOption configures a DiskKV.
type DiskOption func(*diskv.Options)

// WithCacheSize sets the in-memory read cache size in bytes. Zero disables caching.
func WithCacheSize(n uint64) DiskOption {
	return func(o *diskv.Options) {
		o.CacheSizeMax = n
	}
}

// NewDiskKV opens a disk store at basePath, creating the directory if needed.
func NewDiskKV(basePath string, opts ...DiskOption) (*DiskKV, error) {
	if basePath == "" {
		return nil, fmt.Errorf("base path is required")
	}
	tmpDir := filepath.Join(basePath, ".tmp")
	if err := os.MkdirAll(tmpDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	o := diskv.Options{
		BasePath:     basePath,
		TempDir:      tmpDir,
		Transform:    flatTransform,
		CacheSizeMax: defaultCacheSize,
		FilePerm:     0o600,
		PathPerm:     0o750,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &DiskKV{d: diskv.New(o), basePath: basePath}, nil
}

// Get reads the value under key.
func (s *DiskKV) Get(key string) ([]byte, bool, error) {
	if !s.d.Has(key) {
		return nil, false, nil
	}
	val, err := s.d.Read(key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return val, true, nil
}

// Set overwrites the value under key.
func (s *DiskKV) Set(key string, value []byte) error {
	if err := s.d.Write(key, value); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes key if present.
func (s *DiskKV) Delete(key string) error {
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil {
		return fmt.Errorf("failed to erase %s: %w", key, err)
	}
	return nil
}

// Path returns the file path backing key.
func (s *DiskKV) Path(key string) string {
	return filepath.Join(s.basePath, key)
}

// Close releases any resources held by the store.
func (s *DiskKV) Close() error {
	return nil
}

// flatTransform keeps every key directly under the base path.
func flatTransform(string) []string {
	return []string{}
}
