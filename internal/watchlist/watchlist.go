// Package watchlist loads the reference watchlist document and caches its
// entries together with their normalized names so a screening run never
// re-normalizes the shared list.
package watchlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"watchlist-screening/internal/matching"
)

// ErrMissing indicates the watchlist document does not exist at the
// configured path.
var ErrMissing = errors.New("watchlist document missing")

// Entry is a single watchlist record. Normalized is derived at load time and
// shared read-only across runs.
type Entry struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Normalized string `json:"-"`
}

// Loader reads the watchlist document and serves immutable snapshots of it.
type Loader struct {
	path string

	mu      sync.RWMutex
	entries []Entry
	loaded  bool
}

// NewLoader creates a loader for the watchlist document at path.
// The document is not read until Snapshot or Reload is called.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Snapshot returns the cached entries, loading the document on first use.
// The returned slice is shared and must be treated as read-only.
func (l *Loader) Snapshot() ([]Entry, error) {
	l.mu.RLock()
	if l.loaded {
		entries := l.entries
		l.mu.RUnlock()
		return entries, nil
	}
	l.mu.RUnlock()

	if err := l.Reload(); err != nil {
		return nil, err
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.entries, nil
}

// Reload reads the document from disk and replaces the cached snapshot.
// In-flight runs keep the snapshot they started with.
func (l *Loader) Reload() error {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrMissing, l.path)
		}
		return fmt.Errorf("read watchlist: %w", err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse watchlist: %w", err)
	}

	for i := range entries {
		entries[i].Normalized = matching.Normalize(entries[i].Name)
	}

	l.mu.Lock()
	l.entries = entries
	l.loaded = true
	l.mu.Unlock()

	return nil
}

// Available reports whether the watchlist document currently exists on disk.
func (l *Loader) Available() bool {
	_, err := os.Stat(l.path)
	return err == nil
}

// Size returns the number of cached entries, or 0 when nothing is loaded yet.
func (l *Loader) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
