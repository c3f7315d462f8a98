// Package store persists screening results on disk, keyed by user and
// request. Results are committed atomically (temp directory + rename) so the
// idempotency probe only ever observes absent or complete results, and a
// failed write leaves no partial state behind.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"watchlist-screening/internal/matching"
)

const (
	detailedFile     = "detailed.json"
	consolidatedFile = "consolidated.json"
)

// Key identifies a screening run for idempotent persistence.
type Key struct {
	UserID    string
	RequestID string
}

func (k Key) String() string {
	return k.UserID + "/" + k.RequestID
}

// Comparison is the scored outcome of one (input name, watchlist entry) pair.
// Score is rounded to four decimal places for reporting; ranking upstream
// uses full precision.
type Comparison struct {
	InputName     string             `json:"inputName"`
	WatchlistID   int64              `json:"watchlistId"`
	WatchlistName string             `json:"watchlistName"`
	Score         float64            `json:"score"`
	MatchType     matching.MatchType `json:"matchType"`
}

// DetailedResult is the full persisted outcome of a screening run.
// It is written once and never mutated.
type DetailedResult struct {
	RequestID            string             `json:"requestId"`
	UserID               string             `json:"userId"`
	RawInputNames        []string           `json:"rawInputNames"`
	NormalizedInputNames []string           `json:"normalizedInputNames"`
	Top3Matches          []Comparison       `json:"top3Matches"`
	BestMatch            Comparison         `json:"bestMatch"`
	BestMatchType        matching.MatchType `json:"bestMatchType"`
}

// ConsolidatedResult is the summary document written alongside the detailed
// result for downstream consumers.
type ConsolidatedResult struct {
	RequestID          string             `json:"requestId"`
	UserID             string             `json:"userId"`
	FinalResult        matching.MatchType `json:"finalResult"`
	MatchedWatchlistID int64              `json:"matchedWatchlistId"`
	Score              float64            `json:"score"`
	Timestamp          string             `json:"timestamp"`
}

// Store locates input documents and persists result documents under
// per-user, per-request directories.
type Store struct {
	dataRoot   string
	outputRoot string
}

// New creates a store reading input documents under dataRoot and committing
// results under outputRoot.
func New(dataRoot, outputRoot string) *Store {
	return &Store{dataRoot: dataRoot, outputRoot: outputRoot}
}

// InputPath returns the location of the input document for a key.
func (s *Store) InputPath(key Key) string {
	return filepath.Join(s.dataRoot, key.UserID, key.RequestID, "input", "input.json")
}

// OutputPath returns the directory a committed result lives in.
func (s *Store) OutputPath(key Key) string {
	return filepath.Join(s.outputRoot, key.UserID, key.RequestID)
}

// Exists reports whether a complete result has been committed for the key.
func (s *Store) Exists(key Key) bool {
	_, err := os.Stat(filepath.Join(s.OutputPath(key), detailedFile))
	return err == nil
}

// Load reads a previously committed detailed result.
func (s *Store) Load(key Key) (*DetailedResult, error) {
	data, err := os.ReadFile(filepath.Join(s.OutputPath(key), detailedFile))
	if err != nil {
		return nil, fmt.Errorf("load result %s: %w", key, err)
	}
	var result DetailedResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("parse result %s: %w", key, err)
	}
	return &result, nil
}

// Save commits both result documents for a key atomically. The documents are
// written into a temporary sibling directory which is renamed into place only
// once both writes succeeded; any failure removes the temporary directory so
// a retry starts from a clean slate. Saving a key that is already committed
// is a no-op.
func (s *Store) Save(key Key, detailed *DetailedResult, consolidated *ConsolidatedResult) error {
	if s.Exists(key) {
		return nil
	}

	parent := filepath.Join(s.outputRoot, key.UserID)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("create output directory for %s: %w", key, err)
	}

	tmpDir, err := os.MkdirTemp(parent, "."+key.RequestID+".tmp-")
	if err != nil {
		return fmt.Errorf("create staging directory for %s: %w", key, err)
	}

	if err := writeDocument(filepath.Join(tmpDir, detailedFile), detailed); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("write detailed result for %s: %w", key, err)
	}
	if err := writeDocument(filepath.Join(tmpDir, consolidatedFile), consolidated); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("write consolidated result for %s: %w", key, err)
	}

	if err := os.Rename(tmpDir, s.OutputPath(key)); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("commit result for %s: %w", key, err)
	}

	return nil
}

func writeDocument(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
