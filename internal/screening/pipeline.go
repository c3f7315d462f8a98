// Package screening orchestrates the matching pipeline: it reads the input
// document, scores every input name against every watchlist entry, ranks the
// comparisons, and commits the result idempotently under the request key.
package screening

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"runtime"
	"sort"
	"time"

	"watchlist-screening/internal/logger"
	"watchlist-screening/internal/matching"
	"watchlist-screening/internal/store"
	"watchlist-screening/internal/watchlist"

	"github.com/go-playground/validator/v10"
)

// Outcome is the caller-facing result of a screening run.
type Outcome struct {
	// OutputPath is where the committed result documents live.
	OutputPath string

	// Result is the detailed result, freshly computed or read back from a
	// prior run.
	Result *store.DetailedResult

	// Cached is true when the run was satisfied by the idempotency fast path
	// without recomputation.
	Cached bool
}

// Service runs the screening pipeline. Scoring is pure and lock free; the
// only shared mutable state is the result store, guarded by per-key locks.
type Service struct {
	store     *store.Store
	watchlist *watchlist.Loader
	cfg       matching.Config
	validate  *validator.Validate
	locks     *keyLocks

	// sem bounds concurrent comparison passes. The scan is CPU bound and a
	// large watchlist must not starve unrelated requests.
	sem chan struct{}
}

// NewService creates a screening service. maxConcurrent bounds simultaneous
// comparison passes; zero or negative falls back to the CPU count.
func NewService(st *store.Store, wl *watchlist.Loader, cfg matching.Config, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = runtime.NumCPU()
	}
	return &Service{
		store:     st,
		watchlist: wl,
		cfg:       cfg,
		validate:  validator.New(),
		locks:     newKeyLocks(),
		sem:       make(chan struct{}, maxConcurrent),
	}
}

// scoredComparison pairs the reporting view of a comparison with the
// full-precision score used for ranking.
type scoredComparison struct {
	cmp store.Comparison
	raw float64
}

// Screen runs the pipeline for one request key. A key that already has a
// committed result returns it unchanged with no recomputation and no input
// re-validation. Any failure leaves no partial durable state for the key.
func (s *Service) Screen(ctx context.Context, key store.Key) (*Outcome, error) {
	release := s.locks.Acquire(key.String())
	defer release()

	if s.store.Exists(key) {
		logger.Info().
			Str("user_id", key.UserID).
			Str("request_id", key.RequestID).
			Msg("result already committed, skipping processing")
		result, err := s.store.Load(key)
		if err != nil {
			return nil, fmt.Errorf("read committed result: %w", err)
		}
		return &Outcome{OutputPath: s.store.OutputPath(key), Result: result, Cached: true}, nil
	}

	doc, err := s.readInput(key)
	if err != nil {
		return nil, err
	}

	entries, err := s.watchlist.Snapshot()
	if err != nil {
		if errors.Is(err, watchlist.ErrMissing) {
			return nil, fmt.Errorf("%w: %v", ErrMissingWatchlist, err)
		}
		return nil, err
	}

	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-s.sem }()

	logger.Info().
		Str("user_id", key.UserID).
		Str("request_id", key.RequestID).
		Int("input_names", len(doc.FullName)).
		Int("watchlist_entries", len(entries)).
		Msg("processing started")

	scored, normalizedInputs, err := s.compare(ctx, doc.FullName, entries)
	if err != nil {
		return nil, err
	}

	// Stable sort keeps enumeration order (input-name major, watchlist-entry
	// minor) as the tie-break between equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].raw > scored[j].raw
	})

	top := scored[:min(3, len(scored))]
	topMatches := make([]store.Comparison, len(top))
	for i, sc := range top {
		topMatches[i] = sc.cmp
	}
	best := topMatches[0]

	detailed := &store.DetailedResult{
		RequestID:            key.RequestID,
		UserID:               key.UserID,
		RawInputNames:        doc.FullName,
		NormalizedInputNames: normalizedInputs,
		Top3Matches:          topMatches,
		BestMatch:            best,
		BestMatchType:        best.MatchType,
	}
	consolidated := &store.ConsolidatedResult{
		RequestID:          key.RequestID,
		UserID:             key.UserID,
		FinalResult:        best.MatchType,
		MatchedWatchlistID: best.WatchlistID,
		Score:              best.Score,
		Timestamp:          time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.store.Save(key, detailed, consolidated); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	logger.Info().
		Str("user_id", key.UserID).
		Str("request_id", key.RequestID).
		Str("best_match_type", best.MatchType.String()).
		Float64("best_score", best.Score).
		Msg("processing completed successfully")

	return &Outcome{OutputPath: s.store.OutputPath(key), Result: detailed, Cached: false}, nil
}

// readInput loads and validates the input document for the key.
func (s *Service) readInput(key store.Key) (*InputDocument, error) {
	data, err := os.ReadFile(s.store.InputPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, s.store.InputPath(key))
		}
		return nil, fmt.Errorf("read input document: %w", err)
	}

	var doc InputDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		if errors.Is(err, ErrInvalidSchema) {
			return nil, err
		}
		return nil, fmt.Errorf("parse input document: %w", err)
	}

	if err := s.validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	return &doc, nil
}

// compare scores the full cross-product of input names and watchlist
// entries. Each input name is normalized once; watchlist names come
// pre-normalized from the loader's snapshot.
func (s *Service) compare(ctx context.Context, names NameList, entries []watchlist.Entry) ([]scoredComparison, []string, error) {
	if len(names) == 0 || len(entries) == 0 {
		return nil, nil, fmt.Errorf("%w: %d input names x %d watchlist entries", ErrNoComparisons, len(names), len(entries))
	}

	scored := make([]scoredComparison, 0, len(names)*len(entries))
	normalizedInputs := make([]string, len(names))

	for i, name := range names {
		// No side effect is visible until the final commit, so aborting
		// between comparisons is always safe.
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		normalized := matching.Normalize(name)
		normalizedInputs[i] = normalized

		for _, entry := range entries {
			score := s.cfg.Composite(normalized, entry.Normalized)
			scored = append(scored, scoredComparison{
				raw: score,
				cmp: store.Comparison{
					InputName:     name,
					WatchlistID:   entry.ID,
					WatchlistName: entry.Name,
					Score:         round4(score),
					MatchType:     s.cfg.Classify(score),
				},
			})
		}
	}

	return scored, normalizedInputs, nil
}

// round4 rounds a score to four decimal places for reporting.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
