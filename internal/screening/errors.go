package screening

import "errors"

// Validation failures are client-recoverable: fix the input and retry.
// ErrPersistence and anything unclassified are surfaced as opaque server
// failures after partial state has been cleaned up.
var (
	// ErrMissingInput indicates the input document does not exist for the key.
	ErrMissingInput = errors.New("input document missing")

	// ErrMissingWatchlist indicates the watchlist document is absent.
	ErrMissingWatchlist = errors.New("watchlist document missing")

	// ErrInvalidSchema indicates the input document lacks a usable fullName
	// field.
	ErrInvalidSchema = errors.New("fullName field is required")

	// ErrNoComparisons indicates the cross-product of input names and
	// watchlist entries is empty. Distinct from a NO_MATCH result, which is a
	// valid outcome.
	ErrNoComparisons = errors.New("no valid names to compare")

	// ErrPersistence indicates the durable write could not complete. Partial
	// output has already been rolled back when this surfaces.
	ErrPersistence = errors.New("result persistence failed")
)

// IsValidation reports whether err is a client-caused validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingInput) ||
		errors.Is(err, ErrMissingWatchlist) ||
		errors.Is(err, ErrInvalidSchema) ||
		errors.Is(err, ErrNoComparisons)
}
