package usecase

import "github.com/cockroachdb/errors"

var (
	// ErrFatalFetch marks a failure of the primary schedule fetch. The
	// run aborts and no snapshot is written.
	ErrFatalFetch = errors.New("fatal fetch failure")

	// ErrDegradedFetch marks a failure of an auxiliary fetch (video
	// feed, per-match events). The run continues with an empty
	// substitute and weaker enrichment.
	ErrDegradedFetch = errors.New("degraded fetch failure")
)
