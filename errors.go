package align

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrMalformedCorpus indicates the corpus markup could not be parsed, or
	// a sentence record is missing its source or target text.
	ErrMalformedCorpus = errors.New("align: malformed corpus")

	// ErrMalformedAlignment indicates an alignment token that does not split
	// into exactly two integer positions.
	ErrMalformedAlignment = errors.New("align: malformed alignment token")

	// ErrUndefinedMetric indicates a metric was requested over empty
	// predicted and sure sets, for which no value is defined.
	ErrUndefinedMetric = errors.New("align: metric undefined for empty input")
)
