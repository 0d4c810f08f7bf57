package woods

import "errors"

// Error taxonomy. Every error returned by the estimators' Fit and
// Predict wraps one of these sentinels via github.com/pkg/errors, so
// callers can test with errors.Is while still getting a human-readable
// cause. DrawGraph's errors come from graphviz and wrap none of them.
var (
	// ErrShape reports a rank or length mismatch on input.
	ErrShape = errors.New("shape mismatch")
	// ErrEmptyInput reports n_samples == 0 or n_features == 0.
	ErrEmptyInput = errors.New("empty input")
	// ErrParameter reports a non-positive depth/iterations or a
	// non-positive learning rate.
	ErrParameter = errors.New("invalid parameter")
	// ErrNotFitted reports Predict called before Fit.
	ErrNotFitted = errors.New("estimator has not been fitted")
)
