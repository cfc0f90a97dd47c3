// Package evoerr defines the error taxonomy shared by every component of
// evo-core. Callers should compare with errors.Is against the sentinels
// below rather than matching on message text.
package evoerr

import "errors"

var (
	// ErrInvalidConfiguration is returned when a setter receives a value
	// outside its documented contract (probability not in [0,1], sigma
	// bounds inverted, bounded-scalar bounds reversed, and similar).
	ErrInvalidConfiguration = errors.New("evo-core: invalid configuration")

	// ErrTypeMismatch is returned by polymorphic load/accessor operations
	// when the supplied or decoded object is not of the expected runtime
	// kind.
	ErrTypeMismatch = errors.New("evo-core: type mismatch")

	// ErrSelfAssignment is returned by LoadFrom when the argument aliases
	// the receiver.
	ErrSelfAssignment = errors.New("evo-core: self assignment")

	// ErrDuplicateAdaptor is returned when a carrier already owns an
	// adaptor registered under the given name.
	ErrDuplicateAdaptor = errors.New("evo-core: duplicate adaptor name")

	// ErrBoundsViolation is returned when a value is assigned outside a
	// bounded scalar's range, or resetting bounds would exclude the
	// current external value.
	ErrBoundsViolation = errors.New("evo-core: bounds violation")

	// ErrEvaluationForbidden is returned by Individual.Fitness when
	// evaluation permission is Prevent.
	ErrEvaluationForbidden = errors.New("evo-core: evaluation forbidden")

	// ErrStaleFitness is returned by Individual.Fitness when the cache is
	// dirty, lazy evaluation is disallowed, and the individual is past
	// its zeroth iteration.
	ErrStaleFitness = errors.New("evo-core: stale fitness")

	// ErrSerialization is returned by codec failures: malformed input,
	// unknown type tag, or truncated binary payload.
	ErrSerialization = errors.New("evo-core: serialization error")

	// ErrUserFitness wraps an error returned by, or a panic recovered
	// from, a user-supplied fitness function.
	ErrUserFitness = errors.New("evo-core: user fitness function failed")
)
