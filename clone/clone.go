// Package clone defines the uniform deep-copy / polymorphic-load contract
// (spec component C2, "CloneableObject") shared by every adaptor and
// carrier type, plus a reflection-based deep-copy helper for opaque
// auxiliary data such as an Individual's trait bag.
package clone

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
)

// Cloneable is implemented by every domain object that participates in the
// population layer's clone/load protocol. T is the object's own concrete
// type: CloneSame returns a deep copy whose runtime type equals the
// receiver's, mirroring the source's clone_of_same_runtime_type().
type Cloneable[T any] interface {
	// CloneSame returns a deep copy of the receiver.
	CloneSame() T

	// LoadFrom replaces the receiver's state with a deep copy of other.
	// Implementations must fail with evoerr.ErrSelfAssignment if other
	// aliases the receiver. Adaptors and carriers instantiate T with
	// their interface type (adaptor.Adaptor[V], carrier.Carrier), so
	// LoadFrom fails with evoerr.ErrTypeMismatch when other's concrete
	// type differs from the receiver's.
	LoadFrom(other T) error

	// Equal reports structural equality, including parent-contributed
	// fields and the full adaptor list.
	Equal(other T) bool

	// Similar is like Equal but tolerates per-element floating point
	// differences up to eps.
	Similar(other T, eps float64) bool
}

// DeepCopy deep-copies src into dst, both of which must be pointers. It
// backs Individual.personality_traits, where hand-writing a deep copy
// would otherwise need to
// special-case every possible trait value type the surrounding algorithm
// might stash there.
func DeepCopy(dst, src any) error {
	if err := deepcopy.Copy(dst, src); err != nil {
		return fmt.Errorf("clone: deep copy failed: %w", err)
	}
	return nil
}

// DeepCopyMap is a typed convenience wrapper around DeepCopy for the common
// case of an opaque string-keyed trait bag.
func DeepCopyMap[V any](src map[string]V) (map[string]V, error) {
	if src == nil {
		return nil, nil
	}
	dst := make(map[string]V, len(src))
	if err := DeepCopy(&dst, &src); err != nil {
		return nil, err
	}
	return dst, nil
}
