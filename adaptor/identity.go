package adaptor

import (
	"fmt"

	"github.com/Connerlevi/evo-core/internal/evoerr"
)

// Identity never changes its value. It exists so callers that want a
// carrier slot with no mutation behavior (e.g. a frozen constant) can still
// satisfy Adaptor[T] uniformly, rather than special-casing a nil adaptor
// everywhere. Its probability and mode are pinned at construction and
// SetProbability/SetMode reject anything but the pinned values.
type Identity[T any] struct {
	Base[T]
}

func NewIdentity[T any]() *Identity[T] {
	b := newBase[T]()
	b.mode = Never
	return &Identity[T]{Base: b}
}

func (id *Identity[T]) Kind() Kind { return KindIdentity }

func (id *Identity[T]) State() State { return id.Base.State() }

// RestoreIdentity rebuilds an Identity from a previously captured State.
func RestoreIdentity[T any](st State) *Identity[T] {
	b := newBase[T]()
	b.restore(st)
	return &Identity[T]{Base: b}
}

func (id *Identity[T]) Mutate(v *T) error { return nil }

func (id *Identity[T]) MutateSequence(values []T) error { return nil }

func (id *Identity[T]) SetProbability(p float64) error {
	if p != 0 {
		return fmt.Errorf("adaptor: identity probability must be 0, got %g: %w", p, evoerr.ErrInvalidConfiguration)
	}
	return nil
}

func (id *Identity[T]) SetMode(m Mode) error {
	if m != Never {
		return fmt.Errorf("adaptor: identity mode must be Never, got %v: %w", m, evoerr.ErrInvalidConfiguration)
	}
	return nil
}

func (id *Identity[T]) CloneSame() Adaptor[T] {
	cp := *id
	return &cp
}

func (id *Identity[T]) LoadFrom(other Adaptor[T]) error {
	o, ok := other.(*Identity[T])
	if !ok {
		return fmt.Errorf("adaptor: load Identity from %T: %w", other, evoerr.ErrTypeMismatch)
	}
	if o == id {
		return evoerr.ErrSelfAssignment
	}
	return nil
}

func (id *Identity[T]) Equal(other Adaptor[T]) bool {
	_, ok := other.(*Identity[T])
	return ok
}

func (id *Identity[T]) Similar(other Adaptor[T], eps float64) bool {
	return id.Equal(other)
}
