package carrier

import (
	"fmt"

	"github.com/Connerlevi/evo-core/adaptor"
	"github.com/Connerlevi/evo-core/internal/evoerr"
	"github.com/Connerlevi/evo-core/internal/foldmath"
)

// BoundedScalar is a double whose external value is a folded projection of
// an internally unconstrained value into [lower, upper] (spec §3 carrier
// variant 5, §4.5). Mutation operates on internalValue; ExternalValue
// applies the fold.
type BoundedScalar struct {
	internalValue float64
	lower, upper  float64
	adaptors      adaptorSet[float64]
}

// NewBoundedScalar constructs a BoundedScalar with internal value equal to
// external, which must already lie in [lower, upper] (the fundamental
// domain, where the fold is the identity).
func NewBoundedScalar(external, lower, upper float64) (*BoundedScalar, error) {
	if lower >= upper {
		return nil, fmt.Errorf("carrier: bounded scalar bounds [%g,%g]: %w", lower, upper, evoerr.ErrInvalidConfiguration)
	}
	if external < lower || external > upper {
		return nil, fmt.Errorf("carrier: bounded scalar initial value %g outside [%g,%g]: %w", external, lower, upper, evoerr.ErrBoundsViolation)
	}
	return &BoundedScalar{internalValue: external, lower: lower, upper: upper}, nil
}

func (bs *BoundedScalar) Kind() Kind { return KindBoundedScalar }

func (bs *BoundedScalar) Len() int { return 1 }

func (bs *BoundedScalar) Lower() float64 { return bs.lower }

func (bs *BoundedScalar) Upper() float64 { return bs.upper }

func (bs *BoundedScalar) InternalValue() float64 { return bs.internalValue }

// ExternalValue is the triangular-wave fold of internalValue into
// [lower, upper] (spec §4.5).
func (bs *BoundedScalar) ExternalValue() float64 {
	return foldmath.Fold(bs.internalValue, bs.lower, bs.upper)
}

// SetExternalValue assigns a value in [lower, upper] directly, becoming the
// new internal value verbatim (it is already its own fixed point under the
// fold).
func (bs *BoundedScalar) SetExternalValue(v float64) error {
	if v < bs.lower || v > bs.upper {
		return fmt.Errorf("carrier: value %g outside [%g,%g]: %w", v, bs.lower, bs.upper, evoerr.ErrBoundsViolation)
	}
	bs.internalValue = v
	return nil
}

// SetBounds changes [lower, upper]. Per §4.5, if the current external value
// still lies inside the new bounds, the internal value is reset to equal
// the new external value so later mutations start from a canonical
// representative; otherwise the change is refused.
func (bs *BoundedScalar) SetBounds(lower, upper float64) error {
	if lower >= upper {
		return fmt.Errorf("carrier: bounded scalar bounds [%g,%g]: %w", lower, upper, evoerr.ErrInvalidConfiguration)
	}
	current := bs.ExternalValue()
	if current < lower || current > upper {
		return fmt.Errorf("carrier: current value %g excluded by new bounds [%g,%g]: %w", current, lower, upper, evoerr.ErrBoundsViolation)
	}
	bs.lower, bs.upper = lower, upper
	bs.internalValue = current
	return nil
}

func (bs *BoundedScalar) AddAdaptor(name string, a adaptor.Adaptor[float64]) error {
	return bs.adaptors.add(name, a)
}

func (bs *BoundedScalar) Mutate() error {
	return bs.adaptors.mutate(&bs.internalValue)
}

func (bs *BoundedScalar) AttachSource(s Source) { bs.adaptors.attachSource(s) }

func (bs *BoundedScalar) CloneSame() Carrier {
	return &BoundedScalar{internalValue: bs.internalValue, lower: bs.lower, upper: bs.upper, adaptors: bs.adaptors.clone()}
}

func (bs *BoundedScalar) LoadFrom(other Carrier) error {
	o, ok := other.(*BoundedScalar)
	if !ok {
		return fmt.Errorf("carrier: load BoundedScalar from %T: %w", other, evoerr.ErrTypeMismatch)
	}
	if o == bs {
		return evoerr.ErrSelfAssignment
	}
	bs.internalValue, bs.lower, bs.upper = o.internalValue, o.lower, o.upper
	return bs.adaptors.loadFrom(&o.adaptors)
}

func (bs *BoundedScalar) Equal(other Carrier) bool {
	o, ok := other.(*BoundedScalar)
	return ok && bs.internalValue == o.internalValue && bs.lower == o.lower && bs.upper == o.upper && bs.adaptors.equal(&o.adaptors)
}

func (bs *BoundedScalar) Similar(other Carrier, eps float64) bool {
	o, ok := other.(*BoundedScalar)
	if !ok {
		return false
	}
	diff := bs.ExternalValue() - o.ExternalValue()
	if diff < 0 {
		diff = -diff
	}
	return diff <= eps && bs.adaptors.similar(&o.adaptors, eps)
}
