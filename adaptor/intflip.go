package adaptor

import (
	"fmt"
	"math"

	"github.com/Connerlevi/evo-core/internal/evoerr"
)

// IntFlip nudges an int32 value by +1 or -1 with equal likelihood whenever
// it fires. At math.MaxInt32 or math.MinInt32 a step that would overflow
// is taken in the opposite direction instead (spec §4.3).
type IntFlip struct {
	Base[int32]
}

func NewIntFlip(cfg Config) (*IntFlip, error) {
	f := &IntFlip{Base: newBase[int32]()}
	if err := f.SetProbability(cfg.Probability); err != nil {
		return nil, err
	}
	if err := f.SetMode(cfg.Mode); err != nil {
		return nil, err
	}
	f.SetAdaptionThreshold(cfg.AdaptionThreshold)
	return f, nil
}

func (f *IntFlip) Kind() Kind { return KindIntFlip }

func (f *IntFlip) State() State { return f.Base.State() }

// RestoreIntFlip rebuilds an IntFlip from a previously captured State.
func RestoreIntFlip(st State) *IntFlip {
	f := &IntFlip{Base: newBase[int32]()}
	f.Base.restore(st)
	return f
}

func (f *IntFlip) Mutate(v *int32) error {
	did := f.shouldMutate()
	if did {
		if f.rng.BoolWithProb(0.5) {
			if *v == math.MaxInt32 {
				*v-- // flip direction to avoid overflow
			} else {
				*v++
			}
		} else {
			if *v == math.MinInt32 {
				*v++ // flip direction to avoid underflow
			} else {
				*v--
			}
		}
	}
	f.tick()
	return nil
}

func (f *IntFlip) MutateSequence(values []int32) error {
	for i := range values {
		if err := f.Mutate(&values[i]); err != nil {
			return err
		}
		f.advanceIndex()
	}
	return nil
}

func (f *IntFlip) CloneSame() Adaptor[int32] {
	cp := *f
	return &cp
}

func (f *IntFlip) LoadFrom(other Adaptor[int32]) error {
	o, ok := other.(*IntFlip)
	if !ok {
		return fmt.Errorf("adaptor: load IntFlip from %T: %w", other, evoerr.ErrTypeMismatch)
	}
	if o == f {
		return evoerr.ErrSelfAssignment
	}
	f.Base.loadFrom(&o.Base)
	return nil
}

func (f *IntFlip) Equal(other Adaptor[int32]) bool {
	o, ok := other.(*IntFlip)
	return ok && f.Base.equal(&o.Base)
}

func (f *IntFlip) Similar(other Adaptor[int32], eps float64) bool {
	o, ok := other.(*IntFlip)
	return ok && f.Base.similar(&o.Base, eps)
}
