package adaptor

import (
	"fmt"

	"github.com/Connerlevi/evo-core/internal/evoerr"
	"github.com/Connerlevi/evo-core/internal/foldmath"
)

// BitFlip flips a bool value with probability Probability. When
// SelfAdapting is set, the probability itself is perturbed by a small
// Gaussian step and folded back into [0,1] every AdaptionThreshold calls,
// rather than held fixed (spec §4.3, "BitFlip ... may itself self-adapt its
// flip probability").
type BitFlip struct {
	Base[bool]
	selfAdapting bool
	adaptSigma   float64
}

// BitFlipConfig configures a BitFlip adaptor.
type BitFlipConfig struct {
	Config
	SelfAdapting bool
	AdaptSigma   float64
}

// DefaultBitFlipConfig returns a fixed-probability BitFlip with a small
// default step width in case the caller later enables self-adaption.
func DefaultBitFlipConfig() BitFlipConfig {
	return BitFlipConfig{
		Config:       DefaultConfig(),
		SelfAdapting: false,
		AdaptSigma:   0.05,
	}
}

func NewBitFlip(cfg BitFlipConfig) (*BitFlip, error) {
	if cfg.SelfAdapting && cfg.AdaptSigma <= 0 {
		return nil, fmt.Errorf("adaptor: bitflip adapt sigma %g: %w", cfg.AdaptSigma, evoerr.ErrInvalidConfiguration)
	}
	b := &BitFlip{Base: newBase[bool](), selfAdapting: cfg.SelfAdapting, adaptSigma: cfg.AdaptSigma}
	if err := b.SetProbability(cfg.Probability); err != nil {
		return nil, err
	}
	if err := b.SetMode(cfg.Mode); err != nil {
		return nil, err
	}
	b.SetAdaptionThreshold(cfg.AdaptionThreshold)
	return b, nil
}

func (b *BitFlip) Kind() Kind { return KindBitFlip }

func (b *BitFlip) SelfAdapting() bool { return b.selfAdapting }

// BitFlipState is the exported snapshot of a BitFlip's full state.
type BitFlipState struct {
	Base         State
	SelfAdapting bool
	AdaptSigma   float64
}

func (b *BitFlip) State() BitFlipState {
	return BitFlipState{Base: b.Base.State(), SelfAdapting: b.selfAdapting, AdaptSigma: b.adaptSigma}
}

// RestoreBitFlip rebuilds a BitFlip from a previously captured State.
func RestoreBitFlip(st BitFlipState) *BitFlip {
	b := &BitFlip{Base: newBase[bool](), selfAdapting: st.SelfAdapting, adaptSigma: st.AdaptSigma}
	b.Base.restore(st.Base)
	return b
}

func (b *BitFlip) Mutate(v *bool) error {
	did := b.shouldMutate()
	if did {
		*v = !*v
	}
	if b.selfAdapting && b.tick() {
		z := b.rng.Gauss(0, 1)
		next := b.probability + b.adaptSigma*z
		b.probability = foldmath.Fold(next, 0, 1)
	}
	return nil
}

func (b *BitFlip) MutateSequence(values []bool) error {
	for i := range values {
		if err := b.Mutate(&values[i]); err != nil {
			return err
		}
		b.advanceIndex()
	}
	return nil
}

func (b *BitFlip) CloneSame() Adaptor[bool] {
	cp := *b
	return &cp
}

func (b *BitFlip) LoadFrom(other Adaptor[bool]) error {
	o, ok := other.(*BitFlip)
	if !ok {
		return fmt.Errorf("adaptor: load BitFlip from %T: %w", other, evoerr.ErrTypeMismatch)
	}
	if o == b {
		return evoerr.ErrSelfAssignment
	}
	b.Base.loadFrom(&o.Base)
	b.selfAdapting = o.selfAdapting
	b.adaptSigma = o.adaptSigma
	return nil
}

func (b *BitFlip) Equal(other Adaptor[bool]) bool {
	o, ok := other.(*BitFlip)
	return ok && b.Base.equal(&o.Base) && b.selfAdapting == o.selfAdapting && b.adaptSigma == o.adaptSigma
}

func (b *BitFlip) Similar(other Adaptor[bool], eps float64) bool {
	o, ok := other.(*BitFlip)
	return ok && b.Base.similar(&o.Base, eps) && b.selfAdapting == o.selfAdapting && absDiff(b.adaptSigma, o.adaptSigma) <= eps
}
