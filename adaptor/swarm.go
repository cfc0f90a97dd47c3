package adaptor

import (
	"fmt"

	"github.com/Connerlevi/evo-core/internal/evoerr"
)

// Swarm applies an unconditional Gaussian-style perturbation to a float64
// value: it always fires (Mode is pinned to Always, Probability to 1) and
// does not self-adapt its step width, since a swarm's step size is driven
// externally by the caller updating Sigma between iterations rather than
// by the adaptor's own threshold counter (spec §3, "Swarm ... mutation
// probability and mode are fixed, not user-settable").
type Swarm struct {
	Base[float64]
	sigma float64
}

func NewSwarm(sigma float64) (*Swarm, error) {
	if sigma <= 0 {
		return nil, fmt.Errorf("adaptor: swarm sigma %g: %w", sigma, evoerr.ErrInvalidConfiguration)
	}
	b := newBase[float64]()
	b.mode = Always
	b.probability = 1
	return &Swarm{Base: b, sigma: sigma}, nil
}

func (s *Swarm) Kind() Kind { return KindSwarm }

// SwarmState is the exported snapshot of a Swarm's full state.
type SwarmState struct {
	Base  State
	Sigma float64
}

func (s *Swarm) State() SwarmState {
	return SwarmState{Base: s.Base.State(), Sigma: s.sigma}
}

// RestoreSwarm rebuilds a Swarm from a previously captured State.
func RestoreSwarm(st SwarmState) *Swarm {
	b := newBase[float64]()
	b.restore(st.Base)
	return &Swarm{Base: b, sigma: st.Sigma}
}

func (s *Swarm) Sigma() float64 { return s.sigma }

// SetSigma lets the owning swarm algorithm drive the step width directly,
// bypassing the self-adaption machinery other kinds use.
func (s *Swarm) SetSigma(sigma float64) error {
	if sigma <= 0 {
		return fmt.Errorf("adaptor: swarm sigma %g: %w", sigma, evoerr.ErrInvalidConfiguration)
	}
	s.sigma = sigma
	return nil
}

func (s *Swarm) SetProbability(p float64) error {
	if p != 1 {
		return fmt.Errorf("adaptor: swarm probability must be 1, got %g: %w", p, evoerr.ErrInvalidConfiguration)
	}
	return nil
}

func (s *Swarm) SetMode(m Mode) error {
	if m != Always {
		return fmt.Errorf("adaptor: swarm mode must be Always, got %v: %w", m, evoerr.ErrInvalidConfiguration)
	}
	return nil
}

func (s *Swarm) Mutate(v *float64) error {
	z := s.rng.Gauss(0, 1)
	*v += s.sigma * z
	s.tick()
	return nil
}

func (s *Swarm) MutateSequence(values []float64) error {
	for i := range values {
		if err := s.Mutate(&values[i]); err != nil {
			return err
		}
		s.advanceIndex()
	}
	return nil
}

func (s *Swarm) CloneSame() Adaptor[float64] {
	cp := *s
	return &cp
}

func (s *Swarm) LoadFrom(other Adaptor[float64]) error {
	o, ok := other.(*Swarm)
	if !ok {
		return fmt.Errorf("adaptor: load Swarm from %T: %w", other, evoerr.ErrTypeMismatch)
	}
	if o == s {
		return evoerr.ErrSelfAssignment
	}
	s.Base.loadFrom(&o.Base)
	s.sigma = o.sigma
	return nil
}

func (s *Swarm) Equal(other Adaptor[float64]) bool {
	o, ok := other.(*Swarm)
	return ok && s.Base.equal(&o.Base) && s.sigma == o.sigma
}

func (s *Swarm) Similar(other Adaptor[float64], eps float64) bool {
	o, ok := other.(*Swarm)
	return ok && s.Base.similar(&o.Base, eps) && absDiff(s.sigma, o.sigma) <= eps
}
