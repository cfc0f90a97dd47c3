package adaptor

import (
	"fmt"

	"github.com/Connerlevi/evo-core/internal/evoerr"
)

// Base holds the state and behavior common to every adaptor kind (spec §3,
// "Adaptor state"): mutation probability and mode, the self-adaption
// counter/threshold pair, and the rolling sequence index. Concrete kinds
// embed Base and call its helpers from their own Mutate implementation,
// the idiomatic-Go stand-in for the source's virtual-base-class dispatch
// (Design Notes, §9).
type Base[T any] struct {
	probability       float64
	mode              Mode
	adaptionThreshold uint32
	adaptionCounter   uint32
	currentIndex      uint32
	maxVars           uint32
	rng               Source
}

// newBase constructs a Base with the documented defaults: probability 0,
// mode Probabilistic, no self-adaption, a single rolling slot.
func newBase[T any]() Base[T] {
	return Base[T]{
		probability: 0,
		mode:        Probabilistic,
		maxVars:     1,
	}
}

func (b *Base[T]) Probability() float64 { return b.probability }

func (b *Base[T]) SetProbability(p float64) error {
	if err := validateProbability(p); err != nil {
		return fmt.Errorf("adaptor: set probability %.3f: %w", p, err)
	}
	b.probability = p
	return nil
}

func (b *Base[T]) Mode() Mode { return b.mode }

func (b *Base[T]) SetMode(m Mode) error {
	if !m.valid() {
		return fmt.Errorf("adaptor: set mode %v: %w", m, evoerr.ErrInvalidConfiguration)
	}
	b.mode = m
	return nil
}

func (b *Base[T]) AdaptionThreshold() uint32 { return b.adaptionThreshold }

func (b *Base[T]) SetAdaptionThreshold(n uint32) {
	b.adaptionThreshold = n
	if b.adaptionCounter >= max32(n, 1) {
		b.adaptionCounter = 0
	}
}

func (b *Base[T]) AdaptionCounter() uint32 { return b.adaptionCounter }

func (b *Base[T]) CurrentIndex() uint32 { return b.currentIndex }

func (b *Base[T]) MaxVars() uint32 { return b.maxVars }

func (b *Base[T]) SetMaxVars(n uint32) error {
	if n < 1 {
		return fmt.Errorf("adaptor: set max vars %d: %w", n, evoerr.ErrInvalidConfiguration)
	}
	b.maxVars = n
	if b.currentIndex >= n {
		b.currentIndex = 0
	}
	return nil
}

func (b *Base[T]) AttachSource(s Source) { b.rng = s }

// shouldMutate resolves Mode into a yes/no decision for one mutation call,
// per §4.3.
func (b *Base[T]) shouldMutate() bool {
	switch b.mode {
	case Always:
		return true
	case Never:
		return false
	default: // Probabilistic
		if b.rng == nil {
			return false
		}
		u := b.rng.Even(0, 1)
		return u < b.probability
	}
}

// tick advances the self-adaption counter per §4.3's state machine and
// reports whether this call wraps the counter (i.e. self-adapt should
// fire now). Only Probabilistic-mode calls advance the counter: in Always
// and Never mode tick returns false without touching it, matching the source's
// GAdaptorT.hpp:443-453 (adaptionCounter_/adaptMutation() live strictly
// inside the indeterminate-mode branch; the Always branch runs only the
// custom mutation, and Never does nothing at all).
func (b *Base[T]) tick() bool {
	if b.mode != Probabilistic || b.adaptionThreshold == 0 {
		return false
	}
	b.adaptionCounter++
	if b.adaptionCounter >= b.adaptionThreshold {
		b.adaptionCounter = 0
		return true
	}
	return false
}

// advanceIndex wraps currentIndex at maxVars, used by MutateSequence.
func (b *Base[T]) advanceIndex() {
	b.currentIndex++
	if b.currentIndex >= b.maxVars {
		b.currentIndex = 0
	}
}

// State is the exported snapshot of a Base's fields, used by package codec
// to serialize and restore an adaptor's state without reaching into its
// unexported fields (spec §4.7: every concrete cloneable type round-trips
// through Text/Xml/Binary).
type State struct {
	Probability       float64
	Mode              Mode
	AdaptionThreshold uint32
	AdaptionCounter   uint32
	CurrentIndex      uint32
	MaxVars           uint32
}

// State returns a snapshot of b's fields.
func (b *Base[T]) State() State {
	return State{
		Probability:       b.probability,
		Mode:              b.mode,
		AdaptionThreshold: b.adaptionThreshold,
		AdaptionCounter:   b.adaptionCounter,
		CurrentIndex:      b.currentIndex,
		MaxVars:           b.maxVars,
	}
}

// restore rebuilds b's fields from a previously captured State, bypassing
// the setters' validation since a State was necessarily produced by a
// previously-valid Base.
func (b *Base[T]) restore(s State) {
	b.probability = s.Probability
	b.mode = s.Mode
	b.adaptionThreshold = s.AdaptionThreshold
	b.adaptionCounter = s.AdaptionCounter
	b.currentIndex = s.CurrentIndex
	b.maxVars = s.MaxVars
}

func (b *Base[T]) loadFrom(other *Base[T]) {
	b.probability = other.probability
	b.mode = other.mode
	b.adaptionThreshold = other.adaptionThreshold
	b.adaptionCounter = other.adaptionCounter
	b.currentIndex = other.currentIndex
	b.maxVars = other.maxVars
}

func (b *Base[T]) equal(other *Base[T]) bool {
	return b.probability == other.probability &&
		b.mode == other.mode &&
		b.adaptionThreshold == other.adaptionThreshold &&
		b.adaptionCounter == other.adaptionCounter &&
		b.currentIndex == other.currentIndex &&
		b.maxVars == other.maxVars
}

func (b *Base[T]) similar(other *Base[T], eps float64) bool {
	return absDiff(b.probability, other.probability) <= eps &&
		b.mode == other.mode &&
		b.adaptionThreshold == other.adaptionThreshold &&
		b.adaptionCounter == other.adaptionCounter &&
		b.currentIndex == other.currentIndex &&
		b.maxVars == other.maxVars
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

func max32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
