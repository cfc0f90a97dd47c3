// Package adaptor implements the stateful, self-adapting mutation
// operators (spec component C3, "Adaptor<T>") that parameter carriers
// attach to their values. Every concrete kind embeds Base[T] for the
// shared probability/mode/self-adaption state machine and contributes its
// own kind-specific mutation and (where applicable) self-adaption law.
package adaptor

import "github.com/Connerlevi/evo-core/internal/evoerr"

// Mode controls whether a mutation call actually performs work.
type Mode int

const (
	// Always invokes the kind-specific mutation unconditionally.
	Always Mode = iota
	// Never is a no-op.
	Never
	// Probabilistic draws u in [0,1) and mutates iff u < Probability, so
	// Probability 0 never mutates and Probability 1 always does.
	Probabilistic
)

func (m Mode) String() string {
	switch m {
	case Always:
		return "Always"
	case Never:
		return "Never"
	case Probabilistic:
		return "Probabilistic"
	default:
		return "Unknown"
	}
}

func (m Mode) valid() bool {
	return m == Always || m == Never || m == Probabilistic
}

// Kind identifies an adaptor's concrete mutation strategy, used by the
// serialization codec as the type tag and by carriers to check
// type-compatibility before attaching an adaptor to a value.
type Kind int

const (
	KindGaussianDouble Kind = iota
	KindGaussianInt32
	KindBitFlip
	KindIntFlip
	KindIdentity
	KindSwarm
)

func (k Kind) String() string {
	switch k {
	case KindGaussianDouble:
		return "GaussianDouble"
	case KindGaussianInt32:
		return "GaussianInt32"
	case KindBitFlip:
		return "BitFlip"
	case KindIntFlip:
		return "IntFlip"
	case KindIdentity:
		return "Identity"
	case KindSwarm:
		return "Swarm"
	default:
		return "Unknown"
	}
}

// Real is the set of leaf types a Gaussian adaptor can be parameterised
// over (spec §3: "Every adaptor is parameterised over exactly one leaf
// type").
type Real interface {
	~float64 | ~int32
}

// Source is the subset of random.Handle that adaptors draw from. Declared
// here (rather than importing package random) so adaptor has no dependency
// on the concurrency/worker-pool machinery of C1 — any type with this
// shape, including *random.Handle, satisfies it.
type Source interface {
	Even(lo, hi float64) float64
	Gauss(mu, sigma float64) float64
	BoolWithProb(p float64) bool
}

// Adaptor is the common, polymorphic interface every concrete mutation
// strategy implements over a value of type T.
type Adaptor[T any] interface {
	// Kind reports the adaptor's concrete mutation strategy.
	Kind() Kind

	// Mutate applies the adaptor to v in place, following Mode and,
	// when applicable, triggering self-adaption per AdaptionThreshold.
	Mutate(v *T) error

	// MutateSequence applies Mutate to each element of values in order.
	// CurrentIndex advances (wrapping at MaxVars) as it goes.
	MutateSequence(values []T) error

	Probability() float64
	SetProbability(p float64) error

	Mode() Mode
	SetMode(m Mode) error

	AdaptionThreshold() uint32
	SetAdaptionThreshold(n uint32)

	AdaptionCounter() uint32
	CurrentIndex() uint32

	MaxVars() uint32
	SetMaxVars(n uint32) error

	// AttachSource binds the adaptor to a random number source. The
	// source is never serialized (spec §4.7), so a decoded adaptor has
	// none until the caller attaches one.
	AttachSource(s Source)

	CloneSame() Adaptor[T]
	LoadFrom(other Adaptor[T]) error
	Equal(other Adaptor[T]) bool
	Similar(other Adaptor[T], eps float64) bool
}

func validateProbability(p float64) error {
	if p < 0 || p > 1 {
		return evoerr.ErrInvalidConfiguration
	}
	return nil
}
