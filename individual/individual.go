// Package individual implements the composite parameter object (spec
// component C6, "Individual"): an ordered sequence of carriers plus a
// dirty-flag-guarded fitness cache, evaluation-permission policy, and an
// opaque per-algorithm trait bag.
package individual

import (
	"fmt"

	"github.com/Connerlevi/evo-core/carrier"
	"github.com/Connerlevi/evo-core/clone"
	"github.com/Connerlevi/evo-core/internal/evoerr"
)

// EvaluationPermission controls whether fitness() is allowed to invoke the
// user's objective function.
type EvaluationPermission int

const (
	Prevent EvaluationPermission = iota
	Allow
	Enforce
)

func (p EvaluationPermission) String() string {
	switch p {
	case Prevent:
		return "Prevent"
	case Allow:
		return "Allow"
	case Enforce:
		return "Enforce"
	default:
		return "Unknown"
	}
}

// FitnessFunc is the user-supplied objective function (spec §6,
// "compute_fitness"). It must be pure with respect to ind's carriers and
// may only read their external values.
type FitnessFunc func(ind *Individual) (float64, error)

// Traits is the opaque, per-algorithm trait bag an Individual carries on
// behalf of the surrounding optimisation algorithm (e.g. parent/child
// flag, position in population). Individual owns it fully and deep-copies
// it on clone via clone.DeepCopyMap.
type Traits map[string]any

// Individual is an ordered collection of ParameterCarriers plus the
// dirty-flag fitness cache described in spec §3/§4.6.
type Individual struct {
	carriers []carrier.Carrier

	fitnessFn  FitnessFunc
	fitnessCache float64
	dirty        bool

	evaluationPermission  EvaluationPermission
	lazyEvaluationAllowed bool
	parentIteration       uint64

	traits Traits
}

// Config configures a fresh Individual (spec §6's configuration table).
type Config struct {
	EvaluationPermission  EvaluationPermission
	LazyEvaluationAllowed bool
}

// DefaultConfig returns the permissive defaults: evaluation allowed
// on-demand, lazy evaluation permitted at any iteration.
func DefaultConfig() Config {
	return Config{EvaluationPermission: Allow, LazyEvaluationAllowed: true}
}

// New constructs a fresh Individual, starting dirty (spec §4.6's dirty-flag
// state machine: "initial Dirty").
func New(fitnessFn FitnessFunc, cfg Config, carriers ...carrier.Carrier) *Individual {
	cs := make([]carrier.Carrier, len(carriers))
	copy(cs, carriers)
	return &Individual{
		carriers:              cs,
		fitnessFn:             fitnessFn,
		dirty:                 true,
		evaluationPermission:  cfg.EvaluationPermission,
		lazyEvaluationAllowed: cfg.LazyEvaluationAllowed,
	}
}

func (ind *Individual) Len() int { return len(ind.carriers) }

func (ind *Individual) At(i int) (carrier.Carrier, error) {
	if i < 0 || i >= len(ind.carriers) {
		return nil, fmt.Errorf("individual: index %d out of range [0,%d): %w", i, len(ind.carriers), evoerr.ErrInvalidConfiguration)
	}
	return ind.carriers[i], nil
}

// ChildAt is the typed accessor from spec §4.6 ("child_at<T>(i)"),
// returning evoerr.ErrTypeMismatch if the carrier at i is not of the
// requested Go type.
func ChildAt[C carrier.Carrier](ind *Individual, i int) (C, error) {
	var zero C
	c, err := ind.At(i)
	if err != nil {
		return zero, err
	}
	typed, ok := c.(C)
	if !ok {
		return zero, fmt.Errorf("individual: carrier at %d is %T, not %T: %w", i, c, zero, evoerr.ErrTypeMismatch)
	}
	return typed, nil
}

// Push appends a carrier and marks the individual dirty.
func (ind *Individual) Push(c carrier.Carrier) {
	ind.carriers = append(ind.carriers, c)
	ind.dirty = true
}

// Find returns the index of the first carrier equal to target, or -1.
func (ind *Individual) Find(target carrier.Carrier) int {
	for i, c := range ind.carriers {
		if c.Equal(target) {
			return i
		}
	}
	return -1
}

// AttachSource propagates a random source to every carrier (and through
// them, every adaptor).
func (ind *Individual) AttachSource(s carrier.Source) {
	for _, c := range ind.carriers {
		c.AttachSource(s)
	}
}

// Mutate iterates the carriers in insertion order, applying each one's
// mutate() and marking the individual dirty (spec §4.6). If
// EvaluationPermission is Enforce, fitness is refreshed immediately
// afterward.
func (ind *Individual) Mutate() error {
	for _, c := range ind.carriers {
		if err := c.Mutate(); err != nil {
			return err
		}
	}
	ind.dirty = true
	if ind.evaluationPermission == Enforce {
		_, err := ind.Fitness()
		return err
	}
	return nil
}

// Fitness returns the cached fitness if clean, otherwise recomputes it per
// the state machine in spec §4.6. A user-thrown error from the objective
// function is wrapped in evoerr.ErrUserFitness and dirty is left true.
func (ind *Individual) Fitness() (f float64, err error) {
	if !ind.dirty {
		return ind.fitnessCache, nil
	}
	if ind.evaluationPermission == Prevent {
		return 0, evoerr.ErrEvaluationForbidden
	}
	if !ind.lazyEvaluationAllowed && ind.parentIteration > 0 {
		return 0, evoerr.ErrStaleFitness
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("individual: compute_fitness panicked: %v: %w", r, evoerr.ErrUserFitness)
		}
	}()

	val, ferr := ind.fitnessFn(ind)
	if ferr != nil {
		return 0, fmt.Errorf("individual: compute_fitness failed: %w: %w", ferr, evoerr.ErrUserFitness)
	}
	ind.fitnessCache = val
	ind.dirty = false
	return ind.fitnessCache, nil
}

func (ind *Individual) Dirty() bool { return ind.dirty }

func (ind *Individual) EvaluationPermission() EvaluationPermission { return ind.evaluationPermission }

func (ind *Individual) SetEvaluationPermission(p EvaluationPermission) { ind.evaluationPermission = p }

func (ind *Individual) LazyEvaluationAllowed() bool { return ind.lazyEvaluationAllowed }

func (ind *Individual) SetLazyEvaluationAllowed(v bool) { ind.lazyEvaluationAllowed = v }

func (ind *Individual) ParentIteration() uint64 { return ind.parentIteration }

func (ind *Individual) SetParentIteration(n uint64) { ind.parentIteration = n }

func (ind *Individual) Traits() Traits { return ind.traits }

func (ind *Individual) SetTraits(t Traits) { ind.traits = t }

// CloneSame returns a deep copy whose carriers, fitness cache, and traits
// are independent of the receiver's (spec §4.1).
func (ind *Individual) CloneSame() *Individual {
	cp := &Individual{
		fitnessFn:             ind.fitnessFn,
		fitnessCache:          ind.fitnessCache,
		dirty:                 ind.dirty,
		evaluationPermission:  ind.evaluationPermission,
		lazyEvaluationAllowed: ind.lazyEvaluationAllowed,
		parentIteration:       ind.parentIteration,
	}
	cp.carriers = make([]carrier.Carrier, len(ind.carriers))
	for i, c := range ind.carriers {
		cp.carriers[i] = c.CloneSame()
	}
	if ind.traits != nil {
		traits, err := clone.DeepCopyMap(ind.traits)
		if err == nil {
			cp.traits = traits
		}
	}
	return cp
}

// LoadFrom replaces the receiver's state with a deep copy of other,
// including the dirty flag verbatim (spec §4.6's state machine: "load_from
// copies the incoming dirty flag verbatim").
func (ind *Individual) LoadFrom(other *Individual) error {
	if other == ind {
		return evoerr.ErrSelfAssignment
	}
	cp := other.CloneSame()
	*ind = *cp
	return nil
}

// Equal reports structural equality across every carrier, the cached
// fitness/dirty state, and the evaluation policy fields.
func (ind *Individual) Equal(other *Individual) bool {
	if len(ind.carriers) != len(other.carriers) {
		return false
	}
	for i := range ind.carriers {
		if !ind.carriers[i].Equal(other.carriers[i]) {
			return false
		}
	}
	return ind.dirty == other.dirty &&
		ind.fitnessCache == other.fitnessCache &&
		ind.evaluationPermission == other.evaluationPermission &&
		ind.lazyEvaluationAllowed == other.lazyEvaluationAllowed &&
		ind.parentIteration == other.parentIteration
}

// Similar is like Equal but tolerates floating point differences up to eps
// in the cached fitness and in every carrier's values.
func (ind *Individual) Similar(other *Individual, eps float64) bool {
	if len(ind.carriers) != len(other.carriers) {
		return false
	}
	for i := range ind.carriers {
		if !ind.carriers[i].Similar(other.carriers[i], eps) {
			return false
		}
	}
	diff := ind.fitnessCache - other.fitnessCache
	if diff < 0 {
		diff = -diff
	}
	return diff <= eps &&
		ind.dirty == other.dirty &&
		ind.evaluationPermission == other.evaluationPermission &&
		ind.lazyEvaluationAllowed == other.lazyEvaluationAllowed &&
		ind.parentIteration == other.parentIteration
}
