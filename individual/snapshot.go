package individual

import (
	"github.com/Connerlevi/evo-core/carrier"
)

// Snapshot is the exported, encoding-agnostic representation of an
// Individual (spec §4.7). FitnessFn is intentionally absent: the objective
// function is supplied by the caller at reconstruction time, not
// serialized.
type Snapshot struct {
	Carriers []carrier.Snapshot

	FitnessCache          float64
	Dirty                 bool
	EvaluationPermission  EvaluationPermission
	LazyEvaluationAllowed bool
	ParentIteration       uint64

	Traits Traits `json:",omitempty"`
}

// ToSnapshot converts ind into its exported representation.
func (ind *Individual) ToSnapshot() (Snapshot, error) {
	snap := Snapshot{
		Carriers:              make([]carrier.Snapshot, len(ind.carriers)),
		FitnessCache:          ind.fitnessCache,
		Dirty:                 ind.dirty,
		EvaluationPermission:  ind.evaluationPermission,
		LazyEvaluationAllowed: ind.lazyEvaluationAllowed,
		ParentIteration:       ind.parentIteration,
		Traits:                ind.traits,
	}
	for i, c := range ind.carriers {
		cs, err := carrier.ToSnapshot(c)
		if err != nil {
			return Snapshot{}, err
		}
		snap.Carriers[i] = cs
	}
	return snap, nil
}

// FromSnapshot reconstructs an Individual from a previously captured
// Snapshot. fitnessFn is supplied by the caller since functions are never
// serialized. The returned Individual has no random source attached on any
// of its carriers; callers must call AttachSource before mutating it.
func FromSnapshot(snap Snapshot, fitnessFn FitnessFunc) (*Individual, error) {
	ind := &Individual{
		carriers:              make([]carrier.Carrier, len(snap.Carriers)),
		fitnessFn:             fitnessFn,
		fitnessCache:          snap.FitnessCache,
		dirty:                 snap.Dirty,
		evaluationPermission:  snap.EvaluationPermission,
		lazyEvaluationAllowed: snap.LazyEvaluationAllowed,
		parentIteration:       snap.ParentIteration,
		traits:                snap.Traits,
	}
	for i, cs := range snap.Carriers {
		c, err := carrier.FromSnapshot(cs)
		if err != nil {
			return nil, err
		}
		ind.carriers[i] = c
	}
	return ind, nil
}
