package individual_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Connerlevi/evo-core/adaptor"
	"github.com/Connerlevi/evo-core/carrier"
	"github.com/Connerlevi/evo-core/individual"
	"github.com/Connerlevi/evo-core/internal/evoerr"
)

type gaussSource struct{ z float64 }

func (s gaussSource) Even(lo, hi float64) float64  { return lo }
func (s gaussSource) Gauss(mu, sigma float64) float64 { return mu + sigma*s.z }
func (s gaussSource) BoolWithProb(p float64) bool  { return p >= 1 }

func sphere(ind *individual.Individual) (float64, error) {
	nc, err := individual.ChildAt[*carrier.NumericCollection[float64]](ind, 0)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range nc.ExternalValues() {
		sum += v * v
	}
	return sum, nil
}

func newSphereIndividual(t *testing.T) *individual.Individual {
	t.Helper()
	nc := carrier.NewNumericCollection[float64](1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	g, err := adaptor.NewGaussianDouble(adaptor.GaussianConfig{
		Config:            adaptor.Config{Probability: 1, Mode: adaptor.Probabilistic},
		Sigma:             0.1,
		SigmaMin:          1e-4,
		SigmaMax:          1,
		SigmaAdaptionRate: 1e-3,
	})
	require.NoError(t, err)
	require.NoError(t, nc.AddAdaptor("step", g))

	ind := individual.New(sphere, individual.DefaultConfig(), nc)
	ind.AttachSource(gaussSource{z: 1})
	return ind
}

func TestSphereIndividualInitialFitness(t *testing.T) {
	ind := newSphereIndividual(t)
	f, err := ind.Fitness()
	require.NoError(t, err)
	require.Equal(t, 10.0, f)
}

func TestSphereIndividualFitnessChangesAfterMutate(t *testing.T) {
	ind := newSphereIndividual(t)
	_, err := ind.Fitness()
	require.NoError(t, err)

	require.NoError(t, ind.Mutate())
	f, err := ind.Fitness()
	require.NoError(t, err)
	require.NotEqual(t, 10.0, f)
}

func TestDirtyFlagCachesFitnessUntilMutate(t *testing.T) {
	calls := 0
	fn := func(ind *individual.Individual) (float64, error) {
		calls++
		return 42, nil
	}
	ind := individual.New(fn, individual.DefaultConfig())
	require.True(t, ind.Dirty())

	f1, err := ind.Fitness()
	require.NoError(t, err)
	require.Equal(t, 42.0, f1)
	require.False(t, ind.Dirty())
	require.Equal(t, 1, calls)

	f2, err := ind.Fitness()
	require.NoError(t, err)
	require.Equal(t, 42.0, f2)
	require.Equal(t, 1, calls, "cached fitness must not recompute")

	require.NoError(t, ind.Mutate())
	require.True(t, ind.Dirty())

	_, err = ind.Fitness()
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestStaleFitnessRejectedWhenLazyEvaluationDisallowed(t *testing.T) {
	fn := func(ind *individual.Individual) (float64, error) { return 1, nil }
	cfg := individual.Config{EvaluationPermission: individual.Allow, LazyEvaluationAllowed: false}
	ind := individual.New(fn, cfg)
	ind.SetParentIteration(1)

	_, err := ind.Fitness()
	require.Error(t, err)
	require.True(t, errors.Is(err, evoerr.ErrStaleFitness))
}

func TestEvaluationForbiddenWhenPermissionPrevented(t *testing.T) {
	fn := func(ind *individual.Individual) (float64, error) { return 1, nil }
	cfg := individual.Config{EvaluationPermission: individual.Prevent, LazyEvaluationAllowed: true}
	ind := individual.New(fn, cfg)

	_, err := ind.Fitness()
	require.Error(t, err)
	require.True(t, errors.Is(err, evoerr.ErrEvaluationForbidden))
}

func TestCloneSameIsIndependent(t *testing.T) {
	ind := newSphereIndividual(t)
	_, err := ind.Fitness()
	require.NoError(t, err)

	cp := ind.CloneSame()
	require.True(t, ind.Equal(cp))

	require.NoError(t, cp.Mutate())
	require.False(t, ind.Equal(cp))
}
