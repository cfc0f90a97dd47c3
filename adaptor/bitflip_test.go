package adaptor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Connerlevi/evo-core/adaptor"
)

func TestBitFlipAlwaysFlipsWithProbabilityOne(t *testing.T) {
	cfg := adaptor.DefaultBitFlipConfig()
	cfg.Probability = 1
	cfg.Mode = adaptor.Probabilistic
	bf, err := adaptor.NewBitFlip(cfg)
	require.NoError(t, err)
	bf.AttachSource(&scriptedSource{evens: []float64{0}})

	v := false
	require.NoError(t, bf.Mutate(&v))
	require.True(t, v)
	require.NoError(t, bf.Mutate(&v))
	require.False(t, v)
}

func TestIntFlipGuardsMaxBoundary(t *testing.T) {
	f, err := adaptor.NewIntFlip(adaptor.Config{Probability: 1, Mode: adaptor.Probabilistic})
	require.NoError(t, err)
	f.AttachSource(&scriptedSource{evens: []float64{0}, bools: []bool{true}})

	v := int32(2147483647) // math.MaxInt32
	require.NoError(t, f.Mutate(&v))
	require.Equal(t, int32(2147483646), v)
}

func TestIdentityNeverMutates(t *testing.T) {
	id := adaptor.NewIdentity[float64]()
	v := 7.5
	require.NoError(t, id.Mutate(&v))
	require.Equal(t, 7.5, v)
	require.Error(t, id.SetProbability(0.5))
	require.Error(t, id.SetMode(adaptor.Always))
}

func TestSwarmAlwaysMutatesAndRejectsModeChange(t *testing.T) {
	s, err := adaptor.NewSwarm(0.2)
	require.NoError(t, err)
	s.AttachSource(&scriptedSource{gauss: []float64{1}})

	v := 0.0
	require.NoError(t, s.Mutate(&v))
	require.Equal(t, 0.2, v)
	require.Error(t, s.SetMode(adaptor.Never))
	require.Error(t, s.SetProbability(0.5))
}
