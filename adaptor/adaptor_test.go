package adaptor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Connerlevi/evo-core/adaptor"
)

// scriptedSource is a deterministic stand-in for a random.Handle, letting
// tests pin exactly which draws an adaptor consumes.
type scriptedSource struct {
	evens  []float64
	gauss  []float64
	bools  []bool
	ei, gi, bi int
}

func (s *scriptedSource) Even(lo, hi float64) float64 {
	v := s.evens[s.ei%len(s.evens)]
	s.ei++
	return lo + v*(hi-lo)
}

func (s *scriptedSource) Gauss(mu, sigma float64) float64 {
	v := s.gauss[s.gi%len(s.gauss)]
	s.gi++
	return mu + v*sigma
}

func (s *scriptedSource) BoolWithProb(p float64) bool {
	if len(s.bools) == 0 {
		return s.ei%2 == 0
	}
	v := s.bools[s.bi%len(s.bools)]
	s.bi++
	return v
}

func TestProbabilisticZeroProbabilityNeverMutates(t *testing.T) {
	cfg := adaptor.DefaultGaussianConfig()
	cfg.Probability = 0
	g, err := adaptor.NewGaussianDouble(cfg)
	require.NoError(t, err)
	g.AttachSource(&scriptedSource{evens: []float64{0}, gauss: []float64{5}})

	v := 3.0
	for i := 0; i < 20; i++ {
		require.NoError(t, g.Mutate(&v))
	}
	require.Equal(t, 3.0, v)
}

func TestGaussianSelfAdaptsAfterThreshold(t *testing.T) {
	cfg := adaptor.DefaultGaussianConfig()
	cfg.Probability = 1
	cfg.Mode = adaptor.Probabilistic
	cfg.AdaptionThreshold = 4
	g, err := adaptor.NewGaussianDouble(cfg)
	require.NoError(t, err)
	g.AttachSource(&scriptedSource{evens: []float64{0}, gauss: []float64{0.5}})

	sigmaBefore := g.Sigma()
	v := 0.0
	for i := 0; i < 4; i++ {
		require.NoError(t, g.Mutate(&v))
	}
	require.Equal(t, uint32(0), g.AdaptionCounter())
	require.NotEqual(t, sigmaBefore, g.Sigma())
}

func TestGaussianCloneIsIndependent(t *testing.T) {
	cfg := adaptor.DefaultGaussianConfig()
	g, err := adaptor.NewGaussianDouble(cfg)
	require.NoError(t, err)
	g.AttachSource(&scriptedSource{evens: []float64{0}, gauss: []float64{1}})

	clone := g.CloneSame()
	require.True(t, g.Equal(clone))

	require.NoError(t, g.SetProbability(1))
	require.False(t, g.Equal(clone))
}

func TestInvalidProbabilityRejected(t *testing.T) {
	g, err := adaptor.NewGaussianDouble(adaptor.DefaultGaussianConfig())
	require.NoError(t, err)
	require.Error(t, g.SetProbability(1.5))
	require.Error(t, g.SetProbability(-0.1))
}
