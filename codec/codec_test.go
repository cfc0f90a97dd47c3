package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Connerlevi/evo-core/adaptor"
	"github.com/Connerlevi/evo-core/carrier"
	"github.com/Connerlevi/evo-core/codec"
	"github.com/Connerlevi/evo-core/individual"
)

type roundSource struct{ i int }

func (s *roundSource) Even(lo, hi float64) float64 {
	s.i++
	if s.i%2 == 0 {
		return hi
	}
	return lo
}

func (s *roundSource) Gauss(mu, sigma float64) float64 {
	s.i++
	return mu + sigma*float64(s.i%3)
}

func (s *roundSource) BoolWithProb(p float64) bool {
	s.i++
	return p >= 1
}

func buildMixedIndividual(t *testing.T) *individual.Individual {
	t.Helper()

	doubles := make([]float64, 20)
	nc := carrier.NewNumericCollection(doubles...)
	g, err := adaptor.NewGaussianDouble(adaptor.GaussianConfig{
		Config:            adaptor.Config{Probability: 1, Mode: adaptor.Probabilistic},
		Sigma:             0.05,
		SigmaMin:          1e-4,
		SigmaMax:          1,
		SigmaAdaptionRate: 1e-3,
	})
	require.NoError(t, err)
	require.NoError(t, nc.AddAdaptor("step", g))

	bits := make([]bool, 10)
	bc := carrier.NewBitCollection(bits...)
	bf, err := adaptor.NewBitFlip(adaptor.BitFlipConfig{Config: adaptor.Config{Probability: 0.5, Mode: adaptor.Probabilistic}})
	require.NoError(t, err)
	require.NoError(t, bc.AddAdaptor("flip", bf))

	bs, err := carrier.NewBoundedScalar(0, -5, 5)
	require.NoError(t, err)
	swarm, err := adaptor.NewSwarm(0.3)
	require.NoError(t, err)
	require.NoError(t, bs.AddAdaptor("swarm", swarm))

	ind := individual.New(nil, individual.Config{EvaluationPermission: individual.Prevent, LazyEvaluationAllowed: true}, nc, bc, bs)
	ind.AttachSource(&roundSource{})

	for i := 0; i < 100; i++ {
		require.NoError(t, ind.Mutate())
	}
	return ind
}

func TestBinaryRoundTripIsExact(t *testing.T) {
	ind := buildMixedIndividual(t)
	snap, err := ind.ToSnapshot()
	require.NoError(t, err)

	encoded, err := codec.EncodeBinary(snap)
	require.NoError(t, err)

	decoded, err := codec.DecodeBinary(encoded)
	require.NoError(t, err)

	restored, err := individual.FromSnapshot(decoded, nil)
	require.NoError(t, err)

	require.True(t, ind.Equal(restored))
}

func TestXmlRoundTripIsSimilar(t *testing.T) {
	ind := buildMixedIndividual(t)
	snap, err := ind.ToSnapshot()
	require.NoError(t, err)

	encoded, err := codec.EncodeXml(snap)
	require.NoError(t, err)

	decoded, err := codec.DecodeXml(encoded)
	require.NoError(t, err)

	restored, err := individual.FromSnapshot(decoded, nil)
	require.NoError(t, err)

	require.True(t, ind.Similar(restored, 1e-10))
}

func TestTextRoundTripIsSimilar(t *testing.T) {
	ind := buildMixedIndividual(t)
	snap, err := ind.ToSnapshot()
	require.NoError(t, err)

	encoded, err := codec.EncodeText(snap)
	require.NoError(t, err)

	decoded, err := codec.DecodeText(encoded)
	require.NoError(t, err)

	restored, err := individual.FromSnapshot(decoded, nil)
	require.NoError(t, err)

	require.True(t, ind.Similar(restored, 1e-10))
}

func TestRegisterTraitTypeRegistersTypeTag(t *testing.T) {
	type customTrait struct{ Label string }
	codec.RegisterTraitType(customTrait{})
	require.True(t, codec.IsRegistered("codec_test.customTrait"))
}
