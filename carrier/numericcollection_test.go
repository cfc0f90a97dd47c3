package carrier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Connerlevi/evo-core/adaptor"
	"github.com/Connerlevi/evo-core/carrier"
)

type fakeSource struct{}

func (fakeSource) Even(lo, hi float64) float64  { return lo }
func (fakeSource) Gauss(mu, sigma float64) float64 { return mu + sigma }
func (fakeSource) BoolWithProb(p float64) bool  { return p >= 1 }

func TestNumericCollectionMutatePreservesCountAndType(t *testing.T) {
	c := carrier.NewNumericCollection(1.0, 2.0, 3.0)
	g, err := adaptor.NewGaussianDouble(adaptor.DefaultGaussianConfig())
	require.NoError(t, err)
	require.NoError(t, c.AddAdaptor("step", g))
	c.AttachSource(fakeSource{})

	require.NoError(t, c.Mutate())
	require.Equal(t, 3, c.Len())
}

func TestNumericCollectionCrossOver(t *testing.T) {
	a := carrier.NewNumericCollection[float64](1, 2, 3, 4)
	b := carrier.NewNumericCollection[float64](9, 8, 7, 6)
	require.NoError(t, a.CrossOver(b, 2))

	av := a.ExternalValues()
	bv := b.ExternalValues()
	require.Equal(t, []float64{9, 8, 3, 4}, av)
	require.Equal(t, []float64{1, 2, 7, 6}, bv)
}

func TestNumericCollectionDuplicateAdaptorNameRejected(t *testing.T) {
	c := carrier.NewNumericCollection[int32](1, 2)
	a1, _ := adaptor.NewIntFlip(adaptor.Config{Probability: 1, Mode: adaptor.Probabilistic})
	a2, _ := adaptor.NewIntFlip(adaptor.Config{Probability: 1, Mode: adaptor.Probabilistic})
	require.NoError(t, c.AddAdaptor("x", a1))
	require.Error(t, c.AddAdaptor("x", a2))
}

func TestBitCollectionMutateDeterministic(t *testing.T) {
	bc := carrier.NewBitCollection(false, false, false, false)
	bf, err := adaptor.NewBitFlip(adaptor.BitFlipConfig{Config: adaptor.Config{Probability: 1, Mode: adaptor.Probabilistic}})
	require.NoError(t, err)
	require.NoError(t, bc.AddAdaptor("flip", bf))
	bc.AttachSource(fakeSource{})

	require.NoError(t, bc.Mutate())
	require.Equal(t, []bool{true, true, true, true}, bc.ExternalValues())

	require.NoError(t, bc.Mutate())
	require.Equal(t, []bool{false, false, false, false}, bc.ExternalValues())
}
