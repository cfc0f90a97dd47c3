package carrier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Connerlevi/evo-core/adaptor"
	"github.com/Connerlevi/evo-core/carrier"
)

func TestCarrierCollectionMutateRecursesIntoChildren(t *testing.T) {
	bc := carrier.NewBitCollection(false, false)
	bf, err := adaptor.NewBitFlip(adaptor.BitFlipConfig{Config: adaptor.Config{Probability: 1, Mode: adaptor.Probabilistic}})
	require.NoError(t, err)
	require.NoError(t, bc.AddAdaptor("flip", bf))

	nc := carrier.NewNumericCollection[float64](1, 2, 3)

	cc := carrier.NewCarrierCollection(bc, nc)
	cc.AttachSource(fakeSource{})

	require.NoError(t, cc.Mutate())
	require.Equal(t, 2, cc.Len())

	child, err := cc.At(0)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true}, child.(*carrier.BitCollection).ExternalValues())
}

func TestCarrierCollectionCloneIsIndependent(t *testing.T) {
	nc := carrier.NewNumericCollection[float64](1, 2)
	cc := carrier.NewCarrierCollection(nc)

	cp := cc.CloneSame().(*carrier.CarrierCollection)
	require.True(t, cc.Equal(cp))

	child, err := cp.At(0)
	require.NoError(t, err)
	require.NoError(t, child.(*carrier.NumericCollection[float64]).Set(0, 99))
	require.False(t, cc.Equal(cp))
}

func TestCarrierCollectionLoadFromRejectsTypeMismatch(t *testing.T) {
	cc := carrier.NewCarrierCollection()
	other := carrier.NewBitCollection(false)
	require.Error(t, cc.LoadFrom(other))
}
