package carrier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Connerlevi/evo-core/carrier"
)

func TestBoundedScalarIdentityOnFundamentalDomain(t *testing.T) {
	bs, err := carrier.NewBoundedScalar(3, -10, 10)
	require.NoError(t, err)
	require.Equal(t, 3.0, bs.ExternalValue())
}

func TestBoundedScalarRangeInvariant(t *testing.T) {
	bs, err := carrier.NewBoundedScalar(0, -1, 1)
	require.NoError(t, err)
	for _, v := range []float64{0.5, -0.5, 1, -1} {
		require.NoError(t, bs.SetExternalValue(v))
		ext := bs.ExternalValue()
		require.GreaterOrEqual(t, ext, -1.0)
		require.LessOrEqual(t, ext, 1.0)
	}
}

func TestBoundedScalarRejectsOutOfRangeAssignment(t *testing.T) {
	bs, err := carrier.NewBoundedScalar(0, -1, 1)
	require.NoError(t, err)
	require.Error(t, bs.SetExternalValue(2))
}

func TestBoundedScalarSetBoundsResetsInternalOrFails(t *testing.T) {
	bs, err := carrier.NewBoundedScalar(5, 0, 10)
	require.NoError(t, err)
	require.NoError(t, bs.SetBounds(0, 20))
	require.Equal(t, 5.0, bs.ExternalValue())

	require.Error(t, bs.SetBounds(6, 10))
}
