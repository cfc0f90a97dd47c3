package foldmath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Connerlevi/evo-core/internal/foldmath"
)

func TestFoldIdentityOnFundamentalDomain(t *testing.T) {
	for _, x := range []float64{-10, -3.5, 0, 7, 10} {
		require.Equal(t, x, foldmath.Fold(x, -10, 10))
	}
}

func TestFoldReflectsOutOfRangeValues(t *testing.T) {
	cases := []struct{ x, want float64 }{
		{15, 5},
		{25, -5},
		{-15, -5},
		{-25, 5},
	}
	for _, c := range cases {
		got := foldmath.Fold(c.x, -10, 10)
		require.InDelta(t, c.want, got, 1e-9, "fold(%g)", c.x)
	}
}

func TestFoldStaysWithinBounds(t *testing.T) {
	for x := -1000.0; x <= 1000.0; x += 7.3 {
		got := foldmath.Fold(x, -4, 9)
		require.GreaterOrEqual(t, got, -4.0)
		require.LessOrEqual(t, got, 9.0)
	}
}
