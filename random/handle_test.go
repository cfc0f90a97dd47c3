package random_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Connerlevi/evo-core/random"
)

func TestHandleIDsAreUnique(t *testing.T) {
	cfg := random.DefaultConfig()
	cfg.PacketSize = 8
	svc := random.New(cfg, prometheus.NewRegistry(), zerolog.Nop())

	a := svc.Handle()
	b := svc.Handle()
	require.NotEqual(t, a.ID(), b.ID())
}

func TestHandleGaussIsRoughlyCentered(t *testing.T) {
	cfg := random.DefaultConfig()
	cfg.PacketSize = 64
	svc := random.New(cfg, prometheus.NewRegistry(), zerolog.Nop())
	require.NoError(t, svc.Start(context.Background()))
	t.Cleanup(func() { require.NoError(t, svc.Stop()) })

	h := svc.Handle()
	sum := 0.0
	const n = 2000
	for i := 0; i < n; i++ {
		sum += h.Gauss(0, 1)
	}
	mean := sum / n
	require.InDelta(t, 0.0, mean, 0.25)
}
