package random_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/Connerlevi/evo-core/random"
)

func newTestService(t *testing.T, cfg random.Config) *random.Service {
	t.Helper()
	svc := random.New(cfg, prometheus.NewRegistry(), zerolog.Nop())
	require.NoError(t, svc.Start(context.Background()))
	t.Cleanup(func() {
		require.NoError(t, svc.Stop())
	})
	return svc
}

func TestServiceStartStopIsClean(t *testing.T) {
	cfg := random.DefaultConfig()
	cfg.PacketSize = 16
	cfg.PacketBuffer = 2
	svc := newTestService(t, cfg)
	require.NotNil(t, svc.Handle())
}

func TestHandleDrawsStayInExpectedRange(t *testing.T) {
	cfg := random.DefaultConfig()
	cfg.PacketSize = 16
	cfg.PacketBuffer = 2
	svc := newTestService(t, cfg)
	h := svc.Handle()

	for i := 0; i < 200; i++ {
		v := h.Even(-3, 3)
		require.GreaterOrEqual(t, v, -3.0)
		require.Less(t, v, 3.0)

		n := h.IntIn(10, 20)
		require.GreaterOrEqual(t, n, 10)
		require.Less(t, n, 20)

		a := h.Ascii(true)
		require.GreaterOrEqual(t, a, byte(32))
		require.LessOrEqual(t, a, byte(126))
	}
}

func TestHandleFallsBackUnderTinyTimeout(t *testing.T) {
	cfg := random.Config{
		UniformProducers: 1,
		GaussProducers:   1,
		PacketSize:       4,
		PacketBuffer:     1,
		AcquireTimeout:   time.Nanosecond,
	}
	svc := newTestService(t, cfg)
	h := svc.Handle()

	for i := 0; i < 50; i++ {
		_ = h.Even(0, 1)
	}
}
