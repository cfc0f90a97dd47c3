package random

import (
	"context"
	"math"
	"math/rand"

	"github.com/Connerlevi/evo-core/random/metrics"
)

func generateUniformPacket(rng *rand.Rand, size int) []float64 {
	out := make([]float64, size)
	for i := range out {
		out[i] = rng.Float64()
	}
	return out
}

// generateGaussPacket derives standard-normal samples from pairs of
// uniform draws via Box-Muller, per spec §4.2 ("NG worker tasks producing
// standard-Gaussian packets (derived from two uniform packets via
// Box-Muller)").
func generateGaussPacket(rng *rand.Rand, size int) []float64 {
	out := make([]float64, size)
	for i := 0; i < size; i += 2 {
		u1 := rng.Float64()
		if u1 < 1e-12 {
			u1 = 1e-12
		}
		u2 := rng.Float64()
		r := math.Sqrt(-2 * math.Log(u1))
		theta := 2 * math.Pi * u2
		out[i] = r * math.Cos(theta)
		if i+1 < size {
			out[i+1] = r * math.Sin(theta)
		}
	}
	return out
}

// runUniformWorker produces uniform packets until ctx is cancelled, pushing
// each onto out. It never blocks past ctx cancellation: the producer side
// of the bounded FIFO (spec §5, "Shared-resource policy").
func runUniformWorker(ctx context.Context, id int, rng *rand.Rand, size int, out chan<- []float64, m *metrics.Collectors) error {
	for {
		select {
		case <-ctx.Done():
			m.WorkerExits.WithLabelValues("uniform", "cancelled").Inc()
			return ctx.Err()
		default:
		}
		packet := generateUniformPacket(rng, size)
		select {
		case out <- packet:
			m.PacketsProduced.WithLabelValues("uniform").Inc()
		case <-ctx.Done():
			m.WorkerExits.WithLabelValues("uniform", "cancelled").Inc()
			return ctx.Err()
		}
	}
}

func runGaussWorker(ctx context.Context, id int, rng *rand.Rand, size int, out chan<- []float64, m *metrics.Collectors) error {
	for {
		select {
		case <-ctx.Done():
			m.WorkerExits.WithLabelValues("gauss", "cancelled").Inc()
			return ctx.Err()
		default:
		}
		packet := generateGaussPacket(rng, size)
		select {
		case out <- packet:
			m.PacketsProduced.WithLabelValues("gauss").Inc()
		case <-ctx.Done():
			m.WorkerExits.WithLabelValues("gauss", "cancelled").Inc()
			return ctx.Err()
		}
	}
}
