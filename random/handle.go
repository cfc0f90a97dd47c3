package random

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

var errAcquireTimeout = errors.New("random: packet acquire timed out")

// Handle is a single consumer's thin view of a Service: its own packet
// cursor and a private fallback generator, safe to use from one goroutine
// at a time (spec §4.2, "consumer handles are safe to use from one task
// each").
type Handle struct {
	id  string
	svc *Service

	uniformPacket []float64
	uniformCursor int
	gaussPacket   []float64
	gaussCursor   int

	localRng *rand.Rand
}

func newHandle(s *Service) *Handle {
	return &Handle{
		id:       uuid.NewString(),
		svc:      s,
		localRng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ID identifies the handle, used as the fallback throttle's bucket key and
// as the "handle" field of fallback warning log lines.
func (h *Handle) ID() string { return h.id }

func (h *Handle) nextUniform() float64 {
	if h.uniformCursor >= len(h.uniformPacket) {
		h.uniformPacket = h.acquire(h.svc.uniformCh, h.svc.uniformBreaker, generateUniformPacket)
		h.uniformCursor = 0
	}
	v := h.uniformPacket[h.uniformCursor]
	h.uniformCursor++
	return v
}

func (h *Handle) nextGauss() float64 {
	if h.gaussCursor >= len(h.gaussPacket) {
		h.gaussPacket = h.acquire(h.svc.gaussCh, h.svc.gaussBreaker, generateGaussPacket)
		h.gaussCursor = 0
	}
	v := h.gaussPacket[h.gaussCursor]
	h.gaussCursor++
	return v
}

// acquire pulls a packet from ch, bounded by the service's configured
// timeout; on timeout (or while the breaker is open from repeated recent
// timeouts) it falls back to generating a packet locally rather than
// stalling the caller (spec §4.2).
func (h *Handle) acquire(ch chan []float64, breaker interface {
	Execute(func() (interface{}, error)) (interface{}, error)
}, localGen func(*rand.Rand, int) []float64) []float64 {
	result, err := breaker.Execute(func() (interface{}, error) {
		select {
		case p := <-ch:
			return p, nil
		case <-time.After(h.svc.cfg.AcquireTimeout):
			return nil, errAcquireTimeout
		}
	})
	if err == nil {
		return result.([]float64)
	}

	h.svc.metrics.FallbackServed.Inc()
	if h.svc.throttle.allow(h.id) {
		h.svc.logger.Warn().Str("handle", h.id).Err(err).Msg("random: serving packet from local fallback")
	}
	return localGen(h.localRng, h.svc.cfg.PacketSize)
}

// Even draws from the uniform distribution on [lo, hi).
func (h *Handle) Even(lo, hi float64) float64 {
	return lo + h.nextUniform()*(hi-lo)
}

// Gauss draws from N(mu, sigma^2).
func (h *Handle) Gauss(mu, sigma float64) float64 {
	return mu + h.nextGauss()*sigma
}

// BoolWithProb returns true with probability p.
func (h *Handle) BoolWithProb(p float64) bool {
	return h.nextUniform() < p
}

// IntIn draws a uniform integer in [lo, hiExclusive).
func (h *Handle) IntIn(lo, hiExclusive int) int {
	if hiExclusive <= lo {
		return lo
	}
	span := float64(hiExclusive - lo)
	return lo + int(h.nextUniform()*span)
}

const asciiPrintableLo, asciiPrintableHi = 32, 126

// Ascii draws a random byte, restricted to the printable ASCII range when
// printable is true.
func (h *Handle) Ascii(printable bool) byte {
	if printable {
		return byte(h.IntIn(asciiPrintableLo, asciiPrintableHi+1))
	}
	return byte(h.IntIn(0, 256))
}
