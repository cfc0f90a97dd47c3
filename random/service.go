// Package random implements the process-wide random number service (spec
// component C1, "RandomService"): a bounded-buffer producer/consumer
// pipeline of pre-generated uniform and Gaussian packets, with cooperative
// cancellation and a local-generation fallback on packet-acquire timeout.
package random

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"
	"golang.org/x/sync/errgroup"

	"github.com/Connerlevi/evo-core/random/metrics"
)

// Service is the process-wide random number producer. Construct one with
// New, call Start to spin up its worker pool, and Stop to tear it down.
// Consumers obtain a *Handle via Handle and never touch the Service
// directly thereafter.
type Service struct {
	cfg     Config
	metrics *metrics.Collectors
	logger  zerolog.Logger
	throttle *fallbackThrottle

	uniformCh chan []float64
	gaussCh   chan []float64

	uniformBreaker *gobreaker.CircuitBreaker
	gaussBreaker   *gobreaker.CircuitBreaker

	cancel context.CancelFunc
	group  *errgroup.Group
}

// New constructs a Service. reg is the Prometheus registerer the
// component's counters attach to (pass prometheus.NewRegistry() in tests
// to avoid colliding with the default global registry); logger may be the
// zero value, which is a no-op sink.
func New(cfg Config, reg prometheus.Registerer, logger zerolog.Logger) *Service {
	if cfg.UniformProducers < 1 {
		cfg.UniformProducers = 1
	}
	if cfg.GaussProducers < 1 {
		cfg.GaussProducers = 1
	}
	if cfg.PacketSize < 1 {
		cfg.PacketSize = 1000
	}
	if cfg.PacketBuffer < 1 {
		cfg.PacketBuffer = 1
	}
	if cfg.AcquireTimeout <= 0 {
		cfg.AcquireTimeout = 5 * time.Millisecond
	}

	breakerSettings := func(name string) gobreaker.Settings {
		return gobreaker.Settings{
			Name:        name,
			MaxRequests: 1,
			Interval:    time.Minute,
			Timeout:     2 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 8
			},
		}
	}

	return &Service{
		cfg:            cfg,
		metrics:        metrics.NewCollectors(reg),
		logger:         logger,
		throttle:       newFallbackThrottle(60),
		uniformCh:      make(chan []float64, cfg.PacketBuffer),
		gaussCh:        make(chan []float64, cfg.PacketBuffer),
		uniformBreaker: gobreaker.NewCircuitBreaker(breakerSettings("random-uniform-acquire")),
		gaussBreaker:   gobreaker.NewCircuitBreaker(breakerSettings("random-gauss-acquire")),
	}
}

// Start launches the worker pool and returns immediately; workers run
// until ctx is cancelled or Stop is called. Calling Start twice is an
// error.
func (s *Service) Start(ctx context.Context) error {
	if s.group != nil {
		return fmt.Errorf("random: service already started")
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	baseSeed := s.cfg.BaseSeed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	g, gctx := errgroup.WithContext(ctx)
	s.group = g

	for i := 0; i < s.cfg.UniformProducers; i++ {
		id := i
		rng := rand.New(rand.NewSource(baseSeed + int64(id)))
		g.Go(func() error {
			err := runUniformWorker(gctx, id, rng, s.cfg.PacketSize, s.uniformCh, s.metrics)
			if err != nil && err != context.Canceled {
				s.logger.Error().Err(err).Int("worker", id).Msg("uniform worker exited")
			}
			return err
		})
	}
	for i := 0; i < s.cfg.GaussProducers; i++ {
		id := i
		rng := rand.New(rand.NewSource(baseSeed + int64(1_000_000+id)))
		g.Go(func() error {
			err := runGaussWorker(gctx, id, rng, s.cfg.PacketSize, s.gaussCh, s.metrics)
			if err != nil && err != context.Canceled {
				s.logger.Error().Err(err).Int("worker", id).Msg("gauss worker exited")
			}
			return err
		})
	}
	s.logger.Info().Int("uniform_workers", s.cfg.UniformProducers).Int("gauss_workers", s.cfg.GaussProducers).Msg("random service started")
	return nil
}

// Stop interrupts all workers and blocks until they have joined (spec
// §4.2: "destruction of the service interrupts all workers and joins
// them").
func (s *Service) Stop() error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()
	err := s.group.Wait()
	if err == context.Canceled {
		return nil
	}
	return err
}

// Handle returns a fresh consumer handle bound to this service.
func (s *Service) Handle() *Handle {
	return newHandle(s)
}
