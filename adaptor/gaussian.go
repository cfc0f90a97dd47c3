package adaptor

import (
	"fmt"
	"math"

	"github.com/Connerlevi/evo-core/internal/evoerr"
)

// sigmaState holds the Gaussian step-width meta-parameters shared by both
// GaussianDouble and GaussianInt32 (spec §3, "Gaussian adaptor extra
// state").
type sigmaState struct {
	sigma    float64
	sigmaMin float64
	sigmaMax float64
	rate     float64
}

func newSigmaState(cfg GaussianConfig) (sigmaState, error) {
	if cfg.SigmaMin <= 0 || cfg.SigmaMin > cfg.Sigma || cfg.Sigma > cfg.SigmaMax || cfg.SigmaAdaptionRate <= 0 {
		return sigmaState{}, fmt.Errorf(
			"adaptor: sigma bounds %g<=%g<=%g rate=%g: %w",
			cfg.SigmaMin, cfg.Sigma, cfg.SigmaMax, cfg.SigmaAdaptionRate, evoerr.ErrInvalidConfiguration,
		)
	}
	return sigmaState{sigma: cfg.Sigma, sigmaMin: cfg.SigmaMin, sigmaMax: cfg.SigmaMax, rate: cfg.SigmaAdaptionRate}, nil
}

func (s *sigmaState) selfAdapt(z float64) {
	next := s.sigma * math.Exp(s.rate*z)
	if math.IsNaN(next) || math.IsInf(next, 0) {
		next = s.sigma
	}
	s.sigma = clampFloat(next, s.sigmaMin, s.sigmaMax)
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (s *sigmaState) equal(o *sigmaState) bool {
	return s.sigma == o.sigma && s.sigmaMin == o.sigmaMin && s.sigmaMax == o.sigmaMax && s.rate == o.rate
}

func (s *sigmaState) similar(o *sigmaState, eps float64) bool {
	return absDiff(s.sigma, o.sigma) <= eps && absDiff(s.sigmaMin, o.sigmaMin) <= eps &&
		absDiff(s.sigmaMax, o.sigmaMax) <= eps && absDiff(s.rate, o.rate) <= eps
}

// GaussianState is the exported snapshot of a Gaussian adaptor's full
// state, used by package codec to round-trip GaussianDouble/GaussianInt32
// without depending on their unexported fields.
type GaussianState struct {
	Base                                          State
	Sigma, SigmaMin, SigmaMax, SigmaAdaptionRate float64
}

// GaussianDouble mutates a float64 value by adding sigma*Z, Z ~ N(0,1),
// and periodically self-adapts sigma (spec §4.3).
type GaussianDouble struct {
	Base[float64]
	sigmaState
}

// NewGaussianDouble constructs a GaussianDouble from cfg, validating the
// sigma bounds and mutation probability up front (spec §4.3, "Setters
// perform validation on construction").
func NewGaussianDouble(cfg GaussianConfig) (*GaussianDouble, error) {
	ss, err := newSigmaState(cfg)
	if err != nil {
		return nil, err
	}
	g := &GaussianDouble{Base: newBase[float64](), sigmaState: ss}
	if err := g.SetProbability(cfg.Probability); err != nil {
		return nil, err
	}
	if err := g.SetMode(cfg.Mode); err != nil {
		return nil, err
	}
	g.SetAdaptionThreshold(cfg.AdaptionThreshold)
	return g, nil
}

func (g *GaussianDouble) Kind() Kind { return KindGaussianDouble }

// State returns a snapshot of g's full state.
func (g *GaussianDouble) State() GaussianState {
	return GaussianState{Base: g.Base.State(), Sigma: g.sigma, SigmaMin: g.sigmaMin, SigmaMax: g.sigmaMax, SigmaAdaptionRate: g.rate}
}

// RestoreGaussianDouble rebuilds a GaussianDouble from a previously
// captured State.
func RestoreGaussianDouble(st GaussianState) *GaussianDouble {
	g := &GaussianDouble{
		Base:       newBase[float64](),
		sigmaState: sigmaState{sigma: st.Sigma, sigmaMin: st.SigmaMin, sigmaMax: st.SigmaMax, rate: st.SigmaAdaptionRate},
	}
	g.Base.restore(st.Base)
	return g
}

func (g *GaussianDouble) Sigma() float64 { return g.sigma }

func (g *GaussianDouble) Mutate(v *float64) error {
	if g.shouldMutate() {
		z := g.rng.Gauss(0, 1)
		*v += g.sigma * z
	}
	if g.tick() {
		z := g.rng.Gauss(0, 1)
		g.selfAdapt(z)
	}
	return nil
}

func (g *GaussianDouble) MutateSequence(values []float64) error {
	for i := range values {
		if err := g.Mutate(&values[i]); err != nil {
			return err
		}
		g.advanceIndex()
	}
	return nil
}

func (g *GaussianDouble) CloneSame() Adaptor[float64] {
	cp := *g
	return &cp
}

func (g *GaussianDouble) LoadFrom(other Adaptor[float64]) error {
	o, ok := other.(*GaussianDouble)
	if !ok {
		return fmt.Errorf("adaptor: load GaussianDouble from %T: %w", other, evoerr.ErrTypeMismatch)
	}
	if o == g {
		return evoerr.ErrSelfAssignment
	}
	g.Base.loadFrom(&o.Base)
	g.sigmaState = o.sigmaState
	return nil
}

func (g *GaussianDouble) Equal(other Adaptor[float64]) bool {
	o, ok := other.(*GaussianDouble)
	return ok && g.Base.equal(&o.Base) && g.sigmaState.equal(&o.sigmaState)
}

func (g *GaussianDouble) Similar(other Adaptor[float64], eps float64) bool {
	o, ok := other.(*GaussianDouble)
	return ok && g.Base.similar(&o.Base, eps) && g.sigmaState.similar(&o.sigmaState, eps)
}

// GaussianInt32 mutates an int32 value by adding round(sigma*Z) and folds
// the sign of the increment when it would overflow (spec §4.3).
type GaussianInt32 struct {
	Base[int32]
	sigmaState
}

func NewGaussianInt32(cfg GaussianConfig) (*GaussianInt32, error) {
	ss, err := newSigmaState(cfg)
	if err != nil {
		return nil, err
	}
	g := &GaussianInt32{Base: newBase[int32](), sigmaState: ss}
	if err := g.SetProbability(cfg.Probability); err != nil {
		return nil, err
	}
	if err := g.SetMode(cfg.Mode); err != nil {
		return nil, err
	}
	g.SetAdaptionThreshold(cfg.AdaptionThreshold)
	return g, nil
}

func (g *GaussianInt32) Kind() Kind { return KindGaussianInt32 }

// State returns a snapshot of g's full state.
func (g *GaussianInt32) State() GaussianState {
	return GaussianState{Base: g.Base.State(), Sigma: g.sigma, SigmaMin: g.sigmaMin, SigmaMax: g.sigmaMax, SigmaAdaptionRate: g.rate}
}

// RestoreGaussianInt32 rebuilds a GaussianInt32 from a previously captured
// State.
func RestoreGaussianInt32(st GaussianState) *GaussianInt32 {
	g := &GaussianInt32{
		Base:       newBase[int32](),
		sigmaState: sigmaState{sigma: st.Sigma, sigmaMin: st.SigmaMin, sigmaMax: st.SigmaMax, rate: st.SigmaAdaptionRate},
	}
	g.Base.restore(st.Base)
	return g
}

func (g *GaussianInt32) Sigma() float64 { return g.sigma }

func (g *GaussianInt32) Mutate(v *int32) error {
	if g.shouldMutate() {
		z := g.rng.Gauss(0, 1)
		delta := int64(math.Round(g.sigma * z))
		*v = addInt32WithFold(*v, delta)
	}
	if g.tick() {
		z := g.rng.Gauss(0, 1)
		g.selfAdapt(z)
	}
	return nil
}

// addInt32WithFold adds delta to v, flipping the sign of delta if applying
// it as given would overflow int32 (spec §4.3: "Integer variants detect
// over/underflow and fold the sign of the increment when necessary").
func addInt32WithFold(v int32, delta int64) int32 {
	sum := int64(v) + delta
	if sum > math.MaxInt32 || sum < math.MinInt32 {
		sum = int64(v) - delta
		if sum > math.MaxInt32 {
			sum = math.MaxInt32
		}
		if sum < math.MinInt32 {
			sum = math.MinInt32
		}
	}
	return int32(sum)
}

func (g *GaussianInt32) MutateSequence(values []int32) error {
	for i := range values {
		if err := g.Mutate(&values[i]); err != nil {
			return err
		}
		g.advanceIndex()
	}
	return nil
}

func (g *GaussianInt32) CloneSame() Adaptor[int32] {
	cp := *g
	return &cp
}

func (g *GaussianInt32) LoadFrom(other Adaptor[int32]) error {
	o, ok := other.(*GaussianInt32)
	if !ok {
		return fmt.Errorf("adaptor: load GaussianInt32 from %T: %w", other, evoerr.ErrTypeMismatch)
	}
	if o == g {
		return evoerr.ErrSelfAssignment
	}
	g.Base.loadFrom(&o.Base)
	g.sigmaState = o.sigmaState
	return nil
}

func (g *GaussianInt32) Equal(other Adaptor[int32]) bool {
	o, ok := other.(*GaussianInt32)
	return ok && g.Base.equal(&o.Base) && g.sigmaState.equal(&o.sigmaState)
}

func (g *GaussianInt32) Similar(other Adaptor[int32], eps float64) bool {
	o, ok := other.(*GaussianInt32)
	return ok && g.Base.similar(&o.Base, eps) && g.sigmaState.similar(&o.sigmaState, eps)
}
