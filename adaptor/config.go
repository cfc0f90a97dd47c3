package adaptor

// Config carries the probability/mode/self-adaption settings shared by
// every adaptor kind (spec §6's configuration table), following the
// teacher's plain-struct-plus-DefaultXConfig convention
// (mutation-engine-v2.go's MutationConfig/DefaultMutationConfig).
type Config struct {
	Probability       float64
	Mode              Mode
	AdaptionThreshold uint32
}

// DefaultConfig returns the adaptor defaults from spec §3: probability 0,
// Probabilistic mode, self-adaption disabled.
func DefaultConfig() Config {
	return Config{
		Probability:       0,
		Mode:              Probabilistic,
		AdaptionThreshold: 0,
	}
}

// GaussianConfig adds the Gaussian step-width parameters to Config.
type GaussianConfig struct {
	Config
	Sigma             float64
	SigmaMin          float64
	SigmaMax          float64
	SigmaAdaptionRate float64
}

// DefaultGaussianConfig returns conservative Gaussian defaults: a modest
// step width bounded well away from zero, and a gentle self-adaption
// rate.
func DefaultGaussianConfig() GaussianConfig {
	return GaussianConfig{
		Config:            DefaultConfig(),
		Sigma:             0.1,
		SigmaMin:          1e-4,
		SigmaMax:          1,
		SigmaAdaptionRate: 1e-3,
	}
}
