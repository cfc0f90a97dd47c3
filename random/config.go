package random

import "time"

// Config configures a Service (spec §4.2, §6's n_uniform_producers /
// n_gauss_producers options).
type Config struct {
	UniformProducers int
	GaussProducers   int
	PacketSize       int
	PacketBuffer     int
	AcquireTimeout   time.Duration
	BaseSeed         int64 // 0 means derive from wall-clock at Start
}

// DefaultConfig mirrors the teacher's plain-struct-plus-defaults
// convention (mutation-engine-v2.go's DefaultMutationConfig).
func DefaultConfig() Config {
	return Config{
		UniformProducers: 2,
		GaussProducers:   2,
		PacketSize:       1000,
		PacketBuffer:     4,
		AcquireTimeout:   5 * time.Millisecond,
	}
}
