// Package codec implements the three interchangeable serialization
// encodings (spec component C7, "SerializationCodec"): Text (JSON), Xml
// (encoding/xml) and Binary (gob, brotli-compressed). Every encoding
// round-trips an *individual.Individual through its exported Snapshot
// representation; the random-service handle attached to any carrier is
// never part of the snapshot and must be reattached by the caller after
// decoding (spec §4.7).
package codec

import (
	"encoding/gob"
	"fmt"
	"sync"

	"github.com/Connerlevi/evo-core/internal/evoerr"
)

// Encoding selects one of the three interchangeable representations.
type Encoding int

const (
	Text Encoding = iota
	Xml
	Binary
)

func (e Encoding) String() string {
	switch e {
	case Text:
		return "Text"
	case Xml:
		return "Xml"
	case Binary:
		return "Binary"
	default:
		return "Unknown"
	}
}

var (
	registryMu sync.Mutex
	registry   = map[string]struct{}{}
)

// Register records tag as a known polymorphic type-tag. Every built-in
// adaptor kind is registered by this package's init; callers that stash
// custom concrete values inside an Individual's trait bag should call
// RegisterTraitType so Binary round-trips through the underlying gob
// encoder (spec §4.7: "registers the concrete type of every polymorphic
// pointer").
func Register(tag string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[tag] = struct{}{}
}

// IsRegistered reports whether tag was previously registered.
func IsRegistered(tag string) bool {
	registryMu.Lock()
	defer registryMu.Unlock()
	_, ok := registry[tag]
	return ok
}

// RegisterTraitType registers a concrete value's type with both this
// package's tag registry and the gob encoder used by Binary, so trait bag
// contents round-trip through an interface-typed map value.
func RegisterTraitType(sample any) {
	gob.Register(sample)
	Register(fmt.Sprintf("%T", sample))
}

func init() {
	for _, tag := range []string{"GaussianDouble", "GaussianInt32", "BitFlip", "IntFlip", "Identity", "Swarm"} {
		Register(tag)
	}
}

func wrapSerializationErr(op string, err error) error {
	return fmt.Errorf("codec: %s: %w: %w", op, err, evoerr.ErrSerialization)
}
