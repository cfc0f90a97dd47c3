package carrier

import (
	"fmt"

	"github.com/Connerlevi/evo-core/adaptor"
	"github.com/Connerlevi/evo-core/internal/evoerr"
)

// AdaptorSnapshot is the exported, encoding-agnostic representation of one
// named adaptor attached to a carrier (spec §4.7: "registers the concrete
// type of every polymorphic pointer"). Exactly one of the state pointers
// is non-nil, selected by Tag.
type AdaptorSnapshot struct {
	Tag  string
	Name string

	Gaussian *adaptor.GaussianState `json:",omitempty"`
	BitFlip  *adaptor.BitFlipState  `json:",omitempty"`
	Swarm    *adaptor.SwarmState    `json:",omitempty"`
	Plain    *adaptor.State         `json:",omitempty"`
}

func adaptorToSnapshot[T any](name string, a adaptor.Adaptor[T]) AdaptorSnapshot {
	switch v := any(a).(type) {
	case *adaptor.GaussianDouble:
		st := v.State()
		return AdaptorSnapshot{Tag: "GaussianDouble", Name: name, Gaussian: &st}
	case *adaptor.GaussianInt32:
		st := v.State()
		return AdaptorSnapshot{Tag: "GaussianInt32", Name: name, Gaussian: &st}
	case *adaptor.BitFlip:
		st := v.State()
		return AdaptorSnapshot{Tag: "BitFlip", Name: name, BitFlip: &st}
	case *adaptor.IntFlip:
		st := v.State()
		return AdaptorSnapshot{Tag: "IntFlip", Name: name, Plain: &st}
	case *adaptor.Swarm:
		st := v.State()
		return AdaptorSnapshot{Tag: "Swarm", Name: name, Swarm: &st}
	case *adaptor.Identity[T]:
		st := v.State()
		return AdaptorSnapshot{Tag: "Identity", Name: name, Plain: &st}
	default:
		return AdaptorSnapshot{Tag: "Unknown", Name: name}
	}
}

func adaptorFromSnapshot[T any](snap AdaptorSnapshot) (adaptor.Adaptor[T], error) {
	var result any
	switch snap.Tag {
	case "GaussianDouble":
		result = adaptor.RestoreGaussianDouble(*snap.Gaussian)
	case "GaussianInt32":
		result = adaptor.RestoreGaussianInt32(*snap.Gaussian)
	case "BitFlip":
		result = adaptor.RestoreBitFlip(*snap.BitFlip)
	case "IntFlip":
		result = adaptor.RestoreIntFlip(*snap.Plain)
	case "Swarm":
		result = adaptor.RestoreSwarm(*snap.Swarm)
	case "Identity":
		result = adaptor.RestoreIdentity[T](*snap.Plain)
	default:
		return nil, fmt.Errorf("carrier: unknown adaptor tag %q: %w", snap.Tag, evoerr.ErrSerialization)
	}
	typed, ok := result.(adaptor.Adaptor[T])
	if !ok {
		return nil, fmt.Errorf("carrier: adaptor tag %q incompatible with value type: %w", snap.Tag, evoerr.ErrTypeMismatch)
	}
	return typed, nil
}

func (s *adaptorSet[T]) toSnapshots() []AdaptorSnapshot {
	out := make([]AdaptorSnapshot, len(s.entries))
	for i, e := range s.entries {
		out[i] = adaptorToSnapshot(e.name, e.a)
	}
	return out
}

func (s *adaptorSet[T]) restoreFromSnapshots(snaps []AdaptorSnapshot) error {
	entries := make([]namedAdaptor[T], len(snaps))
	for i, sn := range snaps {
		a, err := adaptorFromSnapshot[T](sn)
		if err != nil {
			return err
		}
		entries[i] = namedAdaptor[T]{name: sn.Name, a: a}
	}
	s.entries = entries
	return nil
}

// BoundedScalarSnapshot is the exported state of a BoundedScalar.
type BoundedScalarSnapshot struct {
	InternalValue, Lower, Upper float64
}

// Snapshot is the exported, encoding-agnostic representation of any
// Carrier, tagged by Kind. Exactly the fields relevant to Kind are
// populated; the codec package encodes this directly rather than each
// concrete carrier type.
type Snapshot struct {
	Kind Kind

	Bool                    *bool
	NumericDouble           *float64
	NumericInt32            *int32
	NumericCollectionDouble []float64
	NumericCollectionInt32  []int32
	BitCollection           []bool
	BoundedScalar           *BoundedScalarSnapshot
	CarrierCollection       []Snapshot

	Adaptors []AdaptorSnapshot `json:",omitempty"`
}

// ToSnapshot converts any concrete Carrier into its exported
// representation.
func ToSnapshot(c Carrier) (Snapshot, error) {
	switch v := c.(type) {
	case *Bool:
		val := v.value
		return Snapshot{Kind: KindBool, Bool: &val, Adaptors: v.adaptors.toSnapshots()}, nil
	case *Numeric[float64]:
		val := v.value
		return Snapshot{Kind: KindNumericDouble, NumericDouble: &val, Adaptors: v.adaptors.toSnapshots()}, nil
	case *Numeric[int32]:
		val := v.value
		return Snapshot{Kind: KindNumericInt32, NumericInt32: &val, Adaptors: v.adaptors.toSnapshots()}, nil
	case *NumericCollection[float64]:
		return Snapshot{Kind: KindNumericCollectionDouble, NumericCollectionDouble: v.ExternalValues(), Adaptors: v.adaptors.toSnapshots()}, nil
	case *NumericCollection[int32]:
		return Snapshot{Kind: KindNumericCollectionInt32, NumericCollectionInt32: v.ExternalValues(), Adaptors: v.adaptors.toSnapshots()}, nil
	case *BitCollection:
		return Snapshot{Kind: KindBitCollection, BitCollection: v.ExternalValues(), Adaptors: v.adaptors.toSnapshots()}, nil
	case *BoundedScalar:
		return Snapshot{Kind: KindBoundedScalar, BoundedScalar: &BoundedScalarSnapshot{
			InternalValue: v.internalValue, Lower: v.lower, Upper: v.upper,
		}, Adaptors: v.adaptors.toSnapshots()}, nil
	case *CarrierCollection:
		children := make([]Snapshot, len(v.children))
		for i, ch := range v.children {
			snap, err := ToSnapshot(ch)
			if err != nil {
				return Snapshot{}, err
			}
			children[i] = snap
		}
		return Snapshot{Kind: KindCarrierCollection, CarrierCollection: children}, nil
	default:
		return Snapshot{}, fmt.Errorf("carrier: unsupported concrete type %T: %w", c, evoerr.ErrSerialization)
	}
}

// FromSnapshot reconstructs a Carrier from its exported representation.
// The returned carrier has no random source attached; callers must call
// AttachSource before mutating it (spec §4.7: "deserialised objects
// re-attach to the process-wide service").
func FromSnapshot(s Snapshot) (Carrier, error) {
	switch s.Kind {
	case KindBool:
		if s.Bool == nil {
			return nil, fmt.Errorf("carrier: bool snapshot missing value: %w", evoerr.ErrSerialization)
		}
		c := NewBool(*s.Bool)
		if err := c.adaptors.restoreFromSnapshots(s.Adaptors); err != nil {
			return nil, err
		}
		return c, nil
	case KindNumericDouble:
		if s.NumericDouble == nil {
			return nil, fmt.Errorf("carrier: numeric double snapshot missing value: %w", evoerr.ErrSerialization)
		}
		c := NewNumeric(*s.NumericDouble)
		if err := c.adaptors.restoreFromSnapshots(s.Adaptors); err != nil {
			return nil, err
		}
		return c, nil
	case KindNumericInt32:
		if s.NumericInt32 == nil {
			return nil, fmt.Errorf("carrier: numeric int32 snapshot missing value: %w", evoerr.ErrSerialization)
		}
		c := NewNumeric(*s.NumericInt32)
		if err := c.adaptors.restoreFromSnapshots(s.Adaptors); err != nil {
			return nil, err
		}
		return c, nil
	case KindNumericCollectionDouble:
		c := NewNumericCollection(s.NumericCollectionDouble...)
		if err := c.adaptors.restoreFromSnapshots(s.Adaptors); err != nil {
			return nil, err
		}
		return c, nil
	case KindNumericCollectionInt32:
		c := NewNumericCollection(s.NumericCollectionInt32...)
		if err := c.adaptors.restoreFromSnapshots(s.Adaptors); err != nil {
			return nil, err
		}
		return c, nil
	case KindBitCollection:
		c := NewBitCollection(s.BitCollection...)
		if err := c.adaptors.restoreFromSnapshots(s.Adaptors); err != nil {
			return nil, err
		}
		return c, nil
	case KindBoundedScalar:
		if s.BoundedScalar == nil {
			return nil, fmt.Errorf("carrier: bounded scalar snapshot missing state: %w", evoerr.ErrSerialization)
		}
		c := &BoundedScalar{
			internalValue: s.BoundedScalar.InternalValue,
			lower:         s.BoundedScalar.Lower,
			upper:         s.BoundedScalar.Upper,
		}
		if err := c.adaptors.restoreFromSnapshots(s.Adaptors); err != nil {
			return nil, err
		}
		return c, nil
	case KindCarrierCollection:
		children := make([]Carrier, len(s.CarrierCollection))
		for i, chSnap := range s.CarrierCollection {
			child, err := FromSnapshot(chSnap)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}
		return &CarrierCollection{children: children}, nil
	default:
		return nil, fmt.Errorf("carrier: unknown kind %v: %w", s.Kind, evoerr.ErrSerialization)
	}
}
