// Package carrier implements the polymorphic parameter holders (spec
// component C4, "ParameterCarrier") and the bounded-scalar folding map
// (component C5, "BoundedMap"). Each concrete carrier owns zero or more
// named adaptors over its own value type and exposes the uniform Carrier
// interface so an Individual can hold a mixed, ordered sequence of them
// without knowing each one's concrete leaf type.
package carrier

import "github.com/Connerlevi/evo-core/adaptor"

// Kind tags a carrier's concrete representation, used by the codec as a
// type tag and by child_at-style typed accessors to fail fast on a
// mismatched request.
type Kind int

const (
	KindBool Kind = iota
	KindNumericDouble
	KindNumericInt32
	KindNumericCollectionDouble
	KindNumericCollectionInt32
	KindBitCollection
	KindBoundedScalar
	KindCarrierCollection
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindNumericDouble:
		return "NumericDouble"
	case KindNumericInt32:
		return "NumericInt32"
	case KindNumericCollectionDouble:
		return "NumericCollectionDouble"
	case KindNumericCollectionInt32:
		return "NumericCollectionInt32"
	case KindBitCollection:
		return "BitCollection"
	case KindBoundedScalar:
		return "BoundedScalar"
	case KindCarrierCollection:
		return "CarrierCollection"
	default:
		return "Unknown"
	}
}

// Source is the random number source every carrier forwards to its
// adaptors, mirroring adaptor.Source so callers can attach *random.Handle
// without carrier importing the random package.
type Source = adaptor.Source

// Carrier is the uniform interface every concrete parameter holder
// implements (spec §4.4). Mutate applies the carrier's own adaptor(s) in
// attachment order; Len reports the element count (1 for scalar kinds).
type Carrier interface {
	Kind() Kind
	Mutate() error
	Len() int
	AttachSource(s Source)
	CloneSame() Carrier
	LoadFrom(other Carrier) error
	Equal(other Carrier) bool
	Similar(other Carrier, eps float64) bool
}
