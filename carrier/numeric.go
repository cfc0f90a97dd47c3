package carrier

import (
	"fmt"

	"github.com/Connerlevi/evo-core/adaptor"
	"github.com/Connerlevi/evo-core/internal/evoerr"
)

// Numeric is a single scalar of leaf type T, double or int32 (spec §3,
// carrier variant 2).
type Numeric[T adaptor.Real] struct {
	value    T
	adaptors adaptorSet[T]
}

func NewNumeric[T adaptor.Real](initial T) *Numeric[T] {
	return &Numeric[T]{value: initial}
}

func numericKind[T adaptor.Real]() Kind {
	var zero T
	switch any(zero).(type) {
	case float64:
		return KindNumericDouble
	default:
		return KindNumericInt32
	}
}

func (n *Numeric[T]) Kind() Kind { return numericKind[T]() }

func (n *Numeric[T]) Len() int { return 1 }

func (n *Numeric[T]) Value() T { return n.value }

func (n *Numeric[T]) SetValue(v T) { n.value = v }

func (n *Numeric[T]) ExternalValue() T { return n.value }

func (n *Numeric[T]) AddAdaptor(name string, a adaptor.Adaptor[T]) error {
	return n.adaptors.add(name, a)
}

func (n *Numeric[T]) Mutate() error {
	return n.adaptors.mutate(&n.value)
}

func (n *Numeric[T]) AttachSource(s Source) { n.adaptors.attachSource(s) }

func (n *Numeric[T]) CloneSame() Carrier {
	return &Numeric[T]{value: n.value, adaptors: n.adaptors.clone()}
}

func (n *Numeric[T]) LoadFrom(other Carrier) error {
	o, ok := other.(*Numeric[T])
	if !ok {
		return fmt.Errorf("carrier: load Numeric from %T: %w", other, evoerr.ErrTypeMismatch)
	}
	if o == n {
		return evoerr.ErrSelfAssignment
	}
	n.value = o.value
	return n.adaptors.loadFrom(&o.adaptors)
}

func (n *Numeric[T]) Equal(other Carrier) bool {
	o, ok := other.(*Numeric[T])
	return ok && n.value == o.value && n.adaptors.equal(&o.adaptors)
}

func (n *Numeric[T]) Similar(other Carrier, eps float64) bool {
	o, ok := other.(*Numeric[T])
	if !ok {
		return false
	}
	if n.value == o.value {
		return n.adaptors.similar(&o.adaptors, eps)
	}
	diff := float64(n.value) - float64(o.value)
	if diff < 0 {
		diff = -diff
	}
	return diff <= eps && n.adaptors.similar(&o.adaptors, eps)
}
