package carrier

import (
	"fmt"

	"github.com/Connerlevi/evo-core/adaptor"
	"github.com/Connerlevi/evo-core/internal/evoerr"
)

// NumericCollection is an ordered sequence of T sharing one adaptor list
// (spec §3, carrier variant 3): every element is mutated by the same
// adaptors in the same attachment order.
type NumericCollection[T adaptor.Real] struct {
	values   []T
	adaptors adaptorSet[T]
	rng      adaptor.Source
}

func NewNumericCollection[T adaptor.Real](initial ...T) *NumericCollection[T] {
	values := make([]T, len(initial))
	copy(values, initial)
	return &NumericCollection[T]{values: values}
}

func collectionKind[T adaptor.Real]() Kind {
	if numericKind[T]() == KindNumericDouble {
		return KindNumericCollectionDouble
	}
	return KindNumericCollectionInt32
}

func (c *NumericCollection[T]) Kind() Kind { return collectionKind[T]() }

func (c *NumericCollection[T]) Len() int { return len(c.values) }

func (c *NumericCollection[T]) ExternalValues() []T {
	out := make([]T, len(c.values))
	copy(out, c.values)
	return out
}

// At returns the element at i, failing with InvalidConfiguration-adjacent
// bounds checking rather than panicking, matching the spec's "indexed
// access with bounds checks".
func (c *NumericCollection[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(c.values) {
		return zero, fmt.Errorf("carrier: index %d out of range [0,%d): %w", i, len(c.values), evoerr.ErrInvalidConfiguration)
	}
	return c.values[i], nil
}

func (c *NumericCollection[T]) Set(i int, v T) error {
	if i < 0 || i >= len(c.values) {
		return fmt.Errorf("carrier: index %d out of range [0,%d): %w", i, len(c.values), evoerr.ErrInvalidConfiguration)
	}
	c.values[i] = v
	return nil
}

func (c *NumericCollection[T]) Push(v T) { c.values = append(c.values, v) }

func (c *NumericCollection[T]) Erase(i int) error {
	if i < 0 || i >= len(c.values) {
		return fmt.Errorf("carrier: erase index %d out of range [0,%d): %w", i, len(c.values), evoerr.ErrInvalidConfiguration)
	}
	c.values = append(c.values[:i], c.values[i+1:]...)
	return nil
}

func (c *NumericCollection[T]) Clear() { c.values = c.values[:0] }

func (c *NumericCollection[T]) Find(v T) int {
	for i, x := range c.values {
		if x == v {
			return i
		}
	}
	return -1
}

func (c *NumericCollection[T]) Count(v T) int {
	n := 0
	for _, x := range c.values {
		if x == v {
			n++
		}
	}
	return n
}

// CrossOver exchanges the prefixes up to pos between c and other, the
// classic single-point crossover (spec §4.4). Both collections must have
// at least pos elements.
func (c *NumericCollection[T]) CrossOver(other *NumericCollection[T], pos int) error {
	if pos < 0 || pos > len(c.values) || pos > len(other.values) {
		return fmt.Errorf("carrier: cross_over position %d exceeds collection length: %w", pos, evoerr.ErrInvalidConfiguration)
	}
	for i := 0; i < pos; i++ {
		c.values[i], other.values[i] = other.values[i], c.values[i]
	}
	return nil
}

// RandomFill appends n elements, each the attached source's Even(lo, hi)
// draw (uniform on [lo, hi)) converted to T.
func (c *NumericCollection[T]) RandomFill(n int, lo, hi float64) error {
	if c.rng == nil {
		return fmt.Errorf("carrier: random_fill with no attached source: %w", evoerr.ErrInvalidConfiguration)
	}
	for i := 0; i < n; i++ {
		c.values = append(c.values, T(c.rng.Even(lo, hi)))
	}
	return nil
}

func (c *NumericCollection[T]) AddAdaptor(name string, a adaptor.Adaptor[T]) error {
	return c.adaptors.add(name, a)
}

func (c *NumericCollection[T]) Mutate() error {
	return c.adaptors.mutateSequence(c.values)
}

func (c *NumericCollection[T]) AttachSource(s Source) {
	c.rng = s
	c.adaptors.attachSource(s)
}

func (c *NumericCollection[T]) CloneSame() Carrier {
	values := make([]T, len(c.values))
	copy(values, c.values)
	return &NumericCollection[T]{values: values, adaptors: c.adaptors.clone(), rng: c.rng}
}

func (c *NumericCollection[T]) LoadFrom(other Carrier) error {
	o, ok := other.(*NumericCollection[T])
	if !ok {
		return fmt.Errorf("carrier: load NumericCollection from %T: %w", other, evoerr.ErrTypeMismatch)
	}
	if o == c {
		return evoerr.ErrSelfAssignment
	}
	c.values = make([]T, len(o.values))
	copy(c.values, o.values)
	return c.adaptors.loadFrom(&o.adaptors)
}

func (c *NumericCollection[T]) Equal(other Carrier) bool {
	o, ok := other.(*NumericCollection[T])
	if !ok || len(c.values) != len(o.values) {
		return false
	}
	for i := range c.values {
		if c.values[i] != o.values[i] {
			return false
		}
	}
	return c.adaptors.equal(&o.adaptors)
}

func (c *NumericCollection[T]) Similar(other Carrier, eps float64) bool {
	o, ok := other.(*NumericCollection[T])
	if !ok || len(c.values) != len(o.values) {
		return false
	}
	for i := range c.values {
		diff := float64(c.values[i]) - float64(o.values[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > eps {
			return false
		}
	}
	return c.adaptors.similar(&o.adaptors, eps)
}
