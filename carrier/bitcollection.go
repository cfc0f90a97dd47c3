package carrier

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/Connerlevi/evo-core/adaptor"
	"github.com/Connerlevi/evo-core/internal/evoerr"
)

// BitCollection is an ordered sequence of booleans (spec §3, carrier
// variant 4), stored compactly in a bitset.BitSet rather than a []bool so
// that large bit vectors (the common case for genetic-algorithm genomes)
// don't cost a byte per bit.
type BitCollection struct {
	bits     *bitset.BitSet
	length   uint
	adaptors adaptorSet[bool]
	rng      adaptor.Source
}

func NewBitCollection(initial ...bool) *BitCollection {
	bc := &BitCollection{bits: bitset.New(uint(len(initial))), length: uint(len(initial))}
	for i, b := range initial {
		if b {
			bc.bits.Set(uint(i))
		}
	}
	return bc
}

func (bc *BitCollection) Kind() Kind { return KindBitCollection }

func (bc *BitCollection) Len() int { return int(bc.length) }

func (bc *BitCollection) At(i int) (bool, error) {
	if i < 0 || uint(i) >= bc.length {
		return false, fmt.Errorf("carrier: index %d out of range [0,%d): %w", i, bc.length, evoerr.ErrInvalidConfiguration)
	}
	return bc.bits.Test(uint(i)), nil
}

func (bc *BitCollection) Set(i int, v bool) error {
	if i < 0 || uint(i) >= bc.length {
		return fmt.Errorf("carrier: index %d out of range [0,%d): %w", i, bc.length, evoerr.ErrInvalidConfiguration)
	}
	if v {
		bc.bits.Set(uint(i))
	} else {
		bc.bits.Clear(uint(i))
	}
	return nil
}

func (bc *BitCollection) Push(v bool) {
	if v {
		bc.bits.Set(bc.length)
	}
	bc.length++
}

func (bc *BitCollection) Count() uint { return bc.bits.Count() }

func (bc *BitCollection) ExternalValues() []bool {
	out := make([]bool, bc.length)
	for i := range out {
		out[i] = bc.bits.Test(uint(i))
	}
	return out
}

// RandomFill appends n Bernoulli(prob) bits.
func (bc *BitCollection) RandomFill(n int, prob float64) error {
	if bc.rng == nil {
		return fmt.Errorf("carrier: random_fill with no attached source: %w", evoerr.ErrInvalidConfiguration)
	}
	for i := 0; i < n; i++ {
		bc.Push(bc.rng.BoolWithProb(prob))
	}
	return nil
}

func (bc *BitCollection) AddAdaptor(name string, a adaptor.Adaptor[bool]) error {
	return bc.adaptors.add(name, a)
}

func (bc *BitCollection) Mutate() error {
	values := bc.ExternalValues()
	if err := bc.adaptors.mutateSequence(values); err != nil {
		return err
	}
	for i, v := range values {
		if err := bc.Set(i, v); err != nil {
			return err
		}
	}
	return nil
}

func (bc *BitCollection) AttachSource(s Source) {
	bc.rng = s
	bc.adaptors.attachSource(s)
}

func (bc *BitCollection) CloneSame() Carrier {
	cp := &BitCollection{bits: bc.bits.Clone(), length: bc.length, adaptors: bc.adaptors.clone(), rng: bc.rng}
	return cp
}

func (bc *BitCollection) LoadFrom(other Carrier) error {
	o, ok := other.(*BitCollection)
	if !ok {
		return fmt.Errorf("carrier: load BitCollection from %T: %w", other, evoerr.ErrTypeMismatch)
	}
	if o == bc {
		return evoerr.ErrSelfAssignment
	}
	bc.bits = o.bits.Clone()
	bc.length = o.length
	return bc.adaptors.loadFrom(&o.adaptors)
}

func (bc *BitCollection) Equal(other Carrier) bool {
	o, ok := other.(*BitCollection)
	return ok && bc.length == o.length && bc.bits.Equal(o.bits) && bc.adaptors.equal(&o.adaptors)
}

func (bc *BitCollection) Similar(other Carrier, eps float64) bool {
	o, ok := other.(*BitCollection)
	return ok && bc.length == o.length && bc.bits.Equal(o.bits) && bc.adaptors.similar(&o.adaptors, eps)
}
