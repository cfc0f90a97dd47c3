package carrier

import (
	"fmt"

	"github.com/Connerlevi/evo-core/internal/evoerr"
)

// CarrierCollection groups an ordered sequence of typed sub-carriers,
// used for structural grouping such as a neural network's layers (spec
// §3, carrier variant 6). Mutate recursively delegates to each child.
type CarrierCollection struct {
	children []Carrier
}

func NewCarrierCollection(children ...Carrier) *CarrierCollection {
	cc := &CarrierCollection{children: make([]Carrier, len(children))}
	copy(cc.children, children)
	return cc
}

func (cc *CarrierCollection) Kind() Kind { return KindCarrierCollection }

func (cc *CarrierCollection) Len() int { return len(cc.children) }

func (cc *CarrierCollection) At(i int) (Carrier, error) {
	if i < 0 || i >= len(cc.children) {
		return nil, fmt.Errorf("carrier: index %d out of range [0,%d): %w", i, len(cc.children), evoerr.ErrInvalidConfiguration)
	}
	return cc.children[i], nil
}

func (cc *CarrierCollection) Push(c Carrier) { cc.children = append(cc.children, c) }

func (cc *CarrierCollection) Mutate() error {
	for _, c := range cc.children {
		if err := c.Mutate(); err != nil {
			return err
		}
	}
	return nil
}

func (cc *CarrierCollection) AttachSource(s Source) {
	for _, c := range cc.children {
		c.AttachSource(s)
	}
}

func (cc *CarrierCollection) CloneSame() Carrier {
	cp := &CarrierCollection{children: make([]Carrier, len(cc.children))}
	for i, c := range cc.children {
		cp.children[i] = c.CloneSame()
	}
	return cp
}

func (cc *CarrierCollection) LoadFrom(other Carrier) error {
	o, ok := other.(*CarrierCollection)
	if !ok {
		return fmt.Errorf("carrier: load CarrierCollection from %T: %w", other, evoerr.ErrTypeMismatch)
	}
	if o == cc {
		return evoerr.ErrSelfAssignment
	}
	children := make([]Carrier, len(o.children))
	for i, c := range o.children {
		children[i] = c.CloneSame()
	}
	cc.children = children
	return nil
}

func (cc *CarrierCollection) Equal(other Carrier) bool {
	o, ok := other.(*CarrierCollection)
	if !ok || len(cc.children) != len(o.children) {
		return false
	}
	for i := range cc.children {
		if !cc.children[i].Equal(o.children[i]) {
			return false
		}
	}
	return true
}

func (cc *CarrierCollection) Similar(other Carrier, eps float64) bool {
	o, ok := other.(*CarrierCollection)
	if !ok || len(cc.children) != len(o.children) {
		return false
	}
	for i := range cc.children {
		if !cc.children[i].Similar(o.children[i], eps) {
			return false
		}
	}
	return true
}
