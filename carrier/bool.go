package carrier

import (
	"fmt"

	"github.com/Connerlevi/evo-core/adaptor"
	"github.com/Connerlevi/evo-core/internal/evoerr"
)

// Bool is a single boolean parameter (spec §3, carrier variant 1).
type Bool struct {
	value    bool
	adaptors adaptorSet[bool]
}

func NewBool(initial bool) *Bool {
	return &Bool{value: initial}
}

func (b *Bool) Kind() Kind { return KindBool }

func (b *Bool) Len() int { return 1 }

func (b *Bool) Value() bool { return b.value }

func (b *Bool) SetValue(v bool) { b.value = v }

// ExternalValue returns the value as seen by the objective function;
// identical to Value for every carrier except BoundedScalar (spec §4.4).
func (b *Bool) ExternalValue() bool { return b.value }

func (b *Bool) AddAdaptor(name string, a adaptor.Adaptor[bool]) error {
	return b.adaptors.add(name, a)
}

func (b *Bool) Mutate() error {
	return b.adaptors.mutate(&b.value)
}

func (b *Bool) AttachSource(s Source) { b.adaptors.attachSource(s) }

func (b *Bool) CloneSame() Carrier {
	return &Bool{value: b.value, adaptors: b.adaptors.clone()}
}

func (b *Bool) LoadFrom(other Carrier) error {
	o, ok := other.(*Bool)
	if !ok {
		return fmt.Errorf("carrier: load Bool from %T: %w", other, evoerr.ErrTypeMismatch)
	}
	if o == b {
		return evoerr.ErrSelfAssignment
	}
	b.value = o.value
	return b.adaptors.loadFrom(&o.adaptors)
}

func (b *Bool) Equal(other Carrier) bool {
	o, ok := other.(*Bool)
	return ok && b.value == o.value && b.adaptors.equal(&o.adaptors)
}

func (b *Bool) Similar(other Carrier, eps float64) bool {
	o, ok := other.(*Bool)
	return ok && b.value == o.value && b.adaptors.similar(&o.adaptors, eps)
}
