package carrier

import (
	"fmt"

	"github.com/Connerlevi/evo-core/adaptor"
	"github.com/Connerlevi/evo-core/internal/evoerr"
)

// namedAdaptor pairs an attachment name with the adaptor registered under
// it, preserving attachment order for §4.4's "composed in attachment
// order" rule.
type namedAdaptor[T any] struct {
	name string
	a    adaptor.Adaptor[T]
}

// adaptorSet is the adaptor list every carrier variant embeds, generic
// over the leaf value type it mutates. It is not exported: each concrete
// carrier exposes whatever subset of AddAdaptor/Adaptors makes sense for
// its own public API.
type adaptorSet[T any] struct {
	entries []namedAdaptor[T]
}

func (s *adaptorSet[T]) add(name string, a adaptor.Adaptor[T]) error {
	for _, e := range s.entries {
		if e.name == name {
			return fmt.Errorf("carrier: adaptor name %q: %w", name, evoerr.ErrDuplicateAdaptor)
		}
	}
	s.entries = append(s.entries, namedAdaptor[T]{name: name, a: a})
	return nil
}

func (s *adaptorSet[T]) byName(name string) (adaptor.Adaptor[T], bool) {
	for _, e := range s.entries {
		if e.name == name {
			return e.a, true
		}
	}
	return nil, false
}

func (s *adaptorSet[T]) mutate(v *T) error {
	for _, e := range s.entries {
		if err := e.a.Mutate(v); err != nil {
			return err
		}
	}
	return nil
}

func (s *adaptorSet[T]) mutateSequence(values []T) error {
	for _, e := range s.entries {
		if err := e.a.MutateSequence(values); err != nil {
			return err
		}
	}
	return nil
}

func (s *adaptorSet[T]) attachSource(src adaptor.Source) {
	for _, e := range s.entries {
		e.a.AttachSource(src)
	}
}

// loadFrom implements §4.4's clone/load rule: if other has the same number
// of adaptors with the same runtime kinds in the same order, each is
// loaded in place to preserve internal buffers (e.g. accumulated sigma);
// otherwise the whole list is rebuilt by cloning.
func (s *adaptorSet[T]) loadFrom(other *adaptorSet[T]) error {
	sameShape := len(s.entries) == len(other.entries)
	if sameShape {
		for i := range s.entries {
			if s.entries[i].name != other.entries[i].name || s.entries[i].a.Kind() != other.entries[i].a.Kind() {
				sameShape = false
				break
			}
		}
	}
	if sameShape {
		for i := range s.entries {
			if err := s.entries[i].a.LoadFrom(other.entries[i].a); err != nil {
				return err
			}
		}
		return nil
	}
	rebuilt := make([]namedAdaptor[T], len(other.entries))
	for i, e := range other.entries {
		rebuilt[i] = namedAdaptor[T]{name: e.name, a: e.a.CloneSame()}
	}
	s.entries = rebuilt
	return nil
}

func (s *adaptorSet[T]) equal(other *adaptorSet[T]) bool {
	if len(s.entries) != len(other.entries) {
		return false
	}
	for i := range s.entries {
		if s.entries[i].name != other.entries[i].name || !s.entries[i].a.Equal(other.entries[i].a) {
			return false
		}
	}
	return true
}

func (s *adaptorSet[T]) similar(other *adaptorSet[T], eps float64) bool {
	if len(s.entries) != len(other.entries) {
		return false
	}
	for i := range s.entries {
		if s.entries[i].name != other.entries[i].name || !s.entries[i].a.Similar(other.entries[i].a, eps) {
			return false
		}
	}
	return true
}

func (s *adaptorSet[T]) clone() adaptorSet[T] {
	cp := adaptorSet[T]{entries: make([]namedAdaptor[T], len(s.entries))}
	for i, e := range s.entries {
		cp.entries[i] = namedAdaptor[T]{name: e.name, a: e.a.CloneSame()}
	}
	return cp
}
