package proxy

import "github.com/joshuapare/memkit/mem"

// Bound is anything carrying a mechanism binding: every Allocator[T] and
// Handle satisfies it. It exists so Same can compare bindings across
// element types.
type Bound interface {
	Mechanism() mem.Mechanism
}

// Same reports whether a and b forward to the identical mechanism. This is
// the only equality that matters between allocator handles: it holds or
// fails independently of the element types involved, and it is the
// run-time check a container must make before assuming storage allocated
// through one handle may be released through the other.
func Same(a, b Bound) bool {
	return a.Mechanism() == b.Mechanism()
}

// Handle is the type-erased allocator proxy: the same mechanism binding and
// equality semantics as Allocator[T], with no element-typed operations. It
// is the form to store when a component needs to carry an allocation
// strategy without committing to an element type, and the rebinding target
// for crossing between element types.
//
// The zero Handle is unbound; construct with NewHandle, HandleFor, or
// Allocator.Erase.
type Handle struct {
	mechanism mem.Mechanism
}

// NewHandle returns a Handle bound to the process-wide default mechanism.
func NewHandle() Handle {
	return Handle{mechanism: mem.Default()}
}

// HandleFor returns a Handle forwarding to m, or to the process default if
// m is nil.
func HandleFor(m mem.Mechanism) Handle {
	return Handle{mechanism: mem.Or(m)}
}

// Over returns the Allocator[T] bound to h's mechanism.
func Over[T any](h Handle) Allocator[T] {
	return Allocator[T]{mechanism: h.mechanism}
}

// Mechanism returns the mechanism this Handle is bound to.
func (h Handle) Mechanism() mem.Mechanism { return h.mechanism }

// Is reports whether this Handle is bound to exactly m.
func (h Handle) Is(m mem.Mechanism) bool { return h.mechanism == m }
