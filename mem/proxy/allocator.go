package proxy

import (
	"math"
	"unsafe"

	"github.com/joshuapare/memkit/internal/unsafeutil"
	"github.com/joshuapare/memkit/mem"
)

// Allocator is a copyable, comparable handle that forwards element-typed
// allocation calls to the mem.Mechanism it was constructed with. It holds
// the mechanism by non-owning reference: copying an Allocator copies only
// the reference, destroying one has no effect on the mechanism, and the
// mechanism's lifetime is controlled entirely by its other holders.
//
// Because the mechanism is chosen at run time, two Allocator[T] values of
// the identical type may forward to different mechanisms. Go's == on two
// Allocator[T] values is exactly mechanism identity, and Same extends that
// comparison across element types. Code that moves storage between two
// holders must check Same at run time first; it can never be inferred from
// the types.
//
// The zero Allocator is not bound to any mechanism and must not be used;
// construct with New, For, Rebind, or Over.
type Allocator[T any] struct {
	mechanism mem.Mechanism
}

// New returns an Allocator bound to the process-wide default mechanism.
func New[T any]() Allocator[T] {
	return Allocator[T]{mechanism: mem.Default()}
}

// For returns an Allocator forwarding to m. A nil m binds to the process
// default instead, so the returned Allocator is always bound.
func For[T any](m mem.Mechanism) Allocator[T] {
	return Allocator[T]{mechanism: mem.Or(m)}
}

// Rebind returns the Allocator[U] sharing a's mechanism. This is how a
// container obtains an allocator for an internal element type (a node, a
// bucket header) while preserving the allocation strategy it was given:
//
//	nodes := proxy.Rebind[node](a)
//
// The result compares Same as a.
func Rebind[U, T any](a Allocator[T]) Allocator[U] {
	return Allocator[U]{mechanism: a.mechanism}
}

// Mechanism returns the mechanism this Allocator forwards to.
func (a Allocator[T]) Mechanism() mem.Mechanism { return a.mechanism }

// Is reports whether this Allocator forwards to exactly m.
func (a Allocator[T]) Is(m mem.Mechanism) bool { return a.mechanism == m }

// Erase returns the type-erased Handle bound to the same mechanism.
func (a Allocator[T]) Erase() Handle { return Handle{mechanism: a.mechanism} }

// Allocate returns storage for n elements of type T, suitably aligned, with
// unspecified contents. The byte count n*sizeof(T) is forwarded to the
// mechanism; an n of zero returns nil without touching it. n greater than
// MaxSize (or negative) panics. Allocation failure propagates as whatever
// panic the mechanism raises.
func (a Allocator[T]) Allocate(n int) []T {
	if n == 0 {
		return nil
	}
	if n < 0 || n > a.MaxSize() {
		panic("proxy: element count out of range")
	}
	size := int(unsafe.Sizeof(*new(T)))
	if size == 0 {
		// Zero-sized elements occupy no storage; nothing to forward.
		return make([]T, n)
	}
	return unsafeutil.SliceOf[T](a.mechanism.Allocate(n*size), n)
}

// Deallocate returns storage previously obtained from Allocate on this
// Allocator, or on one comparing Same, to the mechanism. Passing storage
// from a non-Same allocator is undefined behavior. A nil or empty s is a
// no-op.
func (a Allocator[T]) Deallocate(s []T) {
	if len(s) == 0 || unsafe.Sizeof(*new(T)) == 0 {
		return
	}
	a.mechanism.Free(unsafeutil.BytesOf(&s[0], len(s)))
}

// Construct places v into the unconstructed slot at p. No allocation
// occurs; p must point at correctly sized and aligned storage for a T.
func (a Allocator[T]) Construct(p *T, v T) {
	*p = v
}

// Destroy ends the life of the value at p without releasing its storage,
// resetting the slot to the zero T so it drops any references it held.
func (a Allocator[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

// Address returns the true address of the object at p, obtained through a
// byte-level view of its storage.
func (a Allocator[T]) Address(p *T) *T {
	return unsafeutil.AddressOf(p)
}

// MaxSize returns the largest element count whose byte size is
// representable in the mechanism's count type. Sizes in Go are signed ints,
// so only half the unsigned range is usable: MaxInt bytes, divided by the
// element size. MaxSize makes no promise that an allocation of that many
// elements will succeed.
func (a Allocator[T]) MaxSize() int {
	size := int(unsafe.Sizeof(*new(T)))
	if size == 0 {
		return math.MaxInt
	}
	return math.MaxInt / size
}
