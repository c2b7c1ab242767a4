// Package mem defines the raw allocation-mechanism seam of memkit and the
// mechanisms that ship with it.
//
// # Overview
//
// A Mechanism is a strategy object that hands out and takes back raw byte
// blocks. Code that needs typed, element-count allocation never talks to a
// Mechanism directly; it holds a proxy.Allocator handle (see
// github.com/joshuapare/memkit/mem/proxy) that forwards to the mechanism it
// was constructed with. That split is the point of the design: containers
// and components are written once against the proxy shape, and the actual
// allocation strategy is picked at run time by supplying a different
// Mechanism.
//
// # Implementations
//
// Heap: Go-heap backed, stateless
//
//   - Blocks come from make, aligned to Alignment
//   - Free is a no-op; the collector reclaims blocks
//   - Installed as the process default on first use
//
// Counting: accounting decorator
//
//   - Wraps any other mechanism (nil = process default)
//   - Tracks outstanding blocks and bytes
//   - CheckEmpty reports leaks; freeing a foreign block panics
//
// Other strategies (arenas, pools, bump pointers) plug in by implementing
// the two-method Mechanism interface; this package deliberately ships only
// the default and the accounting decorator.
//
// # Default Mechanism
//
// The process-wide default is established lazily and read with Default.
// SetDefault swaps it, typically once during process setup:
//
//	prev := mem.SetDefault(myArena)
//	defer mem.SetDefault(prev)
//
// Proxies capture the default at construction time; swapping the default
// never rebinds an existing proxy.
//
// # Failure Model
//
// Allocate reports failure by panicking, and callers must be prepared for
// the panic to unwind through them. Free always succeeds. There are no
// retries and no partial states; see the package errors for the sentinel
// values Counting uses.
//
// # Thread Safety
//
// Heap and the default registry are safe for concurrent use. Counting is
// safe when its delegate is. Nothing in this package synchronizes access to
// the contents of allocated blocks; that is the caller's discipline.
package mem
