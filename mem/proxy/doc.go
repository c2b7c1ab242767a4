// Package proxy provides the run-time-polymorphic allocator handle of
// memkit.
//
// # Overview
//
// Allocator[T] is a small value type that adapts a mem.Mechanism into the
// allocator shape generic containers consume: element-count Allocate and
// Deallocate, single-slot Construct and Destroy, Address, and MaxSize. A
// container is parameterized once, at compile time, by Allocator[T]; the
// actual allocation strategy is chosen at run time by handing the container
// an Allocator constructed over a different mechanism. Two containers of
// the identical compile-time type can therefore allocate from different
// arenas, pools, or accounting wrappers.
//
// # Construction
//
//	a := proxy.New[Record]()        // process default mechanism
//	a := proxy.For[Record](arena)   // explicit mechanism (nil = default)
//	b := a                          // copy: same mechanism, a == b
//	n := proxy.Rebind[node](a)      // different element type, same mechanism
//
// An Allocator owns nothing. It never constructs, frees, or otherwise
// manages the mechanism it references; the mechanism's lifetime is
// controlled externally and normally exceeds every handle referring to it.
//
// # Equality
//
// Two handles are equal exactly when they reference the identical
// mechanism. For same-type handles that is Go's ==; across element types
// (and for Handle) it is Same; against a raw mechanism it is Is. The
// consequence, deliberate and inherited from the design this package
// implements: identical compile-time allocator types do NOT imply equal
// allocators. Generic code that transfers storage ownership between two
// container instances (move, swap, splice) must verify Same(a, b) at run
// time before transferring, and fall back to element-wise copy when it
// fails. "Fixing" this by making equality type-based would silently break
// that discipline, so it is preserved exactly.
//
// # Handle
//
// Handle is the degenerate, type-erased specialization: mechanism binding
// and equality only, no element-typed operations. Erase and Over convert
// between the two forms, always preserving the mechanism.
//
// # Failure Model
//
// Allocate panics when the mechanism reports exhaustion (the mechanism's
// own panic propagates untranslated) and when asked for more than MaxSize
// elements. Deallocate, Construct, Destroy, and Address have no failure
// mode; violating their preconditions (foreign storage, dead slots) is
// undefined behavior, detected only by instrumented mechanisms such as
// mem.Counting.
//
// # Thread Safety
//
// An Allocator holds no mutable state, so distinct handles may be used
// concurrently whenever the mechanisms behind them tolerate it. Sharing the
// storage the handles return is the caller's problem, as ever.
package proxy
