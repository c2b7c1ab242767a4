package mem

// Alignment is the minimum alignment, in bytes, of every block returned by a
// Mechanism. 16 is at least the alignment of every Go scalar and composite
// type, so a block can hold elements of any type.
const Alignment = 16

// Mechanism defines the interface for a raw memory allocation strategy.
//
// Implementations:
//   - Heap: Go-heap backed, the process-wide default
//   - Counting: accounting decorator for tests and leak detection
//
// A Mechanism is consumed through proxy.Allocator handles, which forward
// element-count requests to it as byte counts. Mechanisms are compared by
// identity: two proxies interoperate (one may release what the other
// allocated) only when they reference the identical Mechanism value.
type Mechanism interface {
	// Allocate returns a block of at least size bytes, aligned to Alignment.
	// The block's contents are unspecified. Allocation failure is reported
	// by panicking; Allocate never returns a short block.
	Allocate(size int) []byte

	// Free releases a block previously returned by Allocate on this same
	// mechanism. Passing any other slice is undefined behavior. Free has no
	// failure mode.
	Free(b []byte)
}
