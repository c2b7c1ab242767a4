package mem

import (
	"github.com/joshuapare/memkit/internal/unsafeutil"
)

// Heap is a Mechanism backed by the Go heap. Blocks come from make and are
// reclaimed by the collector, so Free is a no-op. Heap is stateless and safe
// for concurrent use; it is the mechanism the default registry installs when
// nothing else has been chosen.
type Heap struct{}

// NewHeap creates a new Heap mechanism. All Heap values are interchangeable,
// but proxies compare mechanisms by identity, so callers that want two
// proxies to compare equal must share one Heap rather than construct two.
func NewHeap() *Heap { return &Heap{} }

// Allocate returns a block of at least size bytes aligned to Alignment.
// The Go runtime aligns small allocations to 8 bytes, so the buffer is
// over-allocated and sliced forward to the next Alignment boundary.
func (*Heap) Allocate(size int) []byte {
	if size < 0 {
		panic(ErrBadSize)
	}
	buf := make([]byte, size+Alignment)
	addr := uintptr(unsafeutil.SliceAddr(buf))
	if shift := int(-addr & (Alignment - 1)); shift != 0 {
		return buf[shift : size+shift : size+shift]
	}
	return buf[:size:size]
}

// Free releases nothing: the block is collector-managed and dies when the
// last reference to it does.
func (*Heap) Free(b []byte) {}

// Compile-time interface check
var _ Mechanism = (*Heap)(nil)
