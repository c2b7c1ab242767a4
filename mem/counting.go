package mem

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/joshuapare/memkit/internal/unsafeutil"
)

// Counting is a Mechanism that forwards to a delegate and keeps accounting of
// the blocks outstanding (allocated but not yet freed). It is the mechanism
// to hand to tests that need to observe a proxy's allocation traffic, and to
// long-lived components that want leak detection at shutdown.
//
// Counting is safe for concurrent use when its delegate is.
type Counting struct {
	delegate Mechanism

	mu          sync.Mutex
	live        map[unsafe.Pointer]int // block address -> block size
	outstanding int
	bytes       int
}

// NewCounting creates a Counting mechanism forwarding to delegate. A nil
// delegate forwards to the process default.
func NewCounting(delegate Mechanism) *Counting {
	return &Counting{
		delegate: Or(delegate),
		live:     make(map[unsafe.Pointer]int),
	}
}

// Allocate forwards to the delegate and records the returned block.
func (c *Counting) Allocate(size int) []byte {
	b := c.delegate.Allocate(size)

	c.mu.Lock()
	c.live[unsafeutil.SliceAddr(b)] = size
	c.outstanding++
	c.bytes += size
	c.mu.Unlock()

	return b
}

// Free forwards to the delegate and drops the block from the accounting.
// Freeing a block this mechanism never allocated panics with ErrForeignBlock
// wrapped in context; that is a caller contract violation, not a recoverable
// condition.
func (c *Counting) Free(b []byte) {
	addr := unsafeutil.SliceAddr(b)

	c.mu.Lock()
	size, ok := c.live[addr]
	if ok {
		delete(c.live, addr)
		c.outstanding--
		c.bytes -= size
	}
	c.mu.Unlock()

	if !ok {
		panic(fmt.Errorf("%w: free of %p", ErrForeignBlock, addr))
	}
	c.delegate.Free(b)
}

// Outstanding returns the number of blocks allocated but not yet freed.
func (c *Counting) Outstanding() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outstanding
}

// AllocatedBytes returns the total requested size, in bytes, of the
// outstanding blocks. Delegate over-allocation (alignment padding) is not
// counted.
func (c *Counting) AllocatedBytes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bytes
}

// Delegate returns the mechanism this one forwards to.
func (c *Counting) Delegate() Mechanism { return c.delegate }

// CheckEmpty returns nil when no blocks are outstanding, and an error
// wrapping ErrOutstanding otherwise.
func (c *Counting) CheckEmpty() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.outstanding != 0 {
		return fmt.Errorf("%w: %d blocks, %d bytes", ErrOutstanding, c.outstanding, c.bytes)
	}
	return nil
}

// Compile-time interface check
var _ Mechanism = (*Counting)(nil)
