package mem

import "sync/atomic"

// defaultMech holds the process-wide default mechanism. It stays nil until
// the first read, at which point a Heap is installed (lazy, once per
// process). Stored behind a pointer so the interface value swaps atomically.
var defaultMech atomic.Pointer[Mechanism]

// Default returns the currently installed process-wide default mechanism,
// installing a Heap on first use. Proxies constructed without an explicit
// mechanism bind to the value returned here at their construction time;
// changing the default later does not rebind them.
func Default() Mechanism {
	if p := defaultMech.Load(); p != nil {
		return *p
	}
	m := Mechanism(NewHeap())
	if defaultMech.CompareAndSwap(nil, &m) {
		return m
	}
	return *defaultMech.Load()
}

// SetDefault installs m as the process-wide default mechanism and returns
// the previously installed one. A nil m restores a fresh Heap. Intended for
// process setup and for tests, which should restore the previous value.
func SetDefault(m Mechanism) Mechanism {
	prev := Default()
	if m == nil {
		m = NewHeap()
	}
	defaultMech.Store(&m)
	return prev
}

// Or returns m unless it is nil, in which case it returns the process
// default. This is the fallback rule every proxy constructor applies.
func Or(m Mechanism) Mechanism {
	if m == nil {
		return Default()
	}
	return m
}
