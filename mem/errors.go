package mem

import "errors"

var (
	// ErrOutstanding indicates blocks allocated through a Counting mechanism
	// that were never freed.
	ErrOutstanding = errors.New("mem: outstanding allocations")

	// ErrForeignBlock indicates a block passed to Free that this mechanism
	// did not allocate (or has already freed).
	ErrForeignBlock = errors.New("mem: block not allocated by this mechanism")

	// ErrBadSize indicates a negative allocation size.
	ErrBadSize = errors.New("mem: allocation size must be non-negative")
)
