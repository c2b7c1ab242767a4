// Package unsafeutil holds the raw storage-reinterpretation helpers shared by
// the mem packages: taking the true address of an object through a byte-level
// view of its storage, and converting typed element storage to and from the
// byte slices that allocation mechanisms traffic in.
//
// Everything here produces pointers that are numerically identical to the
// storage they alias; nothing allocates.
package unsafeutil

import "unsafe"

// AddressOf returns the address of the object at p, obtained through a
// byte-level view of its storage rather than through p directly. The result
// is numerically identical to p for every object type.
func AddressOf[T any](p *T) *T {
	return (*T)(unsafe.Pointer((*byte)(unsafe.Pointer(p))))
}

// SliceAddr returns the address of the backing array of s.
func SliceAddr[T any](s []T) unsafe.Pointer {
	return unsafe.Pointer(unsafe.SliceData(s))
}

// SliceOf reinterprets the first n*sizeof(T) bytes of b as a slice of n
// elements of type T. b must be at least that long and aligned for T.
func SliceOf[T any](b []byte, n int) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// BytesOf reinterprets the n elements starting at p as their underlying
// bytes. The returned slice aliases the elements' storage.
func BytesOf[T any](p *T, n int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n*int(unsafe.Sizeof(*p)))
}
