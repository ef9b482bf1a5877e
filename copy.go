package ptr

import "github.com/brickingsoft/ptr/pkg/memory"

// CopyNonoverlapping copies count elements from src to dst.
//
// [src, src+count) and [dst, dst+count) must not overlap at all; if they do
// the destination content is undefined. Neither address nor count is
// validated.
func CopyNonoverlapping[T any](dst MutPointer[T], src Pointer[T], count uint) {
	n := uintptr(count) * SizeOf[T]()
	memory.Memcpy(dst.UnsafePointer(), src.UnsafePointer(), n)
}

// Copy copies count elements from src to dst. The ranges may overlap in
// either direction; the result is as if src were first copied into a
// temporary buffer.
func Copy[T any](dst MutPointer[T], src Pointer[T], count uint) {
	n := uintptr(count) * SizeOf[T]()
	memory.Memmove(dst.UnsafePointer(), src.UnsafePointer(), n)
}
