// Package memory is the byte-granular copy boundary under package ptr.
// Callers compute byte counts; nothing here knows about element types.
package memory

import "unsafe"

// Memcpy copies n bytes from src to dst and returns dst.
// [src, src+n) and [dst, dst+n) must not overlap.
func Memcpy(dst, src unsafe.Pointer, n uintptr) unsafe.Pointer {
	if n == 0 {
		return dst
	}
	copy(unsafe.Slice((*byte)(dst), n), unsafe.Slice((*byte)(src), n))
	return dst
}

// Memmove copies n bytes from src to dst and returns dst.
// The ranges may overlap.
func Memmove(dst, src unsafe.Pointer, n uintptr) unsafe.Pointer {
	if n == 0 {
		return dst
	}
	memmove(dst, src, n)
	return dst
}
