//go:build purego

package memory

import "unsafe"

// memmove falls back to copy(), which is overlap-safe.
func memmove(to, from unsafe.Pointer, n uintptr) {
	copy(unsafe.Slice((*byte)(to), n), unsafe.Slice((*byte)(from), n))
}
