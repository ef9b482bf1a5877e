// Package bytex converts between strings and byte slices without copying.
package bytex

import (
	"unsafe"

	"github.com/brickingsoft/ptr"
)

// FromString views s as bytes. The result shares memory with s and must
// never be written to.
func FromString(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return Bytes(StringData(s), len(s))
}

// ToString views b as a string. b must not change while the string is in use.
func ToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return String(ptr.FromSlice(b).Const(), len(b))
}

// StringData returns the address of the first byte of s.
func StringData(s string) ptr.Pointer[byte] {
	return ptr.AddressOf(unsafe.StringData(s))
}

// Bytes returns the n bytes starting at p as a slice.
func Bytes(p ptr.Pointer[byte], n int) []byte {
	return ptr.AssumeMut(p).Slice(n)
}

// String returns the n bytes starting at p as a string.
func String(p ptr.Pointer[byte], n int) string {
	return unsafe.String((*byte)(p.UnsafePointer()), n)
}
