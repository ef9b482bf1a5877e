//go:build 386 || arm || mips || mipsle

package tagged

import (
	"unsafe"

	"github.com/brickingsoft/ptr"
)

// The number of bits stored in the numeric tag of a Pointer
const taggedPointerBits = 32

// On 32-bit systems, Pointer has a 32-bit pointer and 32-bit count.

// Pack creates a tagged Pointer from an address and a tag.
// Tag bits that don't fit in the result are discarded.
func Pack[E any](p ptr.Pointer[E], tag uintptr) Pointer[E] {
	return Pointer[E](p.Addr())<<32 | Pointer[E](tag)
}

// Pointer returns the address from a tagged Pointer.
func (tp Pointer[E]) Pointer() ptr.Pointer[E] {
	return ptr.FromUnsafe[E](unsafe.Pointer(uintptr(tp >> 32)))
}

// Tag returns the tag from a tagged Pointer.
func (tp Pointer[E]) Tag() uintptr {
	return uintptr(tp)
}
