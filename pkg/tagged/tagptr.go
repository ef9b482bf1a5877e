// Package tagged packs a typed address and a small integer tag into one
// machine word.
//
// A packed Pointer is an integer: the garbage collector does not see the
// address inside it. Whoever packs a pointer keeps the designated object
// reachable by other means until the last Pointer() call.
package tagged

import "github.com/brickingsoft/ptr"

type Pointer[E any] uint64

// Value returns the address as a Go pointer.
func (tp Pointer[E]) Value() *E {
	return (*E)(tp.Pointer().UnsafePointer())
}

// IsNull reports whether the packed address is the null sentinel.
func (tp Pointer[E]) IsNull() bool {
	return ptr.IsNull(tp.Pointer())
}
