package ptr

import "unsafe"

// AssumeMut grants write capability to a read-only address.
//
// The caller asserts that the designated storage is writable and that no
// other live access aliases it for as long as the result is used.
func AssumeMut[T any](p Pointer[T]) MutPointer[T] {
	return MutPointer[T]{p: p.p}
}

// Reinterpret changes the element type of an address without moving it.
//
// The caller asserts that a valid U lives at p, with U's alignment. The
// typical use is viewing a struct through a pointer to its first field.
func Reinterpret[U, T any](p Pointer[T]) Pointer[U] {
	return Pointer[U]{p: p.p}
}

// ReinterpretMut is Reinterpret for write-capable addresses.
func ReinterpretMut[U, T any](p MutPointer[T]) MutPointer[U] {
	return MutPointer[U]{p: p.p}
}

// FromUnsafe types a raw address. The caller asserts that p designates a T
// or is nil.
func FromUnsafe[T any](p unsafe.Pointer) Pointer[T] {
	return Pointer[T]{p: p}
}

// MutFromUnsafe types a raw address as write-capable.
func MutFromUnsafe[T any](p unsafe.Pointer) MutPointer[T] {
	return MutPointer[T]{p: p}
}
