package ptr

import (
	"strconv"
	"unsafe"
)

// Pointer is a read-only typed address.
//
// The zero value is the null sentinel. Two pointers are equal when they
// designate the same byte.
type Pointer[T any] struct {
	p unsafe.Pointer
}

// MutPointer is a typed address that permits writes through it.
type MutPointer[T any] struct {
	p unsafe.Pointer
}

// AddressOf returns a read-only address of the storage v points at.
// The address is valid exactly as long as that storage is.
func AddressOf[T any](v *T) Pointer[T] {
	return Pointer[T]{p: unsafe.Pointer(v)}
}

// MutAddressOf returns a write-capable address of the storage v points at.
// No aliasing is tracked: a mutable address must not be used while any
// other access to the same storage is live.
func MutAddressOf[T any](v *T) MutPointer[T] {
	return AssumeMut(AddressOf(v))
}

// FromSlice returns the address of the first element of s.
// For an empty slice the result may be null.
func FromSlice[T any](s []T) MutPointer[T] {
	return MutPointer[T]{p: unsafe.Pointer(unsafe.SliceData(s))}
}

func (p Pointer[T]) Addr() uintptr {
	return uintptr(p.p)
}

func (p Pointer[T]) UnsafePointer() unsafe.Pointer {
	return p.p
}

func (p Pointer[T]) IsNull() bool {
	return IsNull(p)
}

// Load reads the element at p. p must be non-null and aligned.
func (p Pointer[T]) Load() T {
	return *(*T)(p.p)
}

func (p Pointer[T]) String() string {
	return formatAddr(uintptr(p.p))
}

func (p MutPointer[T]) Addr() uintptr {
	return uintptr(p.p)
}

func (p MutPointer[T]) UnsafePointer() unsafe.Pointer {
	return p.p
}

func (p MutPointer[T]) IsNull() bool {
	return IsNull(p.Const())
}

// Const drops the write capability.
func (p MutPointer[T]) Const() Pointer[T] {
	return Pointer[T]{p: p.p}
}

func (p MutPointer[T]) Load() T {
	return *(*T)(p.p)
}

// Store writes v at p. p must be non-null and aligned.
func (p MutPointer[T]) Store(v T) {
	*(*T)(p.p) = v
}

// Slice returns a slice of n elements starting at p.
// The caller guarantees that n elements are addressable from p.
func (p MutPointer[T]) Slice(n int) []T {
	return unsafe.Slice((*T)(p.p), n)
}

func (p MutPointer[T]) String() string {
	return formatAddr(uintptr(p.p))
}

func formatAddr(addr uintptr) string {
	return "0x" + strconv.FormatUint(uint64(addr), 16)
}
