package ptr

import "unsafe"

// SizeOf returns the storage size of T in bytes, the unit Offset scales
// element counts by.
func SizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Offset returns base advanced by count elements of T.
//
// It is integer arithmetic only: base is not dereferenced and the result is
// not checked against any allocation. If count*SizeOf[T]() or the resulting
// address overflows the address width the result wraps and is meaningless.
func Offset[T any](base Pointer[T], count uint) Pointer[T] {
	return Pointer[T]{p: unsafe.Add(base.p, uintptr(count)*SizeOf[T]())}
}

// MutOffset is Offset for write-capable addresses.
func MutOffset[T any](base MutPointer[T], count uint) MutPointer[T] {
	return MutPointer[T]{p: unsafe.Add(base.p, uintptr(count)*SizeOf[T]())}
}

// Null returns the typed zero address.
func Null[T any]() Pointer[T] {
	return Pointer[T]{}
}

// MutNull returns the write-capable zero address.
func MutNull[T any]() MutPointer[T] {
	return MutPointer[T]{}
}

func IsNull[T any](p Pointer[T]) bool {
	return p == Null[T]()
}

func IsNotNull[T any](p Pointer[T]) bool {
	return !IsNull(p)
}
