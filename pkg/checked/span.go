// Package checked wraps the ptr primitives with bounds, null and overlap
// checks. Every precondition the unchecked layer leaves to the caller is
// verified here and reported as an error.
package checked

import (
	"fmt"

	"github.com/brickingsoft/ptr"
	"github.com/dustin/go-humanize"
)

// Span is a contiguous run of Len elements of T starting at Base.
type Span[T any] struct {
	base ptr.MutPointer[T]
	len  uint
}

// Of spans the elements of s. The span aliases s's backing array.
func Of[T any](s []T) Span[T] {
	if len(s) == 0 {
		return Span[T]{}
	}
	return Span[T]{base: ptr.FromSlice(s), len: uint(len(s))}
}

// Make spans n elements starting at base. The caller still vouches that
// those elements are addressable; Make only rejects a null base.
func Make[T any](base ptr.MutPointer[T], n uint) (Span[T], error) {
	if n > 0 && base.IsNull() {
		return Span[T]{}, newError(ErrNilPointer, errMetaOpMake)
	}
	if n == 0 {
		return Span[T]{}, nil
	}
	return Span[T]{base: base, len: n}, nil
}

func (s Span[T]) Base() ptr.MutPointer[T] {
	return s.base
}

func (s Span[T]) Len() uint {
	return s.len
}

// Size is the byte length of the span.
func (s Span[T]) Size() uintptr {
	return uintptr(s.len) * ptr.SizeOf[T]()
}

func (s Span[T]) Offset(i uint) (p ptr.MutPointer[T], err error) {
	if i >= s.len {
		err = newError(ErrOutOfRange, errMetaOpOffset)
		return
	}
	p = ptr.MutOffset(s.base, i)
	return
}

func (s Span[T]) Load(i uint) (v T, err error) {
	p, offsetErr := s.Offset(i)
	if offsetErr != nil {
		err = offsetErr
		return
	}
	v = p.Load()
	return
}

func (s Span[T]) Store(i uint, v T) (err error) {
	p, offsetErr := s.Offset(i)
	if offsetErr != nil {
		err = offsetErr
		return
	}
	p.Store(v)
	return
}

// Sub returns the elements [from, to) of s.
func (s Span[T]) Sub(from, to uint) (Span[T], error) {
	if from > to || to > s.len {
		return Span[T]{}, newError(ErrOutOfRange, errMetaOpSub)
	}
	if from == to {
		return Span[T]{}, nil
	}
	return Span[T]{base: ptr.MutOffset(s.base, from), len: to - from}, nil
}

// Slice views the span as a Go slice.
func (s Span[T]) Slice() []T {
	if s.len == 0 {
		return nil
	}
	return s.base.Slice(int(s.len))
}

func (s Span[T]) String() string {
	return fmt.Sprintf("%v[%d] (%s)", s.base, s.len, humanize.IBytes(uint64(s.Size())))
}

// Overlaps reports whether a and b share at least one byte.
func Overlaps[T any](a, b Span[T]) bool {
	if a.Size() == 0 || b.Size() == 0 {
		return false
	}
	aStart, bStart := a.base.Addr(), b.base.Addr()
	return aStart < bStart+b.Size() && bStart < aStart+a.Size()
}
