package checked

import "github.com/brickingsoft/ptr"

// CopyNonoverlapping copies min(dst.Len(), src.Len()) elements from src to
// dst and returns the count. Overlapping ranges are refused with ErrOverlap
// before anything is written.
func CopyNonoverlapping[T any](dst, src Span[T]) (n uint, err error) {
	n = min(dst.len, src.len)
	if n == 0 {
		return
	}
	d := Span[T]{base: dst.base, len: n}
	s := Span[T]{base: src.base, len: n}
	if Overlaps(d, s) {
		n = 0
		err = newError(ErrOverlap, errMetaOpCopy)
		return
	}
	ptr.CopyNonoverlapping(dst.base, src.base.Const(), n)
	return
}

// Copy copies min(dst.Len(), src.Len()) elements from src to dst and
// returns the count. The spans may overlap.
func Copy[T any](dst, src Span[T]) (n uint, err error) {
	n = min(dst.len, src.len)
	if n == 0 {
		return
	}
	ptr.Copy(dst.base, src.base.Const(), n)
	return
}
