package bytebuffers

import (
	"bytes"
	"io"
	"os"
	"runtime"

	"github.com/brickingsoft/errors"
	"github.com/brickingsoft/ptr"
	"github.com/brickingsoft/ptr/pkg/bytex"
	"github.com/brickingsoft/ptr/pkg/checked"
	"github.com/dustin/go-humanize"
)

type Buffer interface {
	Len() (n int)
	Cap() (n int)
	Peek(n int) (p []byte)
	Next(n int) (p []byte, err error)
	Discard(n int) (err error)
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	WriteString(s string) (n int, err error)
	Allocate(size int) (p []byte, err error)
	AllocatedWrote(n int) (err error)
	WritePending() bool
	Reset()
	Close() (err error)
}

var (
	pagesize = os.Getpagesize()
)

const maxInt = int(^uint(0) >> 1)

var (
	ErrTooLarge                  = errors.Define("bytebuffers: too large")
	ErrWriteBeforeAllocatedWrote = errors.Define("bytebuffers: cannot write before AllocatedWrote(), cause prev Allocate() was not finished, please call AllocatedWrote() after the area was wrote")
	ErrAllocateZero              = errors.Define("bytebuffers: cannot allocate zero")
)

func IsTooLarge(err error) bool {
	return errors.Is(err, ErrTooLarge)
}

const (
	errMetaPkgKey  = "pkg"
	errMetaPkgVal  = "bytebuffers"
	errMetaSizeKey = "size"
)

func NewBuffer() (Buffer, error) {
	return NewBufferWithSize(1)
}

func NewBufferWithSize(size int) (Buffer, error) {
	if size <= 0 {
		size = 1
	}
	b := &buffer{}
	if err := b.grow(size); err != nil {
		return nil, err
	}
	runtime.SetFinalizer(b, (*buffer).Close)
	return b, nil
}

// buffer keeps unread bytes in b[r:w]; b[w:a] is handed out by Allocate and
// not yet committed.
type buffer struct {
	b []byte
	r int
	w int
	a int
}

func (buf *buffer) Len() int { return buf.w - buf.r }

func (buf *buffer) Cap() int { return len(buf.b) }

func (buf *buffer) base() ptr.MutPointer[byte] {
	return ptr.FromSlice(buf.b)
}

func (buf *buffer) Peek(n int) (p []byte) {
	bLen := buf.Len()
	if n < 1 || bLen == 0 {
		return
	}
	if bLen > n {
		p = buf.b[buf.r : buf.r+n]
		return
	}
	p = buf.b[buf.r:buf.w]
	return
}

func (buf *buffer) Next(n int) (p []byte, err error) {
	if n < 1 {
		return
	}
	bLen := buf.Len()
	if bLen == 0 && !buf.WritePending() {
		err = io.EOF
		return
	}
	if n > bLen {
		n = bLen
	}
	p = make([]byte, n)
	if n > 0 {
		ptr.CopyNonoverlapping(ptr.FromSlice(p), ptr.Offset(buf.base().Const(), uint(buf.r)), uint(n))
	}
	buf.r += n

	buf.tryReset()
	return
}

func (buf *buffer) Read(p []byte) (n int, err error) {
	bLen := buf.Len()
	if bLen == 0 && !buf.WritePending() {
		buf.Reset()
		err = io.EOF
		return
	}
	if len(p) == 0 {
		return
	}
	n = min(len(p), bLen)
	ptr.Copy(ptr.FromSlice(p), ptr.Offset(buf.base().Const(), uint(buf.r)), uint(n))
	buf.r += n

	buf.tryReset()
	return
}

func (buf *buffer) Discard(n int) (err error) {
	if n < 1 {
		return
	}
	bLen := buf.Len()
	if bLen == 0 {
		return
	}
	if bLen <= n {
		buf.r = buf.w
		buf.tryReset()
		return
	}
	buf.r += n
	return
}

func (buf *buffer) Write(p []byte) (n int, err error) {
	if buf.WritePending() {
		err = ErrWriteBeforeAllocatedWrote
		return
	}
	pLen := len(p)
	if pLen == 0 {
		return
	}
	if buf.w+pLen > buf.Cap() {
		// grow moves unread bytes and may unmap the old area, so an aliased p
		// is rebased onto the new storage or detached beforehand.
		rel, unread := buf.unreadOffset(p)
		if !unread && checked.Overlaps(checked.Of(buf.b), checked.Of(p)) {
			p = bytes.Clone(p)
		}
		if err = buf.grow(pLen); err != nil {
			return
		}
		if unread {
			p = buf.b[buf.r+rel : buf.r+rel+pLen]
		}
	}
	ptr.Copy(ptr.MutOffset(buf.base(), uint(buf.w)), ptr.FromSlice(p).Const(), uint(pLen))
	n = pLen
	buf.w += n
	buf.a = buf.w
	return
}

// unreadOffset reports whether p lies entirely inside b[r:w] and, if so,
// its offset from r.
func (buf *buffer) unreadOffset(p []byte) (rel int, ok bool) {
	if len(p) == 0 || buf.Len() == 0 {
		return
	}
	start := ptr.Offset(buf.base().Const(), uint(buf.r)).Addr()
	addr := ptr.FromSlice(p).Addr()
	if addr < start || addr+uintptr(len(p)) > start+uintptr(buf.Len()) {
		return
	}
	rel, ok = int(addr-start), true
	return
}

func (buf *buffer) WriteString(s string) (n int, err error) {
	return buf.Write(bytex.FromString(s))
}

func (buf *buffer) WritePending() bool {
	return buf.a != buf.w
}

func (buf *buffer) Allocate(size int) (p []byte, err error) {
	if buf.WritePending() {
		err = ErrWriteBeforeAllocatedWrote
		return
	}
	if size < 1 {
		err = ErrAllocateZero
		return
	}
	if buf.w+size > buf.Cap() {
		if err = buf.grow(size); err != nil {
			return
		}
	}
	buf.a += size
	p = buf.b[buf.w : buf.w+size]
	return
}

func (buf *buffer) AllocatedWrote(n int) (err error) {
	if buf.a == buf.w {
		return
	}
	if n > buf.a-buf.w {
		err = errors.From(ErrTooLarge, errors.WithMeta(errMetaPkgKey, errMetaPkgVal))
		return
	}
	buf.w += n
	buf.a = buf.w
	return
}

func (buf *buffer) Reset() {
	buf.r = 0
	buf.w = 0
	buf.a = 0
}

func (buf *buffer) Close() (err error) {
	runtime.SetFinalizer(buf, nil)
	if buf.b == nil {
		return
	}
	b := buf.b
	buf.b = nil
	buf.Reset()
	if releaseErr := release(b); releaseErr != nil {
		err = errors.New(
			"close failed",
			errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
			errors.WithWrap(releaseErr),
		)
	}
	return
}

func (buf *buffer) tryReset() {
	if buf.r == buf.w && buf.a == buf.w {
		buf.Reset()
	}
}

// grow makes room for n more bytes after w. Unread bytes are first shifted
// to the front; only if that is not enough is a larger area allocated.
func (buf *buffer) grow(n int) (err error) {
	if n < 1 {
		return
	}

	if buf.b != nil && buf.r > 0 {
		// left shift, source and destination overlap
		unread := buf.w - buf.r
		if unread > 0 {
			ptr.Copy(buf.base(), ptr.Offset(buf.base().Const(), uint(buf.r)), uint(unread))
		}
		buf.w = unread
		buf.a = buf.w
		buf.r = 0
		if buf.w+n <= buf.Cap() {
			return
		}
	}

	// leaves room for rounding up to a page
	if buf.w > maxInt-pagesize-n {
		err = errors.From(
			ErrTooLarge,
			errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
			errors.WithMeta(errMetaSizeKey, humanize.IBytes(uint64(buf.w)+uint64(n))),
		)
		return
	}

	size := adjustBufferSize(buf.w + n)
	nb, allocateErr := allocate(size)
	if allocateErr != nil {
		err = errors.New(
			"grow failed",
			errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
			errors.WithMeta(errMetaSizeKey, humanize.IBytes(uint64(size))),
			errors.WithWrap(allocateErr),
		)
		return
	}

	if ob := buf.b; ob != nil {
		if buf.w > 0 {
			ptr.CopyNonoverlapping(ptr.FromSlice(nb), ptr.FromSlice(ob).Const(), uint(buf.w))
		}
		if releaseErr := release(ob); releaseErr != nil {
			_ = release(nb)
			err = errors.New(
				"grow failed",
				errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
				errors.WithWrap(releaseErr),
			)
			return
		}
	}

	buf.b = nb
	return
}

// adjustBufferSize rounds n up to a whole number of pages.
func adjustBufferSize(n int) int {
	pages := (n + pagesize - 1) / pagesize
	if pages < 1 {
		pages = 1
	}
	return pages * pagesize
}
