package bytebuffers

import "sync"

// maxSize is the largest capacity a pool keeps unless MaxSize says otherwise.
const maxSize = 1 << 25

var defaultBufferPool = BufferPool{maxSize: maxSize}

func Acquire() (Buffer, error) { return defaultBufferPool.Get() }

func Release(b Buffer) { defaultBufferPool.Put(b) }

type Options struct {
	DefaultSize int
	MaxSize     int
}

type Option func(*Options) error

// DefaultSize sets the size of buffers the pool creates.
func DefaultSize(n int) Option {
	return func(o *Options) error {
		if n > 0 {
			o.DefaultSize = n
		}
		return nil
	}
}

// MaxSize caps the capacity of buffers kept by the pool. Larger buffers are
// closed on Put.
func MaxSize(n int) Option {
	return func(o *Options) error {
		if n > maxSize {
			return ErrTooLarge
		}
		if n > 0 {
			o.MaxSize = n
		}
		return nil
	}
}

func NewBufferPool(options ...Option) (*BufferPool, error) {
	opts := Options{
		MaxSize: maxSize,
	}
	for _, option := range options {
		if err := option(&opts); err != nil {
			return nil, err
		}
	}
	return &BufferPool{defaultSize: opts.DefaultSize, maxSize: opts.MaxSize}, nil
}

type BufferPool struct {
	defaultSize int
	maxSize     int
	pool        sync.Pool
}

func (p *BufferPool) Get() (Buffer, error) {
	if v := p.pool.Get(); v != nil {
		return v.(Buffer), nil
	}
	return NewBufferWithSize(p.defaultSize)
}

func (p *BufferPool) Put(b Buffer) {
	if b.Cap() > p.maxSize {
		_ = b.Close()
		return
	}
	b.Reset()
	p.pool.Put(b)
}
