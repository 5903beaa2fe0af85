// Package pool recycles scratch buffers.
package pool

import "sync"

// Pool is a generic wrapper around sync.Pool.
type Pool[T any] struct {
	internal sync.Pool
}

// New creates a new Pool with the given constructor.
func New[T any](newFn func() T) *Pool[T] {
	return &Pool[T]{
		internal: sync.Pool{
			New: func() any {
				return newFn()
			},
		},
	}
}

// Get retrieves an item from the pool.
func (p *Pool[T]) Get() T {
	return p.internal.Get().(T)
}

// Put returns an item to the pool.
func (p *Pool[T]) Put(item T) {
	p.internal.Put(item)
}

// Buffers hands out byte slices of one fixed length. Callers must not keep
// a buffer, or a slice of it, after Put.
type Buffers struct {
	size int
	p    *Pool[*[]byte]
}

// NewBuffers returns a pool of size-byte buffers.
func NewBuffers(size int) *Buffers {
	return &Buffers{
		size: size,
		p: New(func() *[]byte {
			b := make([]byte, size)
			return &b
		}),
	}
}

// Size is the length of every buffer handed out.
func (b *Buffers) Size() int { return b.size }

// Get returns a buffer of length Size. Its contents are unspecified.
func (b *Buffers) Get() *[]byte {
	return b.p.Get()
}

// Put recycles buf. Buffers whose capacity no longer matches are dropped.
func (b *Buffers) Put(buf *[]byte) {
	if buf == nil || cap(*buf) != b.size {
		return
	}
	*buf = (*buf)[:b.size]
	b.p.Put(buf)
}
