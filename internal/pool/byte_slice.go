// Package pool holds sync.Pool wrappers for scratch buffers.
package pool

import "sync"

const defaultCapacity = 64

type ByteSlicePool struct {
	pool sync.Pool
}

var byteSlicePool = &ByteSlicePool{
	pool: sync.Pool{
		New: func() any {
			b := make([]byte, 0, defaultCapacity)
			return &b
		},
	},
}

// ByteSlice returns the shared pool of byte slices.
func ByteSlice() *ByteSlicePool {
	return byteSlicePool
}

// Get returns an empty slice.
func (p *ByteSlicePool) Get() []byte {
	return (*p.pool.Get().(*[]byte))[:0]
}

// GetCapacity returns an empty slice with room for at least n bytes.
func (p *ByteSlicePool) GetCapacity(n int) []byte {
	b := p.Get()
	if cap(b) < n {
		p.Put(b)
		return make([]byte, 0, n)
	}
	return b
}

// Put returns b to the pool. b must not be used afterwards.
func (p *ByteSlicePool) Put(b []byte) {
	b = b[:0]
	p.pool.Put(&b)
}
