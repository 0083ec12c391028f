package model

import "sync"

// FlipPool recycles the per-band flip buffers used by the parallel scan
type FlipPool struct {
	pool sync.Pool
}

func NewFlipPool() *FlipPool {
	return &FlipPool{
		pool: sync.Pool{
			New: func() interface{} {
				buf := make([]Cell, 0, 64)
				return &buf
			},
		},
	}
}

// Get retrieves an empty buffer from the pool
func (p *FlipPool) Get() *[]Cell {
	buf := p.pool.Get().(*[]Cell)
	*buf = (*buf)[:0]
	return buf
}

// Put returns a buffer to the pool
func (p *FlipPool) Put(buf *[]Cell) {
	if buf == nil {
		return
	}
	*buf = (*buf)[:0]
	p.pool.Put(buf)
}
