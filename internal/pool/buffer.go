// Package pool provides a reusable growable byte buffer for the encoder
// hot path, adapted from mebo's internal/pool byte-buffer pool.
//
// Every exported entry point in posting and merge still returns a freshly
// allocated, caller-owned slice — the pool only reduces the number of
// backing-array allocations made *during* a single call. No buffer ever
// escapes to a caller, so reuse here introduces no observable state
// across calls (spec.md §5's "no hidden singletons" requirement).
package pool

import "sync"

// DefaultSize is the starting capacity handed out for a fresh buffer when
// the caller doesn't know the expected output size up front.
const DefaultSize = 256

// MaxThreshold is the largest buffer capacity the pool will retain. Buffers
// grown past this size for one unusually large call are discarded instead
// of pooled, so a single huge merge doesn't permanently bloat the pool.
const MaxThreshold = 1024 * 1024

// Buffer is a growable byte slice wrapper, pooled via sync.Pool.
type Buffer struct {
	B []byte
}

// Bytes returns the buffer's current contents.
func (buf *Buffer) Bytes() []byte { return buf.B }

// Len returns the number of bytes written so far.
func (buf *Buffer) Len() int { return len(buf.B) }

// Reset empties the buffer but keeps its backing array for reuse.
func (buf *Buffer) Reset() { buf.B = buf.B[:0] }

// Grow ensures the buffer can accept at least n more bytes without a
// reallocation, amortizing growth the same way mebo's blob buffers do:
// small buffers grow in fixed increments, larger ones by a quarter of
// their current capacity.
func (buf *Buffer) Grow(n int) {
	available := cap(buf.B) - len(buf.B)
	if available >= n {
		return
	}

	growBy := DefaultSize
	if cap(buf.B) > 4*DefaultSize {
		growBy = cap(buf.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	next := make([]byte, len(buf.B), len(buf.B)+growBy)
	copy(next, buf.B)
	buf.B = next
}

var bufferPool = sync.Pool{
	New: func() any { return &Buffer{B: make([]byte, 0, DefaultSize)} },
}

// Get retrieves a buffer from the pool, pre-grown to hold a posting list
// of postingCount entries (spec.md §5: reserve output proportional to
// postingCount * 3 fields * the 10-byte maximum varint width).
func Get(postingCount int) *Buffer {
	buf, _ := bufferPool.Get().(*Buffer)
	buf.Grow(postingCount * 3 * 10)

	return buf
}

// Put returns a buffer to the pool for reuse. Buffers grown past
// MaxThreshold are dropped instead, to bound the pool's memory footprint.
func Put(buf *Buffer) {
	if buf == nil {
		return
	}

	if cap(buf.B) > MaxThreshold {
		return
	}

	buf.Reset()
	bufferPool.Put(buf)
}
