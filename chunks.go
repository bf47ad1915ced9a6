package arena

import "math"

// MinCapacity is the smallest capacity a chunk is created with.
const MinCapacity = 1

// chunkList holds one open chunk that accepts writes and the sealed chunks
// before it, oldest first. Every sealed chunk is exactly full and is never
// written again. The open chunk is only ever re-sliced within its capacity,
// so its backing array (and every slot address in it) never moves.
type chunkList[T any] struct {
	current []T
	sealed  [][]T
	nsealed int // elements held by sealed chunks
}

func newChunkList[T any](capacity int) chunkList[T] {
	capacity = max(MinCapacity, capacity)
	return chunkList[T]{current: make([]T, 0, capacity)}
}

func (l *chunkList[T]) currentLen() int { return len(l.current) }
func (l *chunkList[T]) currentCap() int { return cap(l.current) }

// len returns the number of elements across all chunks.
func (l *chunkList[T]) len() int {
	return l.nsealed + len(l.current)
}

// capacity returns the number of slots across all chunks.
func (l *chunkList[T]) capacity() int {
	return l.nsealed + cap(l.current)
}

func (l *chunkList[T]) numChunks() int {
	return len(l.sealed) + 1
}

func (l *chunkList[T]) full() bool {
	return len(l.current) == cap(l.current)
}

// push writes v into the next free slot of the open chunk and returns its index.
// The open chunk must have a free slot.
func (l *chunkList[T]) push(v T) int {
	i := l.extend()
	l.current[i] = v
	return i
}

// extend grows the open chunk's length by one without writing a value.
// The new slot holds T's zero value. The open chunk must have a free slot.
func (l *chunkList[T]) extend() int {
	i := len(l.current)
	l.current = l.current[:i+1]
	return i
}

// retract undoes the most recent extend.
func (l *chunkList[T]) retract() {
	i := len(l.current) - 1
	clear(l.current[i:])
	l.current = l.current[:i]
}

// at returns the address of slot i in the open chunk.
func (l *chunkList[T]) at(i int) *T {
	return &l.current[i]
}

// grow seals the open chunk and replaces it with an empty one of twice the
// capacity. State is left untouched when the doubled capacity overflows.
func (l *chunkList[T]) grow() (int, error) {
	n, ok := nextCapacity(cap(l.current))
	if !ok {
		return 0, ErrCapacityOverflow
	}
	l.sealed = append(l.sealed, l.current)
	l.nsealed += len(l.current)
	l.current = make([]T, 0, n)
	return n, nil
}

// drain concatenates the sealed chunks and the open chunk in append order.
// The list is empty afterwards.
func (l *chunkList[T]) drain() []T {
	out := make([]T, 0, l.len())
	for _, c := range l.sealed {
		out = append(out, c...)
	}
	out = append(out, l.current...)
	*l = chunkList[T]{}
	return out
}

var nextCapacity = doubleCapacity

func doubleCapacity(n int) (int, bool) {
	if n > math.MaxInt/2 {
		return 0, false
	}
	return n * 2, true
}
