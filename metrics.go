package arena

import "unsafe"

// Len returns the number of elements held by the arena.
func (a *Arena[T]) Len() int {
	if a.released {
		return 0
	}
	return a.chunks.len()
}

// CurrentLen returns the number of elements in the open chunk.
func (a *Arena[T]) CurrentLen() int {
	if a.released {
		return 0
	}
	return a.chunks.currentLen()
}

// CurrentCap returns the capacity of the open chunk.
func (a *Arena[T]) CurrentCap() int {
	if a.released {
		return 0
	}
	return a.chunks.currentCap()
}

// Capacity returns the total number of slots across all chunks.
func (a *Arena[T]) Capacity() int {
	if a.released {
		return 0
	}
	return a.chunks.capacity()
}

// NumChunks returns the number of chunks, sealed and open.
func (a *Arena[T]) NumChunks() int {
	if a.released {
		return 0
	}
	return a.chunks.numChunks()
}

// SizeInUse returns the number of bytes occupied by elements.
func (a *Arena[T]) SizeInUse() int {
	var zero T
	return a.Len() * int(unsafe.Sizeof(zero))
}

// Utilization returns the ratio of used slots to total slots (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena[T]) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.Len()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() ArenaMetrics {
	return ArenaMetrics{
		Len:         a.Len(),
		Capacity:    a.Capacity(),
		NumChunks:   a.NumChunks(),
		CurrentLen:  a.CurrentLen(),
		CurrentCap:  a.CurrentCap(),
		SizeInUse:   a.SizeInUse(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Len         int     // Elements held
	Capacity    int     // Slots across all chunks
	NumChunks   int     // Sealed chunks plus the open one
	CurrentLen  int     // Elements in the open chunk
	CurrentCap  int     // Capacity of the open chunk
	SizeInUse   int     // Bytes occupied by elements
	Utilization float64 // Ratio of used to total slots (0.0-1.0)
}
