package arena

import (
	"fmt"
	"log/slog"
	"os"
)

// Arena hands out stable *T slots backed by a small number of large chunks.
// Slots cannot be freed individually; they live until the arena is released.
// An Arena is not goroutine-safe.
type Arena[T any] struct {
	chunks   chunkList[T]
	guard    guard
	logger   *slog.Logger
	released bool
}

// New creates an arena whose first chunk spans DefaultByteBudget bytes
// (at least one element).
func New[T any]() *Arena[T] {
	return NewWithConfig[T](Config{})
}

// NewWithCapacity creates an arena whose first chunk holds n elements.
// n is clamped to MinCapacity.
func NewWithCapacity[T any](n int) *Arena[T] {
	return newArena[T](n, Config{}.logger())
}

// NewWithConfig creates an arena configured by cfg.
func NewWithConfig[T any](cfg Config) *Arena[T] {
	return newArena[T](capacityFor[T](cfg), cfg.logger())
}

func newArena[T any](capacity int, logger *slog.Logger) *Arena[T] {
	return &Arena[T]{
		chunks: newChunkList[T](capacity),
		logger: logger,
	}
}

// IntoSlice moves every element out of the arena, in allocation order, and
// consumes it. Any later mutating call panics.
func (a *Arena[T]) IntoSlice() []T {
	a.enter("IntoSlice")
	defer a.guard.release()

	out := a.chunks.drain()
	a.released = true
	return out
}

// Release drops all chunks and makes the arena unusable.
// Releasing a released arena is a no-op.
func (a *Arena[T]) Release() {
	a.ReleaseFunc(nil)
}

// ReleaseFunc calls fn once for every element still in the arena, then
// releases it. The order in which elements are visited is unspecified.
func (a *Arena[T]) ReleaseFunc(fn func(*T)) {
	if a.released {
		return
	}
	a.enter("Release")
	defer a.guard.release()

	if fn != nil {
		for i := range a.chunks.current {
			fn(&a.chunks.current[i])
		}
		for c := len(a.chunks.sealed) - 1; c >= 0; c-- {
			chunk := a.chunks.sealed[c]
			for i := range chunk {
				fn(&chunk[i])
			}
		}
	}
	a.chunks = chunkList[T]{}
	a.released = true
}

// enter acquires the guard for op, panicking on use after release or reentry.
func (a *Arena[T]) enter(op string) {
	a.panicIfReleased()
	a.guard.acquire(op)
}

// growIfFull keeps a free slot in the open chunk after every allocation, so
// the next Alloc or Reserve never has to check.
func (a *Arena[T]) growIfFull() {
	if !a.chunks.full() {
		return
	}
	n, err := a.chunks.grow()
	if err != nil {
		a.logger.Error("arena: cannot grow open chunk",
			"capacity", a.chunks.currentCap(), "error", err)
		fatal(err)
	}
	a.logger.Debug("arena: sealed chunk",
		"sealed", len(a.chunks.sealed), "capacity", n)
}

// panicIfReleased panics if the arena has been released or consumed.
func (a *Arena[T]) panicIfReleased() {
	if a.released {
		panic(ErrReleased)
	}
}

// fatal terminates the process. Continuing after a failed growth would leave
// the open chunk full, and the next write would move it.
var fatal = func(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(2)
}
