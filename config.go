package arena

import (
	"log/slog"
	"unsafe"
)

// DefaultByteBudget is the size in bytes of the first chunk of an arena
// created without an explicit capacity.
const DefaultByteBudget = 1024

// Config configures a new arena.
type Config struct {
	// InitialCapacity is the number of slots in the first chunk. Zero means
	// derive it from ByteBudget.
	InitialCapacity int

	// ByteBudget sizes the first chunk when InitialCapacity is zero: the
	// budget divided by the element size, at least one slot.
	// Zero means DefaultByteBudget.
	ByteBudget int

	// Logger receives chunk growth events at debug level. Nil discards them.
	Logger *slog.Logger
}

// capacityFor resolves the first chunk's capacity for elements of type T.
func capacityFor[T any](cfg Config) int {
	if cfg.InitialCapacity > 0 {
		return cfg.InitialCapacity
	}
	budget := cfg.ByteBudget
	if budget <= 0 {
		budget = DefaultByteBudget
	}
	var zero T
	size := max(1, int(unsafe.Sizeof(zero)))
	return max(MinCapacity, budget/size)
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}
