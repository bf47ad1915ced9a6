// Package bench times the arena against plain heap allocation.
//
// For a fixed element size every strategy performs the same number of
// allocations per round. Each allocated value is kept in a holding queue
// until the round ends so the runtime cannot hand the same memory back on the
// next iteration. The retained values are hashed afterwards; every strategy
// that retains values must produce the same digest.
package bench
