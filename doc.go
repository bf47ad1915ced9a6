// Package arena implements a typed region allocator for Go.
//
// # Overview
//
// An Arena[T] hands out slots for values of a single type T. Slots are
// carved out of a few large chunks instead of one heap object per value, and
// all of them live exactly as long as the arena. There is no way to free one
// slot while the others remain. This is useful for:
//
//   - Building large graphs or trees whose nodes all die together
//   - Parsers and compilers that intern many small nodes per pass
//   - Reducing per-object allocation cost and GC bookkeeping
//
// # Basic Usage
//
//	nodes := arena.New[Node]()  // first chunk spans 1 KiB
//	defer nodes.Release()
//
//	// Move a value in
//	root := nodes.Alloc(Node{Name: "root"})
//
//	// Construct in place
//	child, err := nodes.Emplace(func(n *Node) error {
//		n.Name = "child"
//		n.Parent = root
//		return nil
//	})
//
//	// Or drive the two phases by hand
//	r := nodes.Reserve()
//	if err := decode(r.Ptr()); err != nil {
//		r.Abandon()
//	} else {
//		leaf := r.Commit()
//	}
//
//	// Take every value out, in allocation order
//	all := nodes.IntoSlice()
//
// # Address Stability
//
// A pointer returned by Alloc, Emplace or Commit never moves. The arena keeps
// one open chunk with free capacity; when it fills, it is sealed and a new
// chunk of twice the capacity is opened in its place. Sealed chunks are never
// written again.
//
// # Reentrancy
//
// An Arena is meant for one goroutine and has no locks. Every mutating call
// holds the arena for its duration, and a pending Reservation holds it until
// Commit or Abandon. Entering the arena while it is held (for example,
// allocating from inside an Emplace build function) panics with a
// *ContractViolationError that unwraps to ErrReentrant. TryAlloc reports the
// same condition as an error.
//
// # Teardown
//
// Release drops every chunk. ReleaseFunc additionally visits each element
// once before doing so; the visiting order is unspecified and does not follow
// allocation order. IntoSlice is the only way to observe elements in
// allocation order.
//
// # Performance Characteristics
//
//   - Alloc, Reserve, Commit, Abandon: O(1) amortized
//   - IntoSlice: O(n), chunks are not contiguous with each other
//   - Release: O(1), ReleaseFunc: O(n)
//
// Growth doubles the chunk capacity. If doubling would overflow int the
// process exits: the arena cannot keep its stability guarantee past that point.
package arena
