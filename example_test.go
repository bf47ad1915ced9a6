package arena

import (
	"errors"
	"fmt"
	"strconv"
)

// Example demonstrates basic arena usage
func Example() {
	// Create a new arena whose first chunk holds two values
	a := NewWithCapacity[int](2)

	// Move values in
	x := a.Alloc(10)
	a.Alloc(20)
	a.Alloc(30) // lands in a new chunk of capacity 4

	*x += 1
	fmt.Printf("Chunks: %d, open chunk: %d/%d\n", a.NumChunks(), a.CurrentLen(), a.CurrentCap())

	// Take every value out, in allocation order
	fmt.Println(a.IntoSlice())

	// Output:
	// Chunks: 2, open chunk: 1/4
	// [11 20 30]
}

// ExampleArena_Emplace demonstrates constructing a value in place
func ExampleArena_Emplace() {
	type node struct {
		name   string
		parent *node
	}

	nodes := New[node]()
	defer nodes.Release()

	root := nodes.Alloc(node{name: "root"})
	parse := func(s string) (*node, error) {
		return nodes.Emplace(func(n *node) error {
			if _, err := strconv.Atoi(s); err != nil {
				return errors.New("not a number: " + s)
			}
			n.name = s
			n.parent = root
			return nil
		})
	}

	for _, s := range []string{"1", "x", "3"} {
		n, err := parse(s)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Printf("%s -> %s\n", n.name, n.parent.name)
	}
	fmt.Println("nodes:", nodes.Len())

	// Output:
	// 1 -> root
	// error: not a number: x
	// 3 -> root
	// nodes: 3
}

// ExampleReservation demonstrates the two-phase protocol
func ExampleReservation() {
	a := NewWithCapacity[string](4)

	r := a.Reserve()
	*r.Ptr() = "discarded"
	r.Abandon()

	r = a.Reserve()
	*r.Ptr() = "kept"
	p := r.Commit()

	fmt.Println(*p, r.State(), a.Len())

	// Output:
	// kept finalized 1
}

// ExampleArenaMetrics demonstrates monitoring arena usage
func ExampleArenaMetrics() {
	a := NewWithCapacity[int64](4)
	defer a.Release()

	for i := int64(0); i < 5; i++ {
		a.Alloc(i)
	}

	metrics := a.Metrics()
	fmt.Printf("Metrics:\n")
	fmt.Printf("  Elements: %d\n", metrics.Len)
	fmt.Printf("  Size in use: %d bytes\n", metrics.SizeInUse)
	fmt.Printf("  Capacity: %d slots\n", metrics.Capacity)
	fmt.Printf("  Chunks: %d\n", metrics.NumChunks)
	fmt.Printf("  Utilization: %.1f%%\n", metrics.Utilization*100)

	// Output:
	// Metrics:
	//   Elements: 5
	//   Size in use: 40 bytes
	//   Capacity: 12 slots
	//   Chunks: 2
	//   Utilization: 41.7%
}
