package bench

import (
	"slices"
	"time"
	"unsafe"

	"github.com/cespare/xxhash/v2"
	"github.com/eapache/queue"

	arena "github.com/pavanmanishd/typedarena"
)

const dummyByte = 0x55

// runner performs one timed round of a strategy and returns the elapsed
// time and the digest of the retained values.
type runner func(s Strategy, iterations int) (time.Duration, uint64)

var runners = map[int]runner{
	1:    run[[1]byte],
	2:    run[[2]byte],
	4:    run[[4]byte],
	8:    run[[8]byte],
	16:   run[[16]byte],
	32:   run[[32]byte],
	64:   run[[64]byte],
	128:  run[[128]byte],
	256:  run[[256]byte],
	512:  run[[512]byte],
	1024: run[[1024]byte],
}

// Sizes returns the supported element sizes in ascending order.
func Sizes() []int {
	sizes := make([]int, 0, len(runners))
	for size := range runners {
		sizes = append(sizes, size)
	}
	slices.Sort(sizes)
	return sizes
}

// sinkByte keeps the nothing strategy's values observable.
var sinkByte byte

func run[E any](s Strategy, iterations int) (time.Duration, uint64) {
	template := filled[E]()
	held := queue.New()

	var start time.Time
	switch s {
	case Nothing:
		start = time.Now()
		for i := 0; i < iterations; i++ {
			v := template
			sinkByte ^= bytesOf(&v)[0]
		}
	case Heap:
		start = time.Now()
		for i := 0; i < iterations; i++ {
			p := new(E)
			*p = template
			held.Add(p)
		}
	case Arena:
		a := arena.New[E]()
		start = time.Now()
		for i := 0; i < iterations; i++ {
			held.Add(a.Alloc(template))
		}
	case Emplace:
		a := arena.New[E]()
		build := func(p *E) error {
			*p = template
			return nil
		}
		start = time.Now()
		for i := 0; i < iterations; i++ {
			p, _ := a.Emplace(build)
			held.Add(p)
		}
	}
	elapsed := time.Since(start)

	return elapsed, digest[E](held)
}

// digest hashes every value in held, in insertion order.
func digest[E any](held *queue.Queue) uint64 {
	if held.Length() == 0 {
		return 0
	}
	d := xxhash.New()
	for i := 0; i < held.Length(); i++ {
		_, _ = d.Write(bytesOf(held.Get(i).(*E)))
	}
	return d.Sum64()
}

func filled[E any]() E {
	var e E
	b := bytesOf(&e)
	for i := range b {
		b[i] = dummyByte
	}
	return e
}

func bytesOf[E any](p *E) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}
