package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
)

// Strategy names an allocation strategy.
type Strategy string

const (
	Nothing Strategy = "nothing" // build the value, keep nothing
	Heap    Strategy = "heap"    // new(E) per value
	Arena   Strategy = "arena"   // Arena.Alloc
	Emplace Strategy = "emplace" // Arena.Emplace
)

// Strategies lists every strategy in reporting order.
var Strategies = []Strategy{Nothing, Heap, Arena, Emplace}

const (
	DefaultIterations = 10_000
	DefaultRounds     = 5
)

var (
	ErrUnknownStrategy = errors.New("bench: unknown strategy")
	ErrUnsupportedSize = errors.New("bench: unsupported element size")
	ErrDigestMismatch  = errors.New("bench: strategies retained different values")
)

// Options configures Run. Zero fields take defaults.
type Options struct {
	Sizes      []int      // element sizes in bytes; default Sizes()
	Strategies []Strategy // default Strategies
	Iterations int        // allocations per round; default DefaultIterations
	Rounds     int        // timed rounds per strategy and size; default DefaultRounds
	Logger     *slog.Logger
}

// Result is the outcome of one strategy at one element size.
type Result struct {
	Strategy   Strategy      `json:"strategy"`
	Size       int           `json:"size"`
	Iterations int           `json:"iterations"`
	Rounds     int           `json:"rounds"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	NsPerOp    float64       `json:"ns_per_op"`
	MaxRSSKiB  int64         `json:"max_rss_kib"`
	Digest     uint64        `json:"digest"`
}

// ParseStrategies resolves strategy names. Names are case-insensitive.
func ParseStrategies(names []string) ([]Strategy, error) {
	out := make([]Strategy, 0, len(names))
	for _, name := range names {
		s := Strategy(strings.ToLower(strings.TrimSpace(name)))
		if !slices.Contains(Strategies, s) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
		}
		out = append(out, s)
	}
	return out, nil
}

func (o Options) withDefaults() Options {
	if len(o.Sizes) == 0 {
		o.Sizes = Sizes()
	}
	if len(o.Strategies) == 0 {
		o.Strategies = Strategies
	}
	if o.Iterations <= 0 {
		o.Iterations = DefaultIterations
	}
	if o.Rounds <= 0 {
		o.Rounds = DefaultRounds
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// Run benchmarks every requested strategy at every requested size.
// It stops between rounds if ctx is cancelled.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	opts = opts.withDefaults()

	for _, size := range opts.Sizes {
		if _, ok := runners[size]; !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnsupportedSize, size)
		}
	}
	for _, s := range opts.Strategies {
		if !slices.Contains(Strategies, s) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
		}
	}

	results := make([]Result, 0, len(opts.Sizes)*len(opts.Strategies))
	for _, size := range opts.Sizes {
		var reference *Result
		for _, s := range opts.Strategies {
			res, err := runOne(ctx, opts, s, size)
			if err != nil {
				return results, err
			}
			opts.Logger.Debug("bench: finished",
				"strategy", s, "size", size, "ns_per_op", res.NsPerOp, "digest", res.Digest)

			if s != Nothing {
				if reference == nil {
					reference = &res
				} else if res.Digest != reference.Digest {
					return results, fmt.Errorf("%w: size %d: %s=%016x %s=%016x", ErrDigestMismatch,
						size, reference.Strategy, reference.Digest, s, res.Digest)
				}
			}
			results = append(results, res)
		}
	}
	return results, nil
}

func runOne(ctx context.Context, opts Options, s Strategy, size int) (Result, error) {
	res := Result{
		Strategy:   s,
		Size:       size,
		Iterations: opts.Iterations,
		Rounds:     opts.Rounds,
	}
	run := runners[size]
	for round := 0; round < opts.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("bench: %s at %d bytes: %w", s, size, err)
		}
		elapsed, digest := run(s, opts.Iterations)
		res.Elapsed += elapsed
		res.Digest = digest
	}
	res.NsPerOp = float64(res.Elapsed.Nanoseconds()) / float64(opts.Iterations*opts.Rounds)
	res.MaxRSSKiB = maxRSSKiB()
	return res, nil
}
