package arena

// Alloc moves v into the arena and returns a pointer to its slot.
// The pointer stays valid, and the slot never moves, until the arena is
// released or consumed by IntoSlice.
func (a *Arena[T]) Alloc(v T) *T {
	a.enter("Alloc")
	defer a.guard.release()
	return a.alloc(v)
}

// TryAlloc is like Alloc but reports reentrant use as an error instead of
// panicking. Use after release still panics.
func (a *Arena[T]) TryAlloc(v T) (*T, error) {
	a.panicIfReleased()
	if err := a.guard.tryAcquire("Alloc"); err != nil {
		return nil, err
	}
	defer a.guard.release()
	return a.alloc(v), nil
}

func (a *Arena[T]) alloc(v T) *T {
	// The open chunk always has a free slot here.
	p := a.chunks.at(a.chunks.push(v))
	a.growIfFull()
	return p
}

// Reserve claims the next slot for in-place construction. The arena stays
// held by the reservation until it is committed or abandoned; any other call
// on the arena before then panics with ErrReentrant.
func (a *Arena[T]) Reserve() *Reservation[T] {
	a.enter("Reserve")
	i := a.chunks.extend()
	return &Reservation[T]{arena: a, slot: a.chunks.at(i)}
}

// Emplace constructs a value directly in the arena. build receives the
// zeroed slot; if it returns nil the slot is committed, otherwise (or if
// build panics) the slot is abandoned and the arena is left as it was.
func (a *Arena[T]) Emplace(build func(*T) error) (*T, error) {
	r := a.Reserve()
	defer func() {
		if r.state == Reserved {
			r.Abandon()
		}
	}()

	if err := build(r.Ptr()); err != nil {
		return nil, err
	}
	return r.Commit(), nil
}
