package arena

import "fmt"

// ReservationState is the lifecycle state of a Reservation.
type ReservationState uint8

const (
	Reserved   ReservationState = iota // slot claimed, value under construction
	Finalized                          // committed
	RolledBack                         // abandoned
)

func (s ReservationState) String() string {
	switch s {
	case Reserved:
		return "reserved"
	case Finalized:
		return "finalized"
	case RolledBack:
		return "rolledBack"
	default:
		return fmt.Sprintf("ReservationState(%d)", s)
	}
}

// Reservation is a one-shot token for a slot that does not yet hold a
// finished value. Exactly one of Commit or Abandon must be called on it.
type Reservation[T any] struct {
	arena *Arena[T]
	slot  *T
	state ReservationState
}

// Ptr returns the slot to construct into. It must not be used after Abandon.
func (r *Reservation[T]) Ptr() *T {
	return r.slot
}

// State reports where the reservation is in its lifecycle.
func (r *Reservation[T]) State() ReservationState {
	return r.state
}

// Commit finishes the reservation and returns the slot with the same
// lifetime guarantees as Alloc.
func (r *Reservation[T]) Commit() *T {
	r.consume(Finalized)
	a := r.arena
	defer a.guard.release()
	a.growIfFull()
	return r.slot
}

// Abandon rolls the slot back. It leaves no trace in the arena and the next
// allocation reuses it.
func (r *Reservation[T]) Abandon() {
	r.consume(RolledBack)
	a := r.arena
	a.chunks.retract()
	a.guard.release()
	r.slot = nil
}

func (r *Reservation[T]) consume(to ReservationState) {
	if r.state != Reserved {
		panic(fmt.Errorf("%w: %s", ErrReservationConsumed, r.state))
	}
	r.state = to
}
