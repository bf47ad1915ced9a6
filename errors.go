package arena

import (
	"errors"
	"fmt"
)

var (
	// ErrReentrant is reported when an arena is entered while another call
	// (or a pending reservation) already holds it.
	ErrReentrant = errors.New("arena: reentrant use")

	// ErrReservationConsumed is reported when a reservation is committed or
	// abandoned a second time.
	ErrReservationConsumed = errors.New("arena: reservation already consumed")

	// ErrReleased is reported on use after Release() or IntoSlice().
	ErrReleased = errors.New("arena: use after Release()")

	// ErrCapacityOverflow is fatal: doubling the open chunk's capacity overflowed int.
	ErrCapacityOverflow = errors.New("arena: chunk capacity overflow")
)

// ContractViolationError describes an attempt to enter an arena that is
// already held. It unwraps to ErrReentrant.
type ContractViolationError struct {
	Op     string // operation that tried to enter
	Holder string // operation holding the arena
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("arena: reentrant %s while %s is in progress", e.Op, e.Holder)
}

func (e *ContractViolationError) Unwrap() error {
	return ErrReentrant
}
