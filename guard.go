package arena

// guard is a reentrancy check around an arena's chunk list. It is not a
// mutex: an arena belongs to one goroutine, and the guard only catches a
// call that enters the arena while another call on it is still running.
type guard struct {
	held   bool
	holder string
}

// acquire marks the arena as held by op. It panics with a
// *ContractViolationError if the arena is already held.
func (g *guard) acquire(op string) {
	if err := g.tryAcquire(op); err != nil {
		panic(err)
	}
}

func (g *guard) tryAcquire(op string) error {
	if g.held {
		return &ContractViolationError{Op: op, Holder: g.holder}
	}
	g.held = true
	g.holder = op
	return nil
}

func (g *guard) release() {
	g.held = false
	g.holder = ""
}
