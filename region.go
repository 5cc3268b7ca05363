package exception

// State is the position of a region in its lifecycle.
type State int

const (
	// Entered means the region is on the stack and its protected code has
	// not returned yet.
	Entered State = iota
	// Completed means the protected code returned without signaling.
	Completed
	// Signaled means a signal transferred control back to the region.
	Signaled
	// Exited means the region was removed from the stack. Regions are never
	// reused after exiting.
	Exited
)

func (s State) String() string {
	switch s {
	case Entered:
		return "entered"
	case Completed:
		return "completed"
	case Signaled:
		return "signaled"
	case Exited:
		return "exited"
	default:
		return "unknown"
	}
}

// Region is a protected region opened on a Stack.
//
// The region is the target of signals raised while it is the innermost open
// region of its stack.
type Region struct {
	stack *Stack
	next  *Region

	payload  any
	signaled bool
	taken    bool
	ran      bool
	exited   bool
	state    State
}

// State returns the current state of the region.
func (r *Region) State() State {
	if r.exited {
		return Exited
	}
	return r.state
}

// Run executes the protected code of the region.
//
// Run returns false when body returns normally, and true when a signal raised
// in the dynamic extent of body transferred control back to the region. The
// frames between the signal and Run are unwound; their deferred calls run as
// for any panic.
//
// Panics that are not signals targeting r are propagated unchanged. Run must
// be called at most once per region.
func (r *Region) Run(body func()) (signaled bool) {
	if r.ran {
		panic("exception: region already ran")
	}
	if r.exited {
		panic("exception: run of exited region")
	}
	r.ran = true

	defer func() {
		v := recover()
		if v == nil {
			return
		}
		if t, ok := v.(*transfer); ok && t.target == r {
			r.state = Signaled
			signaled = true
			return
		}
		panic(v)
	}()

	body()
	r.state = Completed
	return false
}

// Exit removes the region from its stack, restoring the stack to the state it
// had before the region was entered.
//
// Exit is idempotent, so it is safe to defer it right after Enter and also
// call it explicitly once the protected code ran. Exiting a region which is
// not the innermost open region of its stack panics.
func (r *Region) Exit() {
	if r.exited {
		return
	}
	if top := r.stack.Peek(); top != r {
		panic("exception: region exited out of order")
	}
	r.stack.Pop()
	r.exited = true
}
