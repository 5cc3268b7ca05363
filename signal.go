package exception

import "fmt"

// transfer is the panic value carrying control from Signal back to the Run
// method of the target region.
type transfer struct {
	target *Region
}

// Signal raises v on the goroutine local stack of the caller.
//
// When a protected region is open, the payload is stored in the innermost
// region and control is transferred to it: Signal does not return. When no
// region is open, the signal is reported and Signal returns normally.
func Signal(v any) {
	lookup().Signal(v)
}

// Signal raises v on the stack. See the package level Signal function.
//
// The innermost region must be running its protected code. Signaling after
// Enter but before Run, or after Run returned but before Exit, breaks the
// pairing of regions and panics with a message describing the region state.
func (s *Stack) Signal(v any) {
	r := s.Peek()
	if r == nil {
		s.uncaught().Report(v)
		return
	}
	if !r.ran || r.state != Entered {
		panic(fmt.Sprintf("exception: signal to region which is not running (state %v, ran %t)", r.state, r.ran))
	}
	r.payload = v
	r.signaled = true
	r.taken = false
	panic(&transfer{target: r})
}

// Propagating reports whether v, a value returned by recover, is a signal in
// flight. Code which recovers panics inside the extent of a protected region
// must panic again with v when Propagating returns true, or the region will
// never receive the signal:
//
//	defer func() {
//		if v := recover(); v != nil {
//			if exception.Propagating(v) {
//				panic(v)
//			}
//			...
//		}
//	}()
func Propagating(v any) bool {
	_, ok := v.(*transfer)
	return ok
}

func (s *Stack) uncaught() Reporter {
	var r Reporter
	switch {
	case s == nil:
		r = newConfig(defaultOptions()).reporter
	case !s.ready:
		r = defaultReporter
	default:
		r = s.reporter
	}
	if r == nil {
		return nopReporter{}
	}
	return r
}
