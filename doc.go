// Package exception implements nested protected regions with non-local
// transfer of control.
//
// A protected region is opened on a Stack and runs some code. Any function
// called, directly or not, by that code may Signal a payload: control returns
// immediately to the innermost open region, skipping the remaining statements
// of every frame in between. The region then exits and its handler receives
// the payload.
//
//	err := exception.Try(func() {
//		exception.Raise("BAD_CAST", "a type cast failed", nil)
//	}, func(e *exception.Exception) {
//		fmt.Println(e.Name, e.Reason)
//	})
//
// Regions nest. A signal always targets the innermost region still open at
// the time of the signal; a signal raised by a handler targets the region that
// encloses the one being handled, since the handled region has already exited.
//
// The lower level API exposes the individual steps of a region:
//
//	r := stack.Enter()
//	defer r.Exit()
//	if r.Run(body) {
//		r.Exit()
//		v, err := exception.Payload[int](r)
//		...
//	}
//
// Each goroutine has its own stack, returned by Local. Signaling while no
// region is open on the calling goroutine does not transfer control: the
// payload is reported to the stack's Reporter and Signal returns.
//
// Transfers are implemented with panics. Deferred calls of unwound frames run
// normally, and code that recovers panics in the extent of a region must pass
// signals through; see Propagating. The recovercheck analyzer finds recover
// calls that do not.
package exception
