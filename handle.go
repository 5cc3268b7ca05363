package exception

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNotSignaled is returned by Payload for a region which did not
	// receive a signal.
	ErrNotSignaled = errors.New("exception: region was not signaled")

	// ErrPayloadTaken is returned by Payload when the payload of the region
	// was already taken.
	ErrPayloadTaken = errors.New("exception: payload already taken")
)

// TypeError is returned when a handler declares a type that does not match
// the type of the signaled payload.
type TypeError struct {
	Want    reflect.Type
	Payload any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("exception: payload of type %T caught as %v", e.Payload, e.Want)
}

// Payload takes the payload signaled to r and returns it as a value of type
// T. The payload can only be taken once.
//
// When the payload is not a T, a *TypeError is returned and the payload is
// considered taken. A nil payload is accepted by interface and pointer types.
func Payload[T any](r *Region) (T, error) {
	var zero T
	if !r.signaled {
		return zero, ErrNotSignaled
	}
	if r.taken {
		return zero, ErrPayloadTaken
	}
	v := r.payload
	r.payload, r.taken = nil, true

	if v == nil {
		switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return zero, nil
		}
	}
	t, ok := v.(T)
	if !ok {
		return zero, &TypeError{Want: reflect.TypeOf((*T)(nil)).Elem(), Payload: v}
	}
	return t, nil
}

// Try runs body in a new protected region of the calling goroutine. If body
// signals, the region is exited and catch is called with the payload.
//
// A signal raised by catch targets the region enclosing the call to Try.
// When the payload is not a T, catch is not called and a *TypeError is
// returned.
func Try[T any](body func(), catch func(T)) error {
	return TryStack(Local(), body, catch)
}

// TryStack is like Try but opens the region on s.
func TryStack[T any](s *Stack, body func(), catch func(T)) error {
	r := s.Enter()
	defer r.Exit()

	if !r.Run(body) {
		return nil
	}
	r.Exit()

	v, err := Payload[T](r)
	if err != nil {
		return err
	}
	if catch != nil {
		catch(v)
	}
	return nil
}

// Catch runs body in a new protected region of the calling goroutine, and
// returns the payload of the signal that interrupted it, if any.
func Catch(body func()) (payload any, signaled bool) {
	err := Try(body, func(v any) {
		payload, signaled = v, true
	})
	if err != nil {
		// any accepts every payload.
		panic(err)
	}
	return payload, signaled
}
