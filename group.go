package exception

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// SignalError is the error recorded by a Group when a signal reaches the
// region wrapping one of its goroutines.
type SignalError struct {
	Payload any
}

func (e *SignalError) Error() string {
	return fmt.Sprintf("exception: signal in group goroutine: %s", Format(e.Payload))
}

// Unwrap returns the payload when it is an error.
func (e *SignalError) Unwrap() error {
	err, _ := e.Payload.(error)
	return err
}

// Group runs functions on separate goroutines, each inside its own protected
// region. Every goroutine has a private stack, so signals never cross from one
// goroutine to another.
type Group struct {
	group *errgroup.Group

	mutex  sync.Mutex
	errors *multierror.Error
}

// NewGroup creates a Group. The returned context is canceled when the first
// signal reaches a goroutine of the group, or when Wait returns.
func NewGroup(ctx context.Context) (*Group, context.Context) {
	group, ctx := errgroup.WithContext(ctx)
	return &Group{group: group}, ctx
}

// Go calls body on a new goroutine inside a protected region.
func (g *Group) Go(body func()) {
	g.group.Go(func() error {
		var err error
		if tryErr := Try(body, func(v any) {
			err = &SignalError{Payload: v}
		}); tryErr != nil {
			err = tryErr
		}
		if err != nil {
			g.mutex.Lock()
			g.errors = multierror.Append(g.errors, err)
			g.mutex.Unlock()
		}
		return err
	})
}

// Wait blocks until all goroutines of the group have returned, and returns the
// signals that reached them combined in a single error, or nil.
func (g *Group) Wait() error {
	_ = g.group.Wait()
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.errors.ErrorOrNil()
}
