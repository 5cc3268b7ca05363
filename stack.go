package exception

import (
	"errors"
	"fmt"

	"github.com/stealthrocket/exception/internal/gls"
)

// ErrStackExhausted is the panic value raised when entering a region would
// exceed the maximum depth configured with WithMaxDepth. It cannot be caught
// by a region: no protected region can protect against its own creation.
var ErrStackExhausted = errors.New("exception: region stack exhausted")

// Stack is the stack of open protected regions of one goroutine.
//
// The zero value is an empty stack with the default configuration. A Stack
// must not be shared by multiple goroutines; use Local to obtain the stack of
// the calling goroutine.
type Stack struct {
	top   *Region
	depth int
	config

	// Set on stacks created by Local; the stack is attached to goroutine g
	// while at least one region is open.
	local bool
	g     gls.G
	ready bool
}

// NewStack creates an empty Stack.
func NewStack(opts ...Option) *Stack {
	s := &Stack{config: newConfig(opts), ready: true}
	return s
}

// Push makes r the innermost region of the stack.
func (s *Stack) Push(r *Region) {
	if !s.ready {
		s.config, s.ready = newConfig(nil), true
	}
	if s.maxDepth > 0 && s.depth >= s.maxDepth {
		panic(fmt.Errorf("%w: depth %d", ErrStackExhausted, s.depth))
	}
	if s.depth == 0 && s.local {
		s.attach()
	}
	r.next = s.top
	s.top = r
	s.depth++
}

// Pop removes and returns the innermost region of the stack.
//
// Popping an empty stack means regions were not entered and exited in pairs;
// the method panics in that case.
func (s *Stack) Pop() *Region {
	r := s.top
	if r == nil {
		panic("exception: pop from empty region stack")
	}
	s.top, r.next = r.next, nil
	s.depth--
	if s.depth == 0 && s.local {
		s.detach()
	}
	return r
}

// Peek returns the innermost region of the stack, or nil if no region is
// open. It is safe to call on a nil Stack.
func (s *Stack) Peek() *Region {
	if s == nil {
		return nil
	}
	return s.top
}

// Depth returns the number of open regions.
func (s *Stack) Depth() int {
	if s == nil {
		return 0
	}
	return s.depth
}

// Enter opens a new protected region on the stack. The region must be exited
// by calling Exit, usually in a defer statement placed right after Enter.
func (s *Stack) Enter() *Region {
	r := &Region{stack: s}
	s.Push(r)
	return r
}
