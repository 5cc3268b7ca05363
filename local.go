package exception

import "github.com/stealthrocket/exception/internal/gls"

// Local returns the stack of the calling goroutine.
//
// The stack is attached to the goroutine when its first region is entered and
// detached when its last region exits, so goroutines without open regions
// hold no state. Until a region is entered, each call to Local returns a new
// stack configured with the options set by Configure; entering a region on
// one of them while another stack of the goroutine has open regions panics.
func Local() *Stack {
	g := gls.Current()
	if s, ok := g.Load().(*Stack); ok {
		return s
	}
	s := NewStack(defaultOptions()...)
	s.local, s.g = true, g
	return s
}

// Depth returns the number of regions open on the stack of the calling
// goroutine.
func Depth() int {
	return lookup().Depth()
}

func lookup() *Stack {
	s, _ := gls.Current().Load().(*Stack)
	return s
}

func (s *Stack) attach() {
	if other, _ := s.g.Load().(*Stack); other != nil && other != s && other.depth > 0 {
		panic("exception: goroutine already has open regions on another stack")
	}
	s.g.Store(s)
}

func (s *Stack) detach() {
	if other, _ := s.g.Load().(*Stack); other == s {
		s.g.Clear()
	}
}
