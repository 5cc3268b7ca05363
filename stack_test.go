package exception

import (
	"errors"
	"testing"
)

func TestStackPushPop(t *testing.T) {
	s := NewStack()
	if r := s.Peek(); r != nil {
		t.Fatalf("empty stack has a top region: %p", r)
	}

	a, b := &Region{stack: s}, &Region{stack: s}
	s.Push(a)
	s.Push(b)

	if d := s.Depth(); d != 2 {
		t.Errorf("wrong depth: want=2 got=%d", d)
	}
	if r := s.Peek(); r != b {
		t.Errorf("wrong top region: want=%p got=%p", b, r)
	}
	if r := s.Pop(); r != b {
		t.Errorf("wrong popped region: want=%p got=%p", b, r)
	}
	if r := s.Peek(); r != a {
		t.Errorf("wrong top region after pop: want=%p got=%p", a, r)
	}
	if r := s.Pop(); r != a {
		t.Errorf("wrong popped region: want=%p got=%p", a, r)
	}
	if d := s.Depth(); d != 0 {
		t.Errorf("wrong depth: want=0 got=%d", d)
	}
}

func TestStackPopEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("pop from empty stack did not panic")
		}
	}()
	var s Stack
	s.Pop()
}

func TestStackNil(t *testing.T) {
	var s *Stack
	if r := s.Peek(); r != nil {
		t.Errorf("nil stack has a top region: %p", r)
	}
	if d := s.Depth(); d != 0 {
		t.Errorf("nil stack has depth %d", d)
	}
}

func TestStackZeroValue(t *testing.T) {
	var s Stack
	var caught any
	err := TryStack(&s, func() { s.Signal(42) }, func(v int) { caught = v })
	if err != nil {
		t.Fatal(err)
	}
	if caught != 42 {
		t.Errorf("wrong payload: want=42 got=%v", caught)
	}
	if d := s.Depth(); d != 0 {
		t.Errorf("stack not balanced: depth=%d", d)
	}
}

func TestStackMaxDepth(t *testing.T) {
	s := NewStack(WithMaxDepth(3))

	defer func() {
		v := recover()
		err, ok := v.(error)
		if !ok || !errors.Is(err, ErrStackExhausted) {
			t.Errorf("wrong panic value: %v", v)
		}
		if d := s.Depth(); d != 0 {
			t.Errorf("stack not balanced after exhaustion: depth=%d", d)
		}
	}()

	var enter func(n int)
	enter = func(n int) {
		err := TryStack(s, func() { enter(n + 1) }, func(any) {
			t.Errorf("exhaustion was caught by region %d", n)
		})
		t.Errorf("region %d returned after exhaustion: %v", n, err)
	}
	enter(0)
}

func BenchmarkStack(b *testing.B) {
	s := NewStack()
	for i := 0; i < b.N; i++ {
		r := s.Enter()
		r.Exit()
	}
}
