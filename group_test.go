package exception

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"
)

func TestGroup(t *testing.T) {
	g, ctx := NewGroup(context.Background())

	g.Go(func() { Signal("a") })
	g.Go(func() {})
	g.Go(func() { Raise("B", "second goroutine", nil) })

	err := g.Wait()
	if err == nil {
		t.Fatal("signals were not reported by the group")
	}
	if ctx.Err() == nil {
		t.Error("group context not canceled")
	}

	var payloads []string
	for _, e := range unwrapAll(err) {
		var signalErr *SignalError
		if !errors.As(e, &signalErr) {
			t.Errorf("unexpected error in group: %v", e)
			continue
		}
		payloads = append(payloads, Format(signalErr.Payload))
	}
	sort.Strings(payloads)

	want := []string{"'B': second goroutine", "a"}
	if diff := cmp.Diff(want, payloads); diff != "" {
		t.Errorf("wrong payloads (-want +got):\n%s", diff)
	}

	var exc *Exception
	if !errors.As(err, &exc) || exc.Name != "B" {
		t.Errorf("exception payload not reachable through the group error: %v", err)
	}
}

func TestGroupNoSignal(t *testing.T) {
	g, _ := NewGroup(context.Background())
	for i := 0; i < 10; i++ {
		i := i
		g.Go(func() {
			if err := Try(func() { Signal(i) }, func(int) {}); err != nil {
				t.Error(err)
			}
		})
	}
	if err := g.Wait(); err != nil {
		t.Errorf("unexpected group error: %v", err)
	}
}

func TestPrivateStacks(t *testing.T) {
	var group errgroup.Group
	results := make([]int, 32)

	for i := range results {
		i := i
		group.Go(func() error {
			return Try(func() {
				var nest func(n int)
				nest = func(n int) {
					err := Try(func() {
						if n == i%4 {
							Signal(i)
						}
						nest(n + 1)
					}, func(v int) {
						results[i] = v*100 + Depth()
					})
					if err != nil {
						t.Error(err)
					}
				}
				nest(0)
			}, func(int) {
				t.Errorf("goroutine %d: signal escaped to the outer region", i)
			})
		})
	}
	if err := group.Wait(); err != nil {
		t.Fatal(err)
	}

	for i, v := range results {
		// The region at nesting level i%4 catches the signal; when its handler
		// runs, that region has exited and the outer regions are still open.
		if want := i*100 + i%4 + 1; v != want {
			t.Errorf("goroutine %d: want=%d got=%d", i, want, v)
		}
	}
}

func unwrapAll(err error) []error {
	if u, ok := err.(interface{ WrappedErrors() []error }); ok {
		return u.WrappedErrors()
	}
	return []error{err}
}
