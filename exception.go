package exception

import (
	"fmt"
	"io"
	"strings"
)

// Exception is the structured payload raised by Raise.
type Exception struct {
	// Name identifies the kind of condition, for example "BAD_PARAMETER".
	Name string
	// Reason is a human readable description of the condition.
	Reason string
	// Context carries optional user data, nil when absent.
	Context any
}

// New creates an Exception.
func New(name, reason string, context any) *Exception {
	return &Exception{Name: name, Reason: reason, Context: context}
}

// Raise signals a new Exception on the goroutine local stack of the caller.
func Raise(name, reason string, context any) {
	Signal(New(name, reason, context))
}

// Raise signals a new Exception on the stack.
func (s *Stack) Raise(name, reason string, context any) {
	s.Signal(New(name, reason, context))
}

func (e *Exception) Error() string {
	return e.String()
}

func (e *Exception) String() string {
	if e == nil {
		return "<nil exception>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "'%s': %s", e.Name, e.Reason)
	if e.Context != nil {
		fmt.Fprintf(&b, " (context: %v)", e.Context)
	}
	return b.String()
}

// Format returns a description of a payload for diagnostics.
func Format(payload any) string {
	switch v := payload.(type) {
	case nil:
		return "<nil>"
	case *Exception:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Print writes the name and reason of e to w.
func Print(w io.Writer, e *Exception) error {
	if e == nil {
		_, err := fmt.Fprintln(w, "**** Exception caught: <nil exception>")
		return err
	}
	_, err := fmt.Fprintf(w, "**** Exception caught: '%s': %s\n", e.Name, e.Reason)
	return err
}
