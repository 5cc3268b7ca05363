package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/stealthrocket/exception"
)

const usage = `
exceptiondemo runs the protected region scenarios of the exception package.

USAGE:
  exceptiondemo [OPTIONS]

OPTIONS:
  -h, --help     Show this help information
  -no-color      Disable colored headings
`

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	var noColor bool
	flag.Usage = func() { println(usage[1:]) }
	flag.BoolVar(&noColor, "no-color", false, "")
	flag.Parse()

	if noColor {
		color.NoColor = true
	}
	return demo(w)
}

type scenario struct {
	title string
	run   func(w io.Writer) error
}

var heading = color.New(color.FgCyan, color.Bold).SprintFunc()

func demo(w io.Writer) error {
	for _, s := range scenarios {
		fmt.Fprintln(w, heading("== "+s.title))
		if err := s.run(w); err != nil {
			return fmt.Errorf("%s: %w", s.title, err)
		}
	}
	return nil
}

var scenarios = []scenario{
	{
		title: "normal execution",
		run: func(w io.Writer) error {
			return exception.Try(func() {
				fmt.Fprintln(w, "Normal execution")
			}, func(*exception.Exception) {
				fmt.Fprintln(w, "No exceptions are thrown, this should never be executed")
			})
		},
	},
	{
		title: "integer payload",
		run: func(w io.Writer) error {
			return exception.Try(func() {
				exception.Signal(5)
			}, func(code int) {
				fmt.Fprintf(w, "Exception caught (code %d)\n", code)
			})
		},
	},
	{
		title: "string payload",
		run: func(w io.Writer) error {
			return exception.Try(func() {
				exception.Signal("Unknown error")
			}, func(msg string) {
				fmt.Fprintf(w, "Exception caught: %s\n", msg)
			})
		},
	},
	{
		title: "structured payload",
		run: func(w io.Writer) error {
			return exception.Try(func() {
				exception.Signal(exception.New("BAD_CAST", "a type cast failed", nil))
			}, func(e *exception.Exception) {
				fmt.Fprintf(w, "Exception caught: '%s' Reason: %s. Context: %v\n", e.Name, e.Reason, e.Context)
			})
		},
	},
	{
		title: "raise",
		run: func(w io.Writer) error {
			return exception.Try(func() {
				exception.Raise("BAD_CAST", "a type cast failed", nil)
			}, func(e *exception.Exception) {
				fmt.Fprintf(w, "Exception caught: '%s' Reason: %s. Context: %v\n", e.Name, e.Reason, e.Context)
			})
		},
	},
	{
		title: "signal from a function",
		run: func(w io.Writer) error {
			var err error
			tryErr := exception.Try(func() {
				checkParameter(-1)
			}, func(e *exception.Exception) {
				err = exception.Print(w, e)
			})
			if tryErr != nil {
				return tryErr
			}
			return err
		},
	},
	{
		title: "nested regions",
		run: func(w io.Writer) error {
			var inner error
			err := exception.Try(func() {
				inner = exception.Try(func() {
					exception.Signal(5)
				}, func(code int) {
					fmt.Fprintf(w, "Exception caught (code %d)\n", code)
				})
			}, func(any) {
				fmt.Fprintln(w, "outer handler, this should never be executed")
			})
			if err != nil {
				return err
			}
			return inner
		},
	},
	{
		title: "uncaught signal",
		run: func(w io.Writer) error {
			s := exception.NewStack(exception.WithReporter(exception.ReporterFunc(func(v any) {
				fmt.Fprintf(w, "uncaught signal: %s\n", exception.Format(v))
			})))
			s.Raise("STRAY", "no protected region is open", nil)
			fmt.Fprintln(w, "execution continues")
			return nil
		},
	},
}

func checkParameter(i int) {
	if i < 0 {
		exception.Raise("BAD_PARAMETER", "negative values are not allowed", nil)
	}
}
