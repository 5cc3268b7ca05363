package exception

import (
	"sync"

	"github.com/rs/zerolog"
)

type config struct {
	reporter Reporter
	maxDepth int
}

// Option configures a Stack.
type Option func(*config)

// WithReporter sets the Reporter receiving signals raised while no region is
// open on the stack.
func WithReporter(r Reporter) Option {
	return func(c *config) {
		c.reporter = r
	}
}

// WithLogger reports uncaught signals to logger.
func WithLogger(logger zerolog.Logger) Option {
	return WithReporter(LogReporter{Logger: logger})
}

// WithMaxDepth limits the number of regions that can be open at once on the
// stack. Entering a region beyond the limit panics with ErrStackExhausted.
// Zero means no limit.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		c.maxDepth = n
	}
}

var (
	defaultsMutex sync.RWMutex
	defaults      []Option
)

// Configure sets the options applied to goroutine local stacks created after
// the call returns. Stacks that already exist keep their configuration.
func Configure(opts ...Option) {
	defaultsMutex.Lock()
	defaults = append([]Option(nil), opts...)
	defaultsMutex.Unlock()
}

func newConfig(opts []Option) config {
	c := config{reporter: defaultReporter}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func defaultOptions() []Option {
	defaultsMutex.RLock()
	opts := defaults
	defaultsMutex.RUnlock()
	return opts
}
