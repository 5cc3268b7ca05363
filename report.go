package exception

import (
	"os"

	"github.com/rs/zerolog"
)

// Reporter receives signals raised while no protected region is open.
type Reporter interface {
	Report(payload any)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(payload any)

func (f ReporterFunc) Report(payload any) { f(payload) }

// LogReporter writes one log line per uncaught signal.
type LogReporter struct {
	Logger zerolog.Logger
}

func (r LogReporter) Report(payload any) {
	ev := r.Logger.Warn().Str("payload", Format(payload))
	if e, ok := payload.(*Exception); ok && e != nil {
		ev = ev.Str("name", e.Name)
	}
	ev.Msg("uncaught signal")
}

type nopReporter struct{}

func (nopReporter) Report(any) {}

var defaultReporter Reporter = LogReporter{
	Logger: zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, NoColor: true}).With().Timestamp().Logger(),
}
