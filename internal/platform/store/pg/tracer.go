package pg

import (
	"context"

	"voicejournal/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent is one executed statement with its timing and outcome
type QueryEvent struct {
	SQL       string
	Args      any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer consumes query events when SQL logging is on
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

type sqlTracer struct{ log logger.Logger }

// Tracer builds a tracer pinned to debug level so SQL prints even when the
// process root level is quieter
func Tracer(root logger.Logger) QueryTracer {
	return &sqlTracer{
		log: root.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger(),
	}
}

func (z *sqlTracer) OnQuery(_ context.Context, ev QueryEvent) {
	evt := z.log.Info()
	if ev.Slow {
		evt = z.log.Warn()
	}
	evt.
		Float64("elapsed_ms", float64(ev.ElapsedUS)/1000.0).
		Bool("slow", ev.Slow).
		Str("sql", oneLine(ev.SQL)).
		Interface("args", ev.Args).
		Err(ev.Err).
		Msg("pg query")
}

// oneLine collapses whitespace runs so multiline SQL logs flat
func oneLine(s string) string {
	out := make([]rune, 0, len(s))
	inRun := false
	for _, r := range s {
		switch r {
		case ' ', '\n', '\t', '\r':
			if !inRun {
				out = append(out, ' ')
			}
			inRun = true
		default:
			inRun = false
			out = append(out, r)
		}
	}
	return string(out)
}
