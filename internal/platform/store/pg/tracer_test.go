package pg

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"

	"voicejournal/internal/platform/testkit"
)

func TestTracer_LogsQueryLine(t *testing.T) {
	var buf bytes.Buffer
	root := zerolog.New(&buf)

	tr := Tracer(root)
	tr.OnQuery(context.Background(), QueryEvent{
		SQL:       "SELECT\n\t1",
		ElapsedUS: 1500,
		Slow:      false,
	})

	out := buf.String()
	testkit.MustContain(t, out, `"sql":"SELECT 1"`)
	testkit.MustContain(t, out, `"component":"pg"`)
	testkit.MustContain(t, out, "pg query")
}

func TestTracer_SlowQueryWarns(t *testing.T) {
	var buf bytes.Buffer
	root := zerolog.New(&buf)

	tr := Tracer(root)
	tr.OnQuery(context.Background(), QueryEvent{SQL: "SELECT 1", Slow: true})

	testkit.MustContain(t, buf.String(), `"level":"warn"`)
}

func TestOneLine(t *testing.T) {
	in := "SELECT *\n  FROM entries\twHERE  a = 1"
	want := "SELECT * FROM entries wHERE a = 1"
	if got := oneLine(in); got != want {
		t.Fatalf("oneLine: got %q want %q", got, want)
	}
}
