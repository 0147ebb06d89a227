package pg

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestCompact(t *testing.T) {
	t.Parallel()
	in := "SELECT sls_ord_num,\n\t\tprd_key\n  FROM fact_sales  "
	if got := Compact(in); got != "SELECT sls_ord_num, prd_key FROM fact_sales" {
		t.Fatalf("compact: %q", got)
	}
}

func TestTracer_LogsSlowAsWarn(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tr := Tracer(zerolog.New(&buf).Level(zerolog.ErrorLevel))

	tr.OnQuery(context.Background(), QueryEvent{SQL: "select 1", ElapsedUS: 1500})
	tr.OnQuery(context.Background(), QueryEvent{SQL: "select pg_sleep(1)", Slow: true, Err: errors.New("late")})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d: %s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], `"level":"info"`) || !strings.Contains(lines[0], `"elapsed_ms":1.5`) {
		t.Fatalf("first line: %s", lines[0])
	}
	if !strings.Contains(lines[1], `"level":"warn"`) || !strings.Contains(lines[1], `"error":"late"`) {
		t.Fatalf("second line: %s", lines[1])
	}
}

func TestOpen_BadURL(t *testing.T) {
	t.Parallel()
	if _, err := Open(context.Background(), Config{URL: "postgres://%zz"}, nil, nil); err == nil {
		t.Fatalf("expected parse error")
	}
}
