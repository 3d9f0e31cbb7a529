package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestPlainFormatter_ComponentAndFieldSkipping(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	cases := []struct {
		name    string
		data    logrus.Fields
		message string
		want    string
	}{
		{
			name: "with component",
			data: logrus.Fields{
				"component":  "tui",
				"caller":     "x.go:1",
				"request_id": "r1",
				"kind":       "result",
			},
			message: "rendered response",
			want:    "x.go:1 [2025-01-02T03:04:05Z] [INFO] [tui] rendered response kind=result request_id=r1\n",
		},
		{
			name: "without component",
			data: logrus.Fields{
				"caller": "x.go:1",
				"foo":    "bar",
			},
			message: "hello",
			want:    "x.go:1 [2025-01-02T03:04:05Z] [INFO] hello foo=bar\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			entry := &logrus.Entry{
				Logger:  logrus.New(),
				Time:    ts,
				Level:   logrus.InfoLevel,
				Message: tc.message,
				Data:    tc.data,
			}
			out, err := (PlainFormatter{}).Format(entry)
			if err != nil {
				t.Fatalf("Format() error: %v", err)
			}
			if got := string(out); got != tc.want {
				t.Fatalf("unexpected format:\nwant: %q\ngot:  %q", tc.want, got)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	prev := Root().GetLevel()
	t.Cleanup(func() { Root().SetLevel(prev) })

	if err := SetLevel(""); err != nil {
		t.Fatalf("empty level should be a no-op: %v", err)
	}
	if err := SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel(debug): %v", err)
	}
	if Root().GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %v, want debug", Root().GetLevel())
	}
	if err := SetLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestHTTPLogger_WritesComponentAndTruncatesBody(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(PlainFormatter{})
	l.SetLevel(logrus.DebugLevel)

	hl := NewHTTPLogger(l)
	hl.Request("req-1", "POST", "/api/execute", "line1\nline2")
	hl.Response("req-1", 200, strings.Repeat("x", maxLoggedBody+10), 15*time.Millisecond)
	hl.Error("req-2", errors.New("connection refused"), time.Second)

	out := buf.String()
	for _, want := range []string{
		"[api] -> POST /api/execute id=req-1 body=line1\\nline2",
		"<- status=200 id=req-1 elapsed=15ms",
		"…",
		"[WARNING] [api] !! error id=req-2 elapsed=1s err=connection refused",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "logger/http.go") {
		t.Fatalf("caller should skip the logger frame:\n%s", out)
	}
}
