package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"trace":   zerolog.TraceLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := level(in); got != want {
			t.Errorf("level(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{
		Level:     "debug",
		Format:    "json",
		Service:   "polyglot",
		Component: "segment",
		Writer:    &buf,
		Fields:    map[string]string{"model": "lid.176"},
	})
	l.Debug().Str("script", "Thai").Msg("tokenized")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("not json: %v (%s)", err, buf.String())
	}
	want := map[string]string{
		"level":     "debug",
		"message":   "tokenized",
		"service":   "polyglot",
		"component": "segment",
		"model":     "lid.176",
		"script":    "Thai",
	}
	for k, v := range want {
		if line[k] != v {
			t.Errorf("%s = %v, want %q", k, line[k], v)
		}
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "warn", Format: "json", Writer: &buf})
	l.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn, got %s", buf.String())
	}
	l.Warn().Msg("kept")
	if buf.Len() == 0 {
		t.Fatal("warn line missing")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_OUTPUT", "STDERR")
	t.Setenv("LOG_CALLER", "yes")
	t.Setenv("LOG_SAMPLE_EVERY", "4")
	t.Setenv("LOG_SERVICE", "")

	opt := FromEnv()
	if opt.Level != "warn" || opt.Format != "json" || opt.Output != "stderr" {
		t.Fatalf("unexpected options: %+v", opt)
	}
	if !opt.WithCaller || opt.SampleEvery != 4 {
		t.Fatalf("caller or sampling not read: %+v", opt)
	}
	if opt.Service != "polyglot" {
		t.Fatalf("service default = %q", opt.Service)
	}
}

func TestRequestScope(t *testing.T) {
	base := context.Background()
	if WithRequest(base, "") != base {
		t.Fatal("empty id should leave ctx unchanged")
	}
	if C(base) != Get() {
		t.Fatal("C without a request id should return the root logger")
	}
	if Named("") != Get() {
		t.Fatal("Named without a component should return the root logger")
	}

	ctx := WithRequest(base, "req-7")
	if got := RequestID(ctx); got != "req-7" {
		t.Fatalf("RequestID = %q", got)
	}
	if C(ctx) == Get() {
		t.Fatal("C with a request id should return a child logger")
	}
}
