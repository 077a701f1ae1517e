package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"polyglot/internal/core/identify"
	"polyglot/internal/core/pipeline"
	"polyglot/internal/core/script"
	"polyglot/internal/services/detect/domain"
	kit "polyglot/internal/platform/testkit"
)

type fakeRunner struct {
	calls int
	gotK  int
	gotIn string
	res   pipeline.Result
	err   error
}

func (f *fakeRunner) Run(_ context.Context, text string, k int) (pipeline.Result, error) {
	f.calls++
	f.gotK = k
	f.gotIn = text
	return f.res, f.err
}

func thaiResult() pipeline.Result {
	return pipeline.Result{
		Script:    script.Thai,
		Tokenized: "สวัสดี ครับ",
		Predictions: []identify.Prediction{
			{Label: "__label__th", Prob: 0.97314},
			{Label: "__label__lo", Prob: 0.0123},
		},
	}
}

func TestHandleRequest_BlankPrompts(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t "} {
		r := &fakeRunner{}
		got, err := New(r, Config{}).HandleRequest(context.Background(), in)
		if err != nil {
			t.Fatalf("HandleRequest(%q): %v", in, err)
		}
		if got != domain.Prompt {
			t.Fatalf("HandleRequest(%q) = %q, want prompt", in, got)
		}
		if r.calls != 0 {
			t.Fatalf("blank input must not reach the pipeline")
		}
	}
}

func TestHandleRequest_Formats(t *testing.T) {
	r := &fakeRunner{res: thaiResult()}
	got, err := New(r, Config{}).HandleRequest(context.Background(), " สวัสดีครับ ")
	if err != nil {
		t.Fatalf("HandleRequest: %v", err)
	}
	if got != "Language: th\nConfidence: 97.31%" {
		t.Fatalf("got %q", got)
	}
	if r.gotIn != " สวัสดีครับ " {
		t.Fatalf("pipeline should see the untrimmed input, got %q", r.gotIn)
	}
	if r.gotK != 1 {
		t.Fatalf("k = %d, want 1", r.gotK)
	}
}

func TestHandleRequest_Idempotent(t *testing.T) {
	s := New(&fakeRunner{res: thaiResult()}, Config{})
	a, _ := s.HandleRequest(context.Background(), "x")
	b, _ := s.HandleRequest(context.Background(), "x")
	if a != b {
		t.Fatalf("outputs differ: %q vs %q", a, b)
	}
}

func TestHandleRequest_PropagatesFailure(t *testing.T) {
	boom := errors.New("segfault in tokenizer")
	got, err := New(&fakeRunner{err: boom}, Config{}).HandleRequest(context.Background(), "abc")
	if !errors.Is(err, boom) {
		t.Fatalf("expected runner error, got %v", err)
	}
	if got != "" {
		t.Fatalf("no partial output expected, got %q", got)
	}
}

func TestDetect_Structured(t *testing.T) {
	kit.Swap(t, &newID, func() string { return "id-1" })
	r := &fakeRunner{res: thaiResult()}
	out, err := New(r, Config{Top: 2}).Detect(context.Background(), domain.DetectInput{Text: "สวัสดีครับ"})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if r.gotK != 2 {
		t.Fatalf("default top not applied, k = %d", r.gotK)
	}
	if out.ID != "id-1" || out.Language != "th" || out.Script != "thai" {
		t.Fatalf("unexpected output %+v", out)
	}
	if out.LanguageName != "Thai" {
		t.Fatalf("LanguageName = %q", out.LanguageName)
	}
	if out.Percent != "97.31%" || out.Tokenized != "สวัสดี ครับ" {
		t.Fatalf("unexpected output %+v", out)
	}
	if len(out.Candidates) != 2 || out.Candidates[1].Language != "lo" {
		t.Fatalf("Candidates = %+v", out.Candidates)
	}
	if out.Prompt != "" {
		t.Fatalf("prompt should be empty on success")
	}
}

func TestDetect_ExplicitTop(t *testing.T) {
	r := &fakeRunner{res: thaiResult()}
	_, _ = New(r, Config{Top: 2}).Detect(context.Background(), domain.DetectInput{Text: "x", Top: 5})
	if r.gotK != 5 {
		t.Fatalf("k = %d, want 5", r.gotK)
	}
}

func TestDetect_BlankIsNotAnError(t *testing.T) {
	out, err := New(&fakeRunner{}, Config{}).Detect(context.Background(), domain.DetectInput{Text: "  "})
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if out.Prompt != domain.Prompt || out.Output != domain.Prompt || out.ID != "" {
		t.Fatalf("unexpected output %+v", out)
	}
}

func TestNew_RequiresRunner(t *testing.T) {
	kit.MustPanic(t, func() { _ = New(nil, Config{}) })
}

func TestPercent(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00%"},
		{1, "100.00%"},
		{0.123456, "12.35%"},
		{1.2, "100.00%"},
		{-0.1, "0.00%"},
	}
	for _, tc := range tests {
		if got := Percent(tc.in); got != tc.want {
			t.Fatalf("Percent(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormat_TwoLines(t *testing.T) {
	got := Format("en", 0.5)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 || lines[0] != "Language: en" || lines[1] != "Confidence: 50.00%" {
		t.Fatalf("Format = %q", got)
	}
}

func TestLanguageName(t *testing.T) {
	if got := LanguageName("ja"); got != "Japanese" {
		t.Fatalf("ja = %q", got)
	}
	if got := LanguageName("not a code!"); got != "" {
		t.Fatalf("bad code = %q", got)
	}
}
