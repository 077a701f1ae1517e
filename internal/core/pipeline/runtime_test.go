package pipeline_test

import (
	"context"
	"strings"
	"testing"

	"polyglot/internal/adapters/langid/lingua"
	"polyglot/internal/core/identify"
	"polyglot/internal/core/pipeline"
	"polyglot/internal/core/script"
	"polyglot/internal/core/segment"
)

// builtin runs the real tokenizers and a lingua model restricted to a few languages
func builtin(t *testing.T) *pipeline.Pipeline {
	t.Helper()
	d, err := segment.New(segment.Options{})
	if err != nil {
		t.Fatalf("segment.New: %v", err)
	}
	m, err := lingua.New([]string{"en", "th", "zh", "ja"})
	if err != nil {
		t.Fatalf("lingua.New: %v", err)
	}
	return pipeline.New(d, identify.New(m))
}

func TestBuiltinRuntime(t *testing.T) {
	p := builtin(t)

	tests := []struct {
		name   string
		in     string
		script script.Category
		lang   string
		keep   []string
	}{
		{"thai greeting", "สวัสดี", script.Thai, "th", []string{"สวัสดี"}},
		{"chinese with latin", "我爱 Python 和 GitHub", script.CJK, "zh", []string{"Python", "GitHub"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := p.Run(context.Background(), tc.in, 1)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if res.Script != tc.script {
				t.Fatalf("script = %v, want %v", res.Script, tc.script)
			}
			if got := res.Top().Code(); got != tc.lang {
				t.Fatalf("language = %q, want %q", got, tc.lang)
			}
			for _, w := range tc.keep {
				if !strings.Contains(res.Tokenized, w) {
					t.Fatalf("%q missing from tokenized %q", w, res.Tokenized)
				}
			}
		})
	}
}
