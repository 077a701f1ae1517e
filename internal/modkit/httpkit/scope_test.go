package httpkit

import (
	"net/http"
	"testing"
)

func TestScope(t *testing.T) {
	noop := func(next http.Handler) http.Handler { return next }
	cases := []struct {
		name string
		mw   []Middleware
		uses int
	}{
		{"with middleware", []Middleware{noop, noop}, 1},
		{"without middleware", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := &fakeRouter{}
			Scope(r, "/detect", tc.mw, func(sub Router) {
				r.mountHits++
				Get(sub, "/languages", func(*http.Request) (any, error) { return []string{"th"}, nil })
			})
			if len(r.prefixes) != 1 || r.prefixes[0] != "/detect" {
				t.Fatalf("prefixes = %v", r.prefixes)
			}
			if r.useCalls != tc.uses || r.lastMWLen != len(tc.mw) {
				t.Fatalf("Use calls=%d len=%d", r.useCalls, r.lastMWLen)
			}
			if r.mountHits != 1 || len(r.regs) != 1 || r.regs[0].path != "/languages" {
				t.Fatalf("hits=%d regs=%+v", r.mountHits, r.regs)
			}
		})
	}
}

func TestAPIPrefix(t *testing.T) {
	for in, want := range map[string]string{"v1": "/api/v1", "/v2": "/api/v2", "v3/": "/api/v3"} {
		if got := APIPrefix(in); got != want {
			t.Errorf("APIPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	r := &fakeRouter{}
	MountAPIV1(r, nil, func(Router) { r.mountHits++ })
	if r.prefixes[0] != "/api/v1" || r.mountHits != 1 {
		t.Fatalf("prefixes=%v hits=%d", r.prefixes, r.mountHits)
	}
}
