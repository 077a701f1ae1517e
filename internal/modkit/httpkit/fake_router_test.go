package httpkit

import (
	"net/http"

	phttp "polyglot/internal/platform/net/http"
)

type registration struct {
	verb string
	path string
	ph   phttp.Handler
	h    http.Handler
}

// fakeRouter records every call made against the Router seam
type fakeRouter struct {
	prefixes  []string
	useCalls  int
	lastMWLen int
	mountHits int
	regs      []registration
}

func (f *fakeRouter) Mux() http.Handler { return http.NewServeMux() }

func (f *fakeRouter) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f)
}

func (f *fakeRouter) Group(fn func(Router)) { fn(f) }

func (f *fakeRouter) Use(mw ...func(http.Handler) http.Handler) {
	f.useCalls++
	f.lastMWLen = len(mw)
}

func (f *fakeRouter) Handle(path string, h http.Handler) {
	f.regs = append(f.regs, registration{verb: "HANDLE", path: path, h: h})
}

func (f *fakeRouter) Get(path string, h phttp.Handler) {
	f.regs = append(f.regs, registration{verb: http.MethodGet, path: path, ph: h})
}

func (f *fakeRouter) Post(path string, h phttp.Handler) {
	f.regs = append(f.regs, registration{verb: http.MethodPost, path: path, ph: h})
}
