// Package testkit provides testing helpers shared across packages
package testkit

import (
	"strings"
	"sync"
	"testing"
)

// MustPanic asserts that fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustContain asserts that haystack contains needle, long haystacks are cut in the failure message
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		return
	}
	shown := haystack
	if r := []rune(shown); len(r) > 512 {
		shown = string(r[:512]) + "..."
	}
	t.Fatalf("expected output to contain %q\n\ngot:\n%s", needle, shown)
}

var seamMu sync.Mutex

// Swap replaces a package-level variable, usually a loader seam, until the test ends
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// Serial holds a process wide lock until the test ends
// call it first in tests that Swap seams other tests also touch
func Serial(t *testing.T) {
	t.Helper()
	seamMu.Lock()
	t.Cleanup(seamMu.Unlock)
}
