package modkit

import (
	"context"
	"testing"

	"polyglot/internal/platform/config"
)

func TestDeps_ZeroValue(t *testing.T) {
	t.Parallel()
	var d Deps
	if n := d.ProbeNames(); len(n) != 0 {
		t.Fatalf("zero Deps should have no probes, got %v", n)
	}
}

func TestDeps_ProbeNamesSorted(t *testing.T) {
	t.Parallel()
	ok := func(context.Context) error { return nil }
	d := Deps{
		Cfg:    config.New(),
		Probes: map[string]Probe{"tokenizers": ok, "classifier": ok},
	}
	names := d.ProbeNames()
	if len(names) != 2 || names[0] != "classifier" || names[1] != "tokenizers" {
		t.Fatalf("ProbeNames = %v", names)
	}
}
