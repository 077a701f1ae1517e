package langid

import (
	"testing"

	"polyglot/internal/core/identify"
	perr "polyglot/internal/platform/errors"
	"polyglot/internal/platform/config"
)

func TestFromConfig_Defaults(t *testing.T) {
	opt := FromConfig(config.New())
	if opt.Backend != BackendLingua {
		t.Fatalf("Backend = %q, want lingua", opt.Backend)
	}
	if opt.ModelPath != "models/lang_detect.onnx" || opt.LabelsPath != "models/labels.txt" {
		t.Fatalf("unexpected paths: %+v", opt)
	}
	if len(opt.Languages) != 0 {
		t.Fatalf("Languages = %v, want empty", opt.Languages)
	}
}

func TestFromConfig_Env(t *testing.T) {
	t.Setenv("CORE_LANGID_BACKEND", "WhatLang")
	t.Setenv("CORE_LANGID_LANGUAGES", "en, zh ,ja")
	opt := FromConfig(config.New())
	if opt.Backend != BackendWhatlang {
		t.Fatalf("Backend = %q", opt.Backend)
	}
	if len(opt.Languages) != 3 || opt.Languages[1] != "zh" {
		t.Fatalf("Languages = %v", opt.Languages)
	}
}

func TestOpen_Unknown(t *testing.T) {
	_, err := Open(Options{Backend: "fasttext"})
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestOpen_Whatlang(t *testing.T) {
	m, err := Open(Options{Backend: BackendWhatlang})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if m.Name() != "whatlang" {
		t.Fatalf("Name = %q", m.Name())
	}
	if err := Close(m); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

type closer struct {
	identify.Model
	closed bool
}

func (c *closer) Close() error { c.closed = true; return nil }

func TestClose_CallsCloser(t *testing.T) {
	c := &closer{}
	if err := Close(c); err != nil || !c.closed {
		t.Fatalf("Close did not reach closer: %v %v", err, c.closed)
	}
}
