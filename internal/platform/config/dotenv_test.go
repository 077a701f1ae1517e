package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "test.env")
	if err := os.WriteFile(p, []byte("POLYGLOT_DOTENV_A=from-file\nPOLYGLOT_DOTENV_B=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("POLYGLOT_DOTENV_A", "from-env")
	// registered so t cleans it up after godotenv sets it
	t.Setenv("POLYGLOT_DOTENV_B", "")
	_ = os.Unsetenv("POLYGLOT_DOTENV_B")

	loaded, err := LoadDotenv(filepath.Join(dir, "missing.env"), p)
	if err != nil {
		t.Fatalf("LoadDotenv: %v", err)
	}
	if len(loaded) != 1 || loaded[0] != p {
		t.Fatalf("loaded = %v", loaded)
	}
	if got := New().MayString("POLYGLOT_DOTENV_A", ""); got != "from-env" {
		t.Fatalf("existing env must win, got %q", got)
	}
	if got := New().MayString("POLYGLOT_DOTENV_B", ""); got != "from-file" {
		t.Fatalf("file value not loaded, got %q", got)
	}
}
