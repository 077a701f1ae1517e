// Package langid selects and opens the pretrained language classifier backend
package langid

import (
	"io"
	"strings"

	"polyglot/internal/adapters/langid/lingua"
	"polyglot/internal/adapters/langid/onnx"
	"polyglot/internal/adapters/langid/whatlang"
	"polyglot/internal/core/identify"
	"polyglot/internal/platform/config"
	perr "polyglot/internal/platform/errors"
)

// Backend names accepted by Open
const (
	BackendLingua   = "lingua"
	BackendWhatlang = "whatlang"
	BackendONNX     = "onnx"
)

// Options configures the classifier backend
type Options struct {
	Backend       string
	ModelPath     string
	TokenizerPath string
	LabelsPath    string
	ORTLib        string
	Languages     []string // ISO 639-1 codes restricting lingua, empty means all
}

// FromConfig reads CORE_LANGID_* values
func FromConfig(cfg config.Conf) Options {
	lc := cfg.Prefix("CORE_LANGID_")
	return Options{
		Backend:       strings.ToLower(lc.MayEnum("BACKEND", BackendLingua, BackendLingua, BackendWhatlang, BackendONNX)),
		ModelPath:     lc.MayString("MODEL_PATH", "models/lang_detect.onnx"),
		TokenizerPath: lc.MayString("TOKENIZER_PATH", "models/tokenizer.json"),
		LabelsPath:    lc.MayString("LABELS_PATH", "models/labels.txt"),
		ORTLib:        lc.MayString("ORT_LIB", ""),
		Languages:     lc.MayCSV("LANGUAGES", nil),
	}
}

// Open loads the configured model; failures are fatal at startup
func Open(opt Options) (identify.Model, error) {
	switch strings.ToLower(strings.TrimSpace(opt.Backend)) {
	case "", BackendLingua:
		m, err := lingua.New(opt.Languages)
		if err != nil {
			return nil, err
		}
		return m, nil
	case BackendWhatlang:
		return whatlang.New(), nil
	case BackendONNX:
		m, err := onnx.New(onnx.Options{
			ModelPath:     opt.ModelPath,
			TokenizerPath: opt.TokenizerPath,
			LabelsPath:    opt.LabelsPath,
			SharedLib:     opt.ORTLib,
		})
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, perr.InvalidArgf("unknown langid backend %q", opt.Backend)
	}
}

// Close releases model resources when the backend holds any
func Close(m identify.Model) error {
	if c, ok := m.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
