// Package whatlang adapts whatlanggo trigram detection to identify.Model
package whatlang

import (
	"github.com/abadojack/whatlanggo"

	"polyglot/internal/core/identify"
)

// Model is stateless and needs no model file
type Model struct{}

// New returns the detector
func New() *Model { return &Model{} }

// Name satisfies identify.Model
func (*Model) Name() string { return "whatlang" }

// Predict returns a single prediction, whatlanggo only reports its best guess
func (*Model) Predict(text string, _ int) ([]identify.Prediction, error) {
	info := whatlanggo.Detect(text)
	if info.Lang < 0 {
		return []identify.Prediction{{Label: identify.LabelPrefix + "und", Prob: 0}}, nil
	}
	code := info.Lang.Iso6391()
	if code == "" {
		code = info.Lang.Iso6393()
	}
	if code == "" {
		return []identify.Prediction{{Label: identify.LabelPrefix + "und", Prob: 0}}, nil
	}
	return []identify.Prediction{{Label: identify.LabelPrefix + code, Prob: info.Confidence}}, nil
}
