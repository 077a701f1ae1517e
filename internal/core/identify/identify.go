// Package identify turns raw classifier output into a bare language code and confidence
package identify

import (
	"strings"

	perr "polyglot/internal/platform/errors"
)

// LabelPrefix is the marker classifier labels carry in front of the language code
const LabelPrefix = "__label__"

// Prediction is one ranked classifier answer
// Label is the raw label as the model reports it, Prob is in [0,1]
type Prediction struct {
	Label string  `json:"label"`
	Prob  float64 `json:"prob"`
}

// Code returns the label with the marker stripped
func (p Prediction) Code() string { return strings.TrimPrefix(p.Label, LabelPrefix) }

// Model is a pretrained language classifier loaded once at startup
// Predict returns at most k predictions ordered by probability, highest first
type Model interface {
	Name() string
	Predict(text string, k int) ([]Prediction, error)
}

// LanguageLister is implemented by models that can enumerate their label set
type LanguageLister interface {
	Languages() []string
}

// Identifier wraps a Model; it holds no mutable state
type Identifier struct {
	model Model
}

// New returns an Identifier over m, panics on nil to surface wiring bugs at startup
func New(m Model) *Identifier {
	if m == nil {
		panic("identify.New requires a non nil Model")
	}
	return &Identifier{model: m}
}

// Model returns the wrapped model
func (id *Identifier) Model() Model { return id.model }

// Identify returns the top language code and its confidence
// no threshold is applied, low confidence answers are returned as is
func (id *Identifier) Identify(text string) (string, float64, error) {
	preds, err := id.TopK(text, 1)
	if err != nil {
		return "", 0, err
	}
	return preds[0].Code(), preds[0].Prob, nil
}

// TopK returns up to k predictions (k < 1 means 1), always at least one on success
func (id *Identifier) TopK(text string, k int) ([]Prediction, error) {
	if k < 1 {
		k = 1
	}
	preds, err := id.model.Predict(singleLine(text), k)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeModel, "%s predict", id.model.Name())
	}
	if len(preds) == 0 {
		return nil, perr.Internalf("%s returned no prediction", id.model.Name())
	}
	if len(preds) > k {
		preds = preds[:k]
	}
	return preds, nil
}

// singleLine folds line breaks into spaces, classifiers predict one line at a time
func singleLine(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
