//go:build !onnx

package onnx

import (
	"polyglot/internal/core/identify"
	perr "polyglot/internal/platform/errors"
)

// Model is unavailable without the onnx build tag
type Model struct{}

// New reports that the binary was built without ONNX Runtime support
func New(opt Options) (*Model, error) {
	if _, err := LoadLabels(opt.LabelsPath); err != nil {
		return nil, err
	}
	return nil, perr.Newf(perr.ErrorCodeUnavailable, "onnx backend not compiled in, rebuild with -tags onnx")
}

// Name satisfies identify.Model
func (*Model) Name() string { return "onnx" }

// Predict always fails in this build
func (*Model) Predict(string, int) ([]identify.Prediction, error) {
	return nil, perr.Newf(perr.ErrorCodeUnavailable, "onnx backend not compiled in")
}
