//go:build onnx

package onnx

import (
	"sync"

	"github.com/daulet/tokenizers"
	ort "github.com/yalue/onnxruntime_go"

	"polyglot/internal/core/identify"
	perr "polyglot/internal/platform/errors"
)

var envMu sync.Mutex

// Model owns the tokenizer and session; per call tensors keep Predict safe for concurrent use
type Model struct {
	tk      *tokenizers.Tokenizer
	session *ort.DynamicAdvancedSession
	labels  []string
	max     int
}

// New loads runtime, tokenizer, labels and model session
func New(opt Options) (*Model, error) {
	labels, err := LoadLabels(opt.LabelsPath)
	if err != nil {
		return nil, err
	}

	envMu.Lock()
	if lib := sharedLib(opt); lib != "" {
		ort.SetSharedLibraryPath(lib)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			envMu.Unlock()
			return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "initialize onnx runtime")
		}
	}
	envMu.Unlock()

	tk, err := tokenizers.FromFile(opt.TokenizerPath)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "load tokenizer %s", opt.TokenizerPath)
	}

	session, err := ort.NewDynamicAdvancedSession(opt.ModelPath,
		[]string{"input_ids", "attention_mask"},
		[]string{"logits"},
		nil,
	)
	if err != nil {
		_ = tk.Close()
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "load model %s", opt.ModelPath)
	}

	return &Model{tk: tk, session: session, labels: labels, max: opt.MaxTokens}, nil
}

// Name satisfies identify.Model
func (m *Model) Name() string { return "onnx" }

// Predict runs one forward pass and ranks the softmax over labels
func (m *Model) Predict(text string, k int) ([]identify.Prediction, error) {
	ids, _ := m.tk.Encode(text, true)
	if len(ids) == 0 {
		return nil, perr.InvalidArgf("tokenizer produced no ids")
	}
	inIDs, mask := encodeInputs(ids, m.max)
	shape := ort.NewShape(1, int64(len(inIDs)))

	in, err := ort.NewTensor(shape, inIDs)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeModel, "input tensor")
	}
	defer in.Destroy()

	am, err := ort.NewTensor(shape, mask)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeModel, "mask tensor")
	}
	defer am.Destroy()

	out, err := ort.NewEmptyTensor[float32](ort.NewShape(1, int64(len(m.labels))))
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeModel, "output tensor")
	}
	defer out.Destroy()

	if err := m.session.Run([]ort.Value{in, am}, []ort.Value{out}); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeModel, "run inference")
	}
	return identify.Rank(m.labels, identify.Softmax(out.GetData()), k), nil
}

// Languages lists label codes in class order
func (m *Model) Languages() []string {
	out := make([]string, 0, len(m.labels))
	for _, l := range m.labels {
		out = append(out, identify.Prediction{Label: l}.Code())
	}
	return out
}

// Close releases the session, tokenizer and runtime environment
func (m *Model) Close() error {
	var first error
	if m.session != nil {
		if err := m.session.Destroy(); err != nil {
			first = err
		}
	}
	if m.tk != nil {
		if err := m.tk.Close(); err != nil && first == nil {
			first = err
		}
	}
	envMu.Lock()
	defer envMu.Unlock()
	if ort.IsInitialized() {
		if err := ort.DestroyEnvironment(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
