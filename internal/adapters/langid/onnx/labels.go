// Package onnx runs a sequence classification language model through ONNX Runtime
// Build with -tags onnx; the default build returns an error from New
package onnx

import (
	"bufio"
	"io"
	"os"
	"strings"

	"polyglot/internal/core/identify"
	perr "polyglot/internal/platform/errors"
)

// Options locates the model artifacts
type Options struct {
	ModelPath     string
	TokenizerPath string
	LabelsPath    string
	SharedLib     string // libonnxruntime path, empty uses ONNXRUNTIME_SHARED_LIBRARY_PATH or the system default
	MaxTokens     int    // 0 means 512
}

const defaultMaxTokens = 512

// LoadLabels reads one label per line in class index order
func LoadLabels(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "open labels %s", path)
	}
	defer f.Close()
	return ParseLabels(f)
}

// ParseLabels reads labels, adding the classifier marker where missing
// blank lines and # comments are skipped
func ParseLabels(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.HasPrefix(line, identify.LabelPrefix) {
			line = identify.LabelPrefix + line
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "read labels")
	}
	if len(out) == 0 {
		return nil, perr.InvalidArgf("labels file has no entries")
	}
	return out, nil
}

// sharedLib resolves the runtime library path
func sharedLib(opt Options) string {
	if opt.SharedLib != "" {
		return opt.SharedLib
	}
	return os.Getenv("ONNXRUNTIME_SHARED_LIBRARY_PATH")
}

// encodeInputs widens token ids and builds the attention mask, truncating to limit
func encodeInputs(ids []uint32, limit int) ([]int64, []int64) {
	if limit <= 0 {
		limit = defaultMaxTokens
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}
	in := make([]int64, len(ids))
	mask := make([]int64, len(ids))
	for i, id := range ids {
		in[i] = int64(id)
		mask[i] = 1
	}
	return in, mask
}
