// Package lingua adapts the lingua-go n-gram detector to identify.Model
package lingua

import (
	"sort"
	"strings"

	lg "github.com/pemistahl/lingua-go"

	"polyglot/internal/core/identify"
	perr "polyglot/internal/platform/errors"
)

// Model wraps a preloaded lingua detector, safe for concurrent use
type Model struct {
	det   lg.LanguageDetector
	langs []lg.Language
}

// New builds a detector over the given ISO 639-1 codes, or every language when codes is empty
func New(codes []string) (*Model, error) {
	langs, err := resolve(codes)
	if err != nil {
		return nil, err
	}
	det := lg.NewLanguageDetectorBuilder().
		FromLanguages(langs...).
		WithPreloadedLanguageModels().
		Build()
	return &Model{det: det, langs: langs}, nil
}

// resolve maps codes onto lingua languages; lingua needs at least two
func resolve(codes []string) ([]lg.Language, error) {
	all := lg.AllLanguages()
	if len(codes) == 0 {
		return all, nil
	}
	byCode := make(map[string]lg.Language, len(all))
	for _, l := range all {
		byCode[code(l)] = l
	}
	out := make([]lg.Language, 0, len(codes))
	seen := make(map[lg.Language]bool, len(codes))
	for _, c := range codes {
		l, ok := byCode[strings.ToLower(strings.TrimSpace(c))]
		if !ok {
			return nil, perr.InvalidArgf("lingua does not know language %q", c)
		}
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	if len(out) < 2 {
		return nil, perr.InvalidArgf("lingua needs at least two languages, got %d", len(out))
	}
	return out, nil
}

func code(l lg.Language) string { return strings.ToLower(l.IsoCode639_1().String()) }

// Name satisfies identify.Model
func (m *Model) Name() string { return "lingua" }

// Predict returns up to k languages ordered by confidence
func (m *Model) Predict(text string, k int) ([]identify.Prediction, error) {
	vals := m.det.ComputeLanguageConfidenceValues(text)
	if len(vals) == 0 {
		return []identify.Prediction{{Label: identify.LabelPrefix + "und", Prob: 0}}, nil
	}
	if k > len(vals) {
		k = len(vals)
	}
	out := make([]identify.Prediction, 0, k)
	for _, v := range vals[:k] {
		out = append(out, identify.Prediction{
			Label: identify.LabelPrefix + code(v.Language()),
			Prob:  v.Value(),
		})
	}
	return out, nil
}

// Languages lists the loaded ISO 639-1 codes sorted
func (m *Model) Languages() []string {
	out := make([]string, 0, len(m.langs))
	for _, l := range m.langs {
		out = append(out, code(l))
	}
	sort.Strings(out)
	return out
}
