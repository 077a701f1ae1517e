package segment

import (
	"unicode"

	gothaiwordcut "github.com/narongdejsrn/go-thaiwordcut"

	"polyglot/internal/core/script"
)

// Thai wraps a maximal-matching wordcut segmenter over its bundled lexitron dictionary
type Thai struct {
	seg *gothaiwordcut.Segmenter
}

// NewThai loads the dictionary once
func NewThai() (*Thai, error) {
	seg := gothaiwordcut.Wordcut()
	seg.LoadDefaultDict()
	return &Thai{seg: seg}, nil
}

type runKind int

const (
	runSpace runKind = iota
	runThai
	runOther
)

func kindOf(r rune) runKind {
	switch {
	case unicode.IsSpace(r):
		return runSpace
	case script.Of(r) == script.Thai:
		return runThai
	default:
		return runOther
	}
}

// Cut splits text into words
// Thai runs go through wordcut, whitespace runs and non-Thai runs are kept as single tokens
func (th *Thai) Cut(text string) ([]string, error) {
	rs := []rune(text)
	out := make([]string, 0, len(rs)/3+1)
	for i := 0; i < len(rs); {
		k := kindOf(rs[i])
		j := i + 1
		for j < len(rs) && kindOf(rs[j]) == k {
			j++
		}
		run := string(rs[i:j])
		if k != runThai {
			out = append(out, run)
		} else {
			for _, w := range th.seg.Segment(run) {
				if w != "" {
					out = append(out, w)
				}
			}
		}
		i = j
	}
	return out, nil
}
