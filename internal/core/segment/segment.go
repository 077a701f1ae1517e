// Package segment splits text into space-joined words for scripts without whitespace word boundaries
package segment

import (
	"strings"

	"polyglot/internal/core/script"
	perr "polyglot/internal/platform/errors"
)

// Func splits text into tokens. Implementations must be safe for concurrent use
type Func func(string) ([]string, error)

// Dispatcher maps a script category to exactly one tokenizer
// built once at startup and read-only afterwards
type Dispatcher struct {
	funcs map[script.Category]Func
}

// NewDispatcher builds a dispatcher from an explicit table (tests inject fakes here)
func NewDispatcher(funcs map[script.Category]Func) *Dispatcher {
	cp := make(map[script.Category]Func, len(funcs))
	for k, v := range funcs {
		if v != nil {
			cp[k] = v
		}
	}
	return &Dispatcher{funcs: cp}
}

// Options configures the built-in tokenizers
type Options struct {
	// ChineseDict is an optional gse dictionary file, the embedded dictionary is used when empty
	ChineseDict string
}

// New constructs the Chinese, Japanese and Thai tokenizers once
// any construction failure is returned and should be treated as fatal
func New(opt Options) (*Dispatcher, error) {
	zh, err := NewChinese(opt.ChineseDict)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeTokenizer, "chinese segmenter")
	}
	ja, err := NewJapanese()
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeTokenizer, "japanese tokenizer")
	}
	th, err := NewThai()
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeTokenizer, "thai segmenter")
	}
	return NewDispatcher(map[script.Category]Func{
		script.CJK:  zh.Cut,
		script.Kana: ja.Cut,
		script.Thai: th.Cut,
	}), nil
}

// Tokenize runs the tokenizer for cat and joins tokens with a single space
// Unclassified text, or a category with no tokenizer, is returned unchanged
func (d *Dispatcher) Tokenize(text string, cat script.Category) (string, error) {
	fn, ok := d.funcs[cat]
	if !ok || cat == script.Unclassified {
		return text, nil
	}
	if text == "" {
		return "", nil
	}
	toks, err := fn(text)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeTokenizer, "tokenize %s", cat)
	}
	return strings.Join(toks, " "), nil
}

// Has reports whether a tokenizer is registered for cat
func (d *Dispatcher) Has(cat script.Category) bool {
	_, ok := d.funcs[cat]
	return ok
}
