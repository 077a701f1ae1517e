// Package pipeline holds the resources loaded once at startup and runs
// classify, tokenize and identify over a single input
package pipeline

import (
	"context"

	"polyglot/internal/core/identify"
	"polyglot/internal/core/normalize"
	"polyglot/internal/core/script"
	"polyglot/internal/core/segment"
)

// Pipeline is immutable after New and safe for concurrent use
type Pipeline struct {
	norm       *normalize.Normalizer
	dispatcher *segment.Dispatcher
	identifier *identify.Identifier
}

// Option tweaks pipeline construction
type Option func(*Pipeline)

// WithNormalizer cleans input before classification when n is non nil
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(p *Pipeline) { p.norm = n }
}

// New wires a dispatcher and identifier into a pipeline
func New(d *segment.Dispatcher, id *identify.Identifier, opts ...Option) *Pipeline {
	if d == nil || id == nil {
		panic("pipeline.New requires a dispatcher and an identifier")
	}
	p := &Pipeline{dispatcher: d, identifier: id}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Result is the transient per-request output
type Result struct {
	Script      script.Category       `json:"-"`
	Tokenized   string                `json:"tokenized"`
	Predictions []identify.Prediction `json:"predictions"`
}

// Top returns the best prediction; Run guarantees at least one on success
func (r Result) Top() identify.Prediction {
	if len(r.Predictions) == 0 {
		return identify.Prediction{}
	}
	return r.Predictions[0]
}

// Run executes the full chain; any stage error aborts with no partial result
func (p *Pipeline) Run(ctx context.Context, text string, k int) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if p.norm != nil {
		text = p.norm.Normalize(text)
	}
	cat := script.Classify(text)
	tok, err := p.dispatcher.Tokenize(text, cat)
	if err != nil {
		return Result{}, err
	}
	preds, err := p.identifier.TopK(tok, k)
	if err != nil {
		return Result{}, err
	}
	return Result{Script: cat, Tokenized: tok, Predictions: preds}, nil
}

// Classify exposes the script stage alone
func (p *Pipeline) Classify(text string) script.Category {
	if p.norm != nil {
		text = p.norm.Normalize(text)
	}
	return script.Classify(text)
}

// Tokenize exposes the classify and tokenize stages without identification
func (p *Pipeline) Tokenize(text string) (script.Category, string, error) {
	if p.norm != nil {
		text = p.norm.Normalize(text)
	}
	cat := script.Classify(text)
	tok, err := p.dispatcher.Tokenize(text, cat)
	return cat, tok, err
}

// Model returns the loaded classifier
func (p *Pipeline) Model() identify.Model { return p.identifier.Model() }

// Dispatcher returns the tokenizer table
func (p *Pipeline) Dispatcher() *segment.Dispatcher { return p.dispatcher }
