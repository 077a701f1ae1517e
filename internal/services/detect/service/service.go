// Package service implements the presentation layer over the detection pipeline
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"polyglot/internal/core/identify"
	"polyglot/internal/services/detect/domain"
	"polyglot/internal/platform/logger"
)

// Config tunes the service
type Config struct {
	Top int // default number of candidates for Detect, 0 means 1
}

// Svc implements domain.DetectorPort
type Svc struct {
	runner domain.RunnerPort
	cfg    Config
}

// newID is a seam for tests
var newID = func() string { return uuid.NewString() }

// New returns a service over runner
func New(runner domain.RunnerPort, cfg Config) *Svc {
	if runner == nil {
		panic("detect service requires a runner")
	}
	if cfg.Top < 1 {
		cfg.Top = 1
	}
	return &Svc{runner: runner, cfg: cfg}
}

var _ domain.DetectorPort = (*Svc)(nil)

// blank reports whether raw has nothing but whitespace
func blank(raw string) bool { return strings.TrimSpace(raw) == "" }

// HandleRequest runs the pipeline on the untrimmed input and formats the top prediction
func (s *Svc) HandleRequest(ctx context.Context, raw string) (string, error) {
	if blank(raw) {
		return domain.Prompt, nil
	}
	res, err := s.runner.Run(ctx, raw, 1)
	if err != nil {
		return "", err
	}
	top := res.Top()
	s.logResult(ctx, res.Script.String(), top)
	return Format(top.Code(), top.Prob), nil
}

// Detect returns the structured result with up to Top candidates
func (s *Svc) Detect(ctx context.Context, in domain.DetectInput) (domain.DetectOutput, error) {
	if blank(in.Text) {
		return domain.DetectOutput{Output: domain.Prompt, Prompt: domain.Prompt}, nil
	}
	k := in.Top
	if k < 1 {
		k = s.cfg.Top
	}
	res, err := s.runner.Run(ctx, in.Text, k)
	if err != nil {
		return domain.DetectOutput{}, err
	}

	top := res.Top()
	code := top.Code()
	out := domain.DetectOutput{
		ID:           newID(),
		Language:     code,
		LanguageName: LanguageName(code),
		Confidence:   top.Prob,
		Percent:      Percent(top.Prob),
		Script:       res.Script.String(),
		Tokenized:    res.Tokenized,
		Output:       Format(code, top.Prob),
		Candidates:   candidates(res.Predictions),
	}
	s.logResult(ctx, out.Script, top)
	return out, nil
}

func candidates(preds []identify.Prediction) []domain.Candidate {
	out := make([]domain.Candidate, 0, len(preds))
	for _, p := range preds {
		code := p.Code()
		out = append(out, domain.Candidate{
			Language:     code,
			LanguageName: LanguageName(code),
			Confidence:   p.Prob,
			Percent:      Percent(p.Prob),
		})
	}
	return out
}

// logResult never logs the input text
func (s *Svc) logResult(ctx context.Context, script string, top identify.Prediction) {
	logger.C(ctx).Debug().
		Str("script", script).
		Str("language", top.Code()).
		Float64("confidence", top.Prob).
		Msg("detected")
}
