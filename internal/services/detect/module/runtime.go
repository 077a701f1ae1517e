package module

import (
	"time"

	"polyglot/internal/adapters/langid"
	"polyglot/internal/core/identify"
	"polyglot/internal/core/normalize"
	"polyglot/internal/core/pipeline"
	"polyglot/internal/core/script"
	"polyglot/internal/core/segment"
	perr "polyglot/internal/platform/errors"
	"polyglot/internal/platform/logger"
)

// Runtime is the immutable context produced by the startup phase
type Runtime struct {
	Pipeline   *pipeline.Pipeline
	Model      identify.Model
	Tokenizers []string
}

// seams for tests
var (
	openModel     = langid.Open
	newDispatcher = segment.New
)

// Load performs the one blocking acquisition phase, any error must abort startup
func Load(opt Options) (*Runtime, error) {
	log := logger.Named("detect")
	start := time.Now()

	d, err := newDispatcher(opt.Segment)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnavailable, "load tokenizers")
	}

	m, err := openModel(opt.LangID)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "load %s classifier", opt.LangID.Backend)
	}

	var popts []pipeline.Option
	if opt.Normalize {
		popts = append(popts, pipeline.WithNormalizer(normalize.New()))
	}

	rt := &Runtime{
		Pipeline:   pipeline.New(d, identify.New(m), popts...),
		Model:      m,
		Tokenizers: tokenizerNames(d),
	}
	log.Info().
		Str("backend", m.Name()).
		Strs("tokenizers", rt.Tokenizers).
		Bool("normalize", opt.Normalize).
		Dur("elapsed", time.Since(start)).
		Msg("detect runtime loaded")
	return rt, nil
}

// Close releases classifier resources
func (rt *Runtime) Close() error {
	if rt == nil || rt.Model == nil {
		return nil
	}
	return langid.Close(rt.Model)
}

func tokenizerNames(d *segment.Dispatcher) []string {
	var out []string
	for _, c := range []script.Category{script.CJK, script.Kana, script.Thai} {
		if d.Has(c) {
			out = append(out, c.String())
		}
	}
	return out
}
