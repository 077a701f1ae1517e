package module

import (
	"polyglot/internal/adapters/langid"
	"polyglot/internal/core/segment"
	"polyglot/internal/platform/config"
)

// Options holds configuration settings for the detect module
type Options struct {
	Normalize bool
	Top       int
	Segment   segment.Options
	LangID    langid.Options
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	df := cfg.Prefix("CORE_DETECT_")
	sf := cfg.Prefix("CORE_SEGMENT_")
	return Options{
		Normalize: df.MayBool("NORMALIZE", false),
		Top:       df.MayInt("TOP", 1),
		Segment: segment.Options{
			ChineseDict: sf.MayString("ZH_DICT", ""),
		},
		LangID: langid.FromConfig(cfg),
	}
}
