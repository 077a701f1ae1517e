package segment

import (
	"os"

	"github.com/go-ego/gse"

	"polyglot/internal/platform/logger"
)

// Chinese wraps a gse segmenter loaded once
type Chinese struct {
	seg gse.Segmenter
}

// NewChinese loads the embedded gse dictionary, or dictPath when set
// Latin substrings keep their case
func NewChinese(dictPath string) (*Chinese, error) {
	gse.ToLower = false

	var files []string
	if dictPath != "" {
		if _, err := os.Stat(dictPath); err != nil {
			return nil, err
		}
		files = append(files, dictPath)
	}

	c := &Chinese{}
	c.seg.SkipLog = true
	if err := c.seg.LoadDict(files...); err != nil {
		return nil, err
	}
	dict := dictPath
	if dict == "" {
		dict = "embedded"
	}
	logger.Named("segment").Debug().Str("dict", dict).Msg("gse dictionary loaded")
	return c, nil
}

// Cut segments text with the HMM enabled for out-of-vocabulary words
func (c *Chinese) Cut(text string) ([]string, error) {
	return c.seg.Cut(text, true), nil
}
