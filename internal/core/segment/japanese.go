package segment

import (
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Japanese wraps a kagome tokenizer over the IPA dictionary
type Japanese struct {
	t *tokenizer.Tokenizer
}

// NewJapanese builds the tokenizer; BOS/EOS pseudo tokens are omitted
func NewJapanese() (*Japanese, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, err
	}
	return &Japanese{t: t}, nil
}

// Cut returns each token's surface form
func (j *Japanese) Cut(text string) ([]string, error) {
	toks := j.t.Tokenize(text)
	out := make([]string, 0, len(toks))
	for _, tk := range toks {
		out = append(out, tk.Surface)
	}
	return out, nil
}
