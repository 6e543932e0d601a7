package bundle

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// Tokenizer counts tokens in text. The bundle stats always carry the crude
// chars/4 estimate; a Tokenizer provides an exact count for display.
type Tokenizer interface {
	CountTokens(text string) int
	Close()
}

const defaultTiktokenModel = "gpt-4o"

type tiktokenCounter struct {
	enc *tiktoken.Tiktoken
}

// NewTiktokenCounter returns a Tokenizer backed by the tiktoken encoding for
// model. An unknown model falls back to the default encoding.
func NewTiktokenCounter(model string) (Tokenizer, error) {
	if model == "" {
		model = defaultTiktokenModel
	}
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.EncodingForModel(defaultTiktokenModel)
		if err != nil {
			return nil, fmt.Errorf("failed to load tiktoken encoding for %q: %w", defaultTiktokenModel, err)
		}
	}
	return &tiktokenCounter{enc: enc}, nil
}

func (c *tiktokenCounter) CountTokens(text string) int {
	if c.enc == nil {
		return 0
	}
	return len(c.enc.EncodeOrdinary(text))
}

func (c *tiktokenCounter) Close() {}
