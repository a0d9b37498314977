package generation

import (
	"context"
	"errors"
)

var ErrEmptyResponse = errors.New("empty response from generator")

// Prompt is the text handed to an external generator.
type Prompt struct {
	System string
	User   string
}

// Generator is a stateless text-in, text-out call to an external model.
// It may fail or return arbitrary text, callers must not trust the output.
type Generator interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(ctx context.Context, prompt Prompt) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt Prompt) (string, error) {
	return f(ctx, prompt)
}
