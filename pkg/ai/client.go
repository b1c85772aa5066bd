package ai

import (
	"context"
)

// TextGenerator is the contract every language-model provider implements:
// a text prompt in, free-form text out. No schema is guaranteed by the
// provider; callers must treat replies as untrusted text.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
