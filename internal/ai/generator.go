package ai

import (
	"context"
	"errors"
)

// ErrEmptyPrompt is returned by generators when asked to complete a blank prompt.
var ErrEmptyPrompt = errors.New("prompt must not be empty")

// Generator is the external text-generation service. An empty reply is
// returned as ("", nil); any error means the call failed.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

// Caller performs a single logical generation call, whatever retry policy
// sits behind it.
type Caller interface {
	Call(ctx context.Context, prompt string) (string, error)
}
