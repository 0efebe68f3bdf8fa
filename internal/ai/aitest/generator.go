// Package aitest provides a scripted ai.Generator for tests.
package aitest

import (
	"context"
	"errors"
	"sync"
)

// ErrExhausted is returned once the scripted replies run out.
var ErrExhausted = errors.New("aitest: no scripted replies left")

// Reply is one scripted outcome of GenerateContent.
type Reply struct {
	Text string
	Err  error
}

// Generator returns scripted replies in FIFO order and records every prompt.
// When Fallback is set it is used after the script runs out.
type Generator struct {
	mu       sync.Mutex
	replies  []Reply
	Fallback *Reply
	Prompts  []string
}

// NewGenerator creates a Generator with the given replies.
func NewGenerator(replies ...Reply) *Generator {
	return &Generator{replies: replies}
}

// Failing returns a Generator whose every call fails with err.
func Failing(err error) *Generator {
	return &Generator{Fallback: &Reply{Err: err}}
}

// Always returns a Generator that always answers text.
func Always(text string) *Generator {
	return &Generator{Fallback: &Reply{Text: text}}
}

func (g *Generator) GenerateContent(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.Prompts = append(g.Prompts, prompt)

	var reply Reply
	switch {
	case len(g.replies) > 0:
		reply = g.replies[0]
		g.replies = g.replies[1:]
	case g.Fallback != nil:
		reply = *g.Fallback
	default:
		return "", ErrExhausted
	}

	if reply.Err != nil {
		return "", reply.Err
	}
	return reply.Text, nil
}

func (g *Generator) Model() string { return "scripted" }

// Calls returns the number of GenerateContent calls made so far.
func (g *Generator) Calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.Prompts)
}
