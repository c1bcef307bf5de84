package analysis

import (
	"context"

	"logos-backend/internal/llm"
)

// Corrector rewrites text to fix spelling and OCR noise without altering
// meaning.
type Corrector interface {
	Correct(ctx context.Context, text string) (string, error)
}

// LLMCorrector runs the proofreading prompt at temperature zero, treating
// correction as a near-deterministic transform.
type LLMCorrector struct {
	Client llm.Client
	Model  string
}

// Correct returns the corrected text. Errors are propagated to the
// orchestrator, which falls back to the original text.
func (c *LLMCorrector) Correct(ctx context.Context, text string) (string, error) {
	out, err := c.Client.Complete(ctx, llm.Request{
		System:      correctPrompt,
		Input:       text,
		Model:       c.Model,
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}
	return out, nil
}
