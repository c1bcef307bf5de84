// Package llm abstracts text-generation providers behind a single
// instruction-plus-input completion call.
package llm

import (
	"context"
	"errors"
)

// Request captures one completion round trip: a system instruction, the
// text it operates on, and generation controls.
type Request struct {
	// System is the instruction guiding the model.
	System string
	// Input is the sole content message.
	Input string
	// Model overrides the client default when non-empty.
	Model string
	// Temperature is passed through as-is; 0 is a valid value.
	Temperature float32
	// JSONOutput requests a JSON-object response format.
	JSONOutput bool
}

// Client abstracts LLM providers.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// ErrEmptyCompletion is returned when the provider answers without any text
// content. Callers treat it as a hard generation failure.
var ErrEmptyCompletion = errors.New("llm: empty completion")

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm: client not configured")

// PlaceholderClient is a stub implementation used when no credential is set.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, req Request) (string, error) {
	_ = ctx
	_ = req
	return "", ErrNotConfigured
}
