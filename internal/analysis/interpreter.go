package analysis

import (
	"context"
	"errors"
	"fmt"

	"logos-backend/internal/langs"
	"logos-backend/internal/llm"
)

// ErrGenreNotImplemented marks genres the detector recognizes but no
// instruction template exists for yet.
var ErrGenreNotImplemented = errors.New("interpretation for this genre is not implemented")

// InterpretRequest carries everything the terminal step needs.
type InterpretRequest struct {
	Text           string
	Genre          Genre
	LearnLanguage  langs.Code
	ReaderLanguage langs.Code
}

// Interpreter produces the final pedagogical interpretation.
type Interpreter interface {
	Interpret(ctx context.Context, req InterpretRequest) (string, error)
}

// interpretTemperature allows natural pedagogical prose while staying
// on-topic.
const interpretTemperature = 0.3

// LLMInterpreter resolves the genre template and runs the generation call.
type LLMInterpreter struct {
	Client llm.Client
	Model  string
}

// Interpret returns the interpretation prose. Unimplemented genres fail
// before any generation call; an empty completion is a hard failure.
func (i *LLMInterpreter) Interpret(ctx context.Context, req InterpretRequest) (string, error) {
	template, ok := genreTemplate(req.Genre)
	if !ok {
		return "", fmt.Errorf("genre %q: %w", req.Genre, ErrGenreNotImplemented)
	}

	out, err := i.Client.Complete(ctx, llm.Request{
		System:      renderTemplate(template, req.LearnLanguage, req.ReaderLanguage),
		Input:       req.Text,
		Model:       i.Model,
		Temperature: interpretTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("interpretation: %w", err)
	}
	if out == "" {
		return "", fmt.Errorf("interpretation: %w", llm.ErrEmptyCompletion)
	}
	return out, nil
}
