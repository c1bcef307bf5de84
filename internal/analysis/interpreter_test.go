package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"logos-backend/internal/langs"
	"logos-backend/internal/llm"
)

func TestInterpretSubstitutesLanguageNames(t *testing.T) {
	client := &staticClient{resp: "Voici l'analyse du texte."}
	interpreter := &LLMInterpreter{Client: client, Model: "main"}

	out, err := interpreter.Interpret(context.Background(), InterpretRequest{
		Text:           "Un paragraphe philosophique.",
		Genre:          GenrePhilosophy,
		LearnLanguage:  langs.French,
		ReaderLanguage: langs.English,
	})
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if out == "" {
		t.Fatalf("expected non-empty interpretation")
	}

	system := client.last.System
	if !strings.Contains(system, "French") || !strings.Contains(system, "English") {
		t.Fatalf("expected language names substituted into instruction")
	}
	if strings.Contains(system, learnLanguageSlot) || strings.Contains(system, profLanguageSlot) {
		t.Fatalf("placeholder slots left unsubstituted")
	}
	if client.last.Input != "Un paragraphe philosophique." {
		t.Fatalf("working text must be the sole content input, got %q", client.last.Input)
	}
	if client.last.Temperature != interpretTemperature {
		t.Fatalf("expected temperature %v, got %v", interpretTemperature, client.last.Temperature)
	}
}

func TestInterpretAllLanguagesAndImplementedGenres(t *testing.T) {
	for _, genre := range []Genre{GenreGeneral, GenreNews, GenrePhilosophy} {
		for _, code := range langs.Supported() {
			client := &staticClient{resp: "an interpretation"}
			interpreter := &LLMInterpreter{Client: client}

			out, err := interpreter.Interpret(context.Background(), InterpretRequest{
				Text:           "some text",
				Genre:          genre,
				LearnLanguage:  code,
				ReaderLanguage: langs.English,
			})
			if err != nil {
				t.Fatalf("%s/%s: %v", genre, code, err)
			}
			if out == "" {
				t.Fatalf("%s/%s: empty result", genre, code)
			}
			if client.last.System == "" {
				t.Fatalf("%s/%s: empty instruction sent to generator", genre, code)
			}
		}
	}
}

func TestInterpretUnimplementedGenres(t *testing.T) {
	for _, genre := range []Genre{GenreNarrative, GenrePoem, GenrePaper} {
		client := &staticClient{resp: "should never be called"}
		interpreter := &LLMInterpreter{Client: client}

		_, err := interpreter.Interpret(context.Background(), InterpretRequest{
			Text:           "some text",
			Genre:          genre,
			LearnLanguage:  langs.English,
			ReaderLanguage: langs.English,
		})
		if !errors.Is(err, ErrGenreNotImplemented) {
			t.Errorf("%s: expected ErrGenreNotImplemented, got %v", genre, err)
		}
		if client.calls != 0 {
			t.Errorf("%s: no generation call may be made for an empty template", genre)
		}
	}
}

func TestInterpretGenerationFailure(t *testing.T) {
	client := &staticClient{err: errors.New("generation down")}
	interpreter := &LLMInterpreter{Client: client}

	_, err := interpreter.Interpret(context.Background(), InterpretRequest{
		Text:           "some text",
		Genre:          GenreGeneral,
		LearnLanguage:  langs.English,
		ReaderLanguage: langs.English,
	})
	if err == nil {
		t.Fatalf("expected generation error to surface")
	}
}

func TestInterpretEmptyCompletionIsFailure(t *testing.T) {
	client := &staticClient{resp: ""}
	interpreter := &LLMInterpreter{Client: client}

	_, err := interpreter.Interpret(context.Background(), InterpretRequest{
		Text:           "some text",
		Genre:          GenreGeneral,
		LearnLanguage:  langs.English,
		ReaderLanguage: langs.English,
	})
	if !errors.Is(err, llm.ErrEmptyCompletion) {
		t.Fatalf("expected ErrEmptyCompletion, got %v", err)
	}
}
