package analysis

import (
	"context"
	"encoding/json"
	"strings"

	"logos-backend/internal/langs"
	"logos-backend/internal/llm"
	"logos-backend/internal/shared/metrics"
	"logos-backend/internal/shared/telemetry"
)

// Detector classifies input text into a Directive.
type Detector interface {
	Detect(ctx context.Context, text string) Directive
}

// LLMDetector runs the classification prompt against an LLM in JSON mode.
type LLMDetector struct {
	Client llm.Client
	// Model names the lightweight classification model; empty uses the
	// client default.
	Model string
}

// defaultDirective is the fail-open fallback: biased toward re-running
// correction, which is cheap and non-destructive, rather than skipping a
// needed one.
var defaultDirective = Directive{
	Language:        langs.English,
	Genre:           GenreGeneral,
	NeedsCorrection: true,
}

type directivePayload struct {
	Language         *string `json:"language"`
	Genre            *string `json:"genre"`
	CorrectionNeeded *bool   `json:"correction_needed"`
}

// Detect classifies text. It never fails: any transport error, malformed
// payload, missing key, or out-of-enumeration value yields the safe default.
func (d *LLMDetector) Detect(ctx context.Context, text string) Directive {
	raw, err := d.Client.Complete(ctx, llm.Request{
		System:      classifyPrompt,
		Input:       text,
		Model:       d.Model,
		Temperature: 0,
		JSONOutput:  true,
	})
	if err != nil {
		return d.fallback("classification call failed", map[string]any{"error": err.Error()})
	}

	directive, reason := parseDirective(raw)
	if reason != "" {
		return d.fallback(reason, map[string]any{"raw": truncate(raw, 500)})
	}
	return directive
}

func (d *LLMDetector) fallback(reason string, fields map[string]any) Directive {
	fields["fallback_reason"] = reason
	telemetry.Warn("detect.fallback", fields)
	metrics.IncDetectionFallback()
	return defaultDirective
}

// parseDirective validates the classification payload against the closed
// enumerations at the boundary. It returns a non-empty reason when the
// payload cannot be trusted.
func parseDirective(raw string) (Directive, string) {
	var payload directivePayload
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &payload); err != nil {
		return Directive{}, "malformed JSON"
	}
	if payload.Language == nil || payload.Genre == nil || payload.CorrectionNeeded == nil {
		return Directive{}, "missing required key"
	}

	language, err := langs.Parse(*payload.Language)
	if err != nil {
		return Directive{}, "language outside supported set"
	}
	genre, err := ParseGenre(*payload.Genre)
	if err != nil {
		return Directive{}, "unrecognized genre"
	}

	return Directive{
		Language:        language,
		Genre:           genre,
		NeedsCorrection: *payload.CorrectionNeeded,
	}, ""
}

// stripCodeFence unwraps a ```json ... ``` block some models emit despite
// instructions.
func stripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
