package analysis

import (
	"context"
	"errors"

	"logos-backend/internal/langs"
	"logos-backend/internal/shared/metrics"
	"logos-backend/internal/shared/telemetry"
)

// ErrEmptyText is returned before any external call when the input is empty.
var ErrEmptyText = errors.New("text is empty")

// step names the pipeline's states. The graph is
// Start -> Detect -> {Correct -> Interpret | Interpret} -> End, with a
// single conditional edge after detection and no cycles or retries.
type step int

const (
	stepDetect step = iota
	stepCorrect
	stepInterpret
	stepEnd
)

// Pipeline sequences the three nodes into the directed workflow. Node
// failure policies (safe-default detection, fall-back-to-original
// correction) live in the nodes and in the transitions here, never as
// retries in the graph itself.
type Pipeline struct {
	Detector    Detector
	Corrector   Corrector
	Interpreter Interpreter
}

// Run threads a State through the workflow and returns the terminal state.
// The returned error is the interpreter's: detection and correction
// failures are absorbed.
func (p *Pipeline) Run(ctx context.Context, text string, readerLanguage langs.Code) (State, error) {
	if text == "" {
		return State{}, ErrEmptyText
	}

	st := State{Text: text, ReaderLanguage: readerLanguage}

	current := stepDetect
	for current != stepEnd {
		switch current {
		case stepDetect:
			directive := p.Detector.Detect(ctx, st.Text)
			st.DetectedLanguage = directive.Language
			st.Genre = directive.Genre
			st.NeedsCorrection = directive.NeedsCorrection
			if st.NeedsCorrection {
				current = stepCorrect
			} else {
				current = stepInterpret
			}

		case stepCorrect:
			corrected, err := p.Corrector.Correct(ctx, st.Text)
			if err != nil {
				// Correction is advisory: keep the original text.
				telemetry.Warn("correct.failed", map[string]any{"error": err.Error()})
			} else {
				st.CorrectedText = corrected
				st.Text = corrected
				metrics.IncCorrectionApplied()
			}
			current = stepInterpret

		case stepInterpret:
			interpretation, err := p.Interpreter.Interpret(ctx, InterpretRequest{
				Text:           st.Text,
				Genre:          st.Genre,
				LearnLanguage:  st.DetectedLanguage,
				ReaderLanguage: st.ReaderLanguage,
			})
			if err != nil {
				return st, err
			}
			st.Interpretation = interpretation
			current = stepEnd
		}
	}

	return st, nil
}
