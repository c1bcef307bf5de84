package analysis

import "logos-backend/internal/langs"

// Directive is the detector's output triple controlling pipeline branching.
type Directive struct {
	Language        langs.Code `json:"language"`
	Genre           Genre      `json:"genre"`
	NeedsCorrection bool       `json:"correction_needed"`
}

// State is the single record threaded through the pipeline. Each node
// writes its own fields exactly once; the orchestrator owns all transitions.
type State struct {
	// Text is the current working text. It is overwritten at most once,
	// by the correction step.
	Text string
	// ReaderLanguage is the caller-supplied code the interpretation should
	// be written in. Immutable for the lifetime of the request.
	ReaderLanguage langs.Code

	// DetectedLanguage, Genre and NeedsCorrection are set once by the
	// detection step and never overwritten afterward.
	DetectedLanguage langs.Code
	Genre            Genre
	NeedsCorrection  bool

	// CorrectedText is set only if the correction step ran.
	CorrectedText string
	// Interpretation is set by the terminal step; non-empty means success.
	Interpretation string
}
