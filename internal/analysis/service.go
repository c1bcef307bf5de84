package analysis

import (
	"context"
	"errors"
	"strings"
	"time"

	"logos-backend/internal/history"
	"logos-backend/internal/langs"
	"logos-backend/internal/llm"
	"logos-backend/internal/llm/openai"
	"logos-backend/internal/settings"
	"logos-backend/internal/shared/metrics"
	"logos-backend/internal/shared/telemetry"
)

// ClientFactory builds an LLM client from a settings snapshot. Tests swap it
// for counting fakes.
type ClientFactory func(apiKey, model string) (llm.Client, error)

// Outcome is the uniform envelope every analysis returns. The entry point
// never raises to its caller; all internal failures land here.
type Outcome struct {
	Result  string `json:"result"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	// Detection context for logging and the response, empty on fail-fast.
	DetectedLanguage string `json:"detected_language,omitempty"`
	Genre            string `json:"genre,omitempty"`
	HistoryID        int64  `json:"history_id,omitempty"`
}

// Service contains business logic for analyses.
type Service struct {
	Settings  *settings.Store
	History   history.Repo
	Clients   ClientFactory
	LiteModel string
}

// NewService constructs a Service with the OpenAI client factory.
func NewService(store *settings.Store, repo history.Repo, liteModel string) *Service {
	return &Service{
		Settings: store,
		History:  repo,
		Clients: func(apiKey, model string) (llm.Client, error) {
			return openai.NewClient(apiKey, model)
		},
		LiteModel: liteModel,
	}
}

// Analyze runs the pipeline for one request and persists the result on
// success. A history save failure is logged, not surfaced: a transient
// storage outage must not mask a successful generation.
func (s *Service) Analyze(ctx context.Context, text, readerLanguage string) Outcome {
	if strings.TrimSpace(text) == "" {
		return failure("text is empty")
	}

	snap := s.Settings.Snapshot()
	if !snap.Configured() {
		return failure("please configure the LLM API key in settings")
	}

	client, err := s.Clients(snap.APIKey, snap.Model)
	if err != nil {
		return failure("LLM client: " + err.Error())
	}

	reader, err := langs.Parse(readerLanguage)
	if err != nil {
		// Unsupported reader codes degrade to English prose rather than
		// rejecting the request, as the templates do for names.
		reader = langs.English
	}

	pipeline := &Pipeline{
		Detector:    &LLMDetector{Client: client, Model: s.LiteModel},
		Corrector:   &LLMCorrector{Client: client, Model: s.LiteModel},
		Interpreter: &LLMInterpreter{Client: client, Model: snap.Model},
	}

	metrics.IncAnalysisStarted()
	started := time.Now()

	st, err := pipeline.Run(ctx, text, reader)
	metrics.ObserveAnalysisDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)
	if err != nil {
		metrics.IncAnalysisFailed()
		out := failure(analysisErrorMessage(err))
		out.DetectedLanguage = st.DetectedLanguage.String()
		out.Genre = st.Genre.String()
		return out
	}

	metrics.IncAnalysisCompleted()
	out := Outcome{
		Result:           st.Interpretation,
		Success:          true,
		DetectedLanguage: st.DetectedLanguage.String(),
		Genre:            st.Genre.String(),
	}

	if rec, err := s.History.Create(ctx, text, st.Interpretation, reader.String()); err != nil {
		telemetry.Error("history.save_failed", map[string]any{
			"error":           err.Error(),
			"reader_language": reader.String(),
		})
	} else {
		out.HistoryID = rec.ID
	}

	return out
}

func analysisErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrEmptyText):
		return "text is empty"
	case errors.Is(err, ErrGenreNotImplemented):
		return err.Error()
	case errors.Is(err, llm.ErrEmptyCompletion):
		return "analysis failed - no interpretation generated"
	default:
		return "analysis failed: " + err.Error()
	}
}

func failure(msg string) Outcome {
	return Outcome{Success: false, Error: msg}
}
