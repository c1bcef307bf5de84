// Package settings holds the runtime-updatable LLM configuration.
package settings

import (
	"strings"
	"sync"
)

// Settings is the credential and model pair consumed by the analysis
// pipeline. Values are immutable once snapshotted.
type Settings struct {
	APIKey string
	Model  string
}

// Configured reports whether a credential is present.
func (s Settings) Configured() bool {
	return s.APIKey != ""
}

// View is the masked representation safe to return to callers.
type View struct {
	APIKey    string `json:"api_key"`
	Model     string `json:"model"`
	HasAPIKey bool   `json:"has_api_key"`
}

// Store guards the process-wide settings record. Updates replace the whole
// record, so a Snapshot taken at the start of a request never observes a
// partial update.
type Store struct {
	mu      sync.RWMutex
	current Settings
}

// NewStore seeds the store with initial values, typically from config.
func NewStore(apiKey, model string) *Store {
	return &Store{current: Settings{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}}
}

// Snapshot returns a copy of the current settings.
func (s *Store) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update applies a new model and, when non-empty, a new credential. An empty
// apiKey preserves the existing one; an empty model preserves the existing one.
func (s *Store) Update(apiKey, model string) View {
	apiKey = strings.TrimSpace(apiKey)
	model = strings.TrimSpace(model)

	s.mu.Lock()
	next := s.current
	if apiKey != "" {
		next.APIKey = apiKey
	}
	if model != "" {
		next.Model = model
	}
	s.current = next
	s.mu.Unlock()

	return maskedView(next)
}

// View returns the masked representation of the current settings.
func (s *Store) View() View {
	return maskedView(s.Snapshot())
}

func maskedView(s Settings) View {
	view := View{Model: s.Model, HasAPIKey: s.Configured()}
	if s.Configured() {
		view.APIKey = maskKey(s.APIKey)
	}
	return view
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return key[:1] + "..."
	}
	return key[:4] + "..."
}
