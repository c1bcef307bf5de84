package history

import "time"

// Record is one persisted analysis request/result pair. Records are
// append-only and never mutated after creation.
type Record struct {
	ID             int64     `json:"id"`
	Prompt         string    `json:"prompt"`
	Result         string    `json:"result"`
	ReaderLanguage string    `json:"reader_language"`
	CreatedAt      time.Time `json:"timestamp"`
}
