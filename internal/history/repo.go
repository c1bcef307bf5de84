package history

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("history record not found")

// Repo defines persistence operations for history records.
type Repo interface {
	// Create persists a new record and returns it with ID and timestamp assigned.
	Create(ctx context.Context, prompt, result, readerLanguage string) (Record, error)
	// List returns all records ordered most-recent-first.
	List(ctx context.Context) ([]Record, error)
	// GetByID returns a record by its ID.
	GetByID(ctx context.Context, id int64) (Record, error)
	// Delete removes a record, returning ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}
