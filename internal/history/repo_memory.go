package history

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores records in memory and is safe for concurrent use.
// It backs the service when no database is configured, and tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]Record
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		nextID: 1,
		byID:   make(map[int64]Record),
	}
}

// Create stores the record, assigning the next id and the current time.
func (r *MemoryRepo) Create(ctx context.Context, prompt, result, readerLanguage string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	rec := Record{
		ID:             r.nextID,
		Prompt:         prompt,
		Result:         result,
		ReaderLanguage: readerLanguage,
		CreatedAt:      time.Now().UTC(),
	}
	r.nextID++
	r.byID[rec.ID] = rec
	return rec, nil
}

// List returns all records ordered most-recent-first.
func (r *MemoryRepo) List(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]Record, 0, len(r.byID))
	for _, rec := range r.byID {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].ID > records[j].ID
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}

// GetByID returns a record by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

// Delete removes a record, reporting ErrNotFound when absent.
func (r *MemoryRepo) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
