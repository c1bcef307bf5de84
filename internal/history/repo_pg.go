package history

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new record and returns it with the assigned id and timestamp.
func (r *PGRepo) Create(ctx context.Context, prompt, result, readerLanguage string) (Record, error) {
	const query = `
INSERT INTO history (prompt, result, reader_language)
VALUES ($1, $2, $3)
RETURNING id, created_at`

	rec := Record{
		Prompt:         prompt,
		Result:         result,
		ReaderLanguage: readerLanguage,
	}
	var createdAt time.Time
	if err := r.DB.QueryRowContext(ctx, query, prompt, result, readerLanguage).Scan(&rec.ID, &createdAt); err != nil {
		return Record{}, err
	}
	rec.CreatedAt = createdAt.UTC()
	return rec, nil
}

// List returns all records ordered most-recent-first.
func (r *PGRepo) List(ctx context.Context) ([]Record, error) {
	const query = `
SELECT id, prompt, result, reader_language, created_at
FROM history
ORDER BY created_at DESC, id DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Prompt, &rec.Result, &rec.ReaderLanguage, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.CreatedAt = rec.CreatedAt.UTC()
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GetByID returns a record by its ID.
func (r *PGRepo) GetByID(ctx context.Context, id int64) (Record, error) {
	const query = `
SELECT id, prompt, result, reader_language, created_at
FROM history
WHERE id = $1`

	var rec Record
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&rec.ID, &rec.Prompt, &rec.Result, &rec.ReaderLanguage, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, err
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	return rec, nil
}

// Delete removes a record, reporting ErrNotFound when no row matched.
func (r *PGRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM history WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
