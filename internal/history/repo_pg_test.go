package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateReturnsAssignedFields(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	repo := &PGRepo{DB: conn}
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO history").
		WithArgs("le texte", "the lecture", "EN").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), now))

	rec, err := repo.Create(context.Background(), "le texte", "the lecture", "EN")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.ID != 7 {
		t.Fatalf("expected id 7, got %d", rec.ID)
	}
	if !rec.CreatedAt.Equal(now) {
		t.Fatalf("expected created_at %v, got %v", now, rec.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListNewestFirst(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	repo := &PGRepo{DB: conn}
	newer := time.Now().UTC()
	older := newer.Add(-time.Hour)

	mock.ExpectQuery("SELECT id, prompt, result, reader_language, created_at").
		WillReturnRows(sqlmock.NewRows([]string{"id", "prompt", "result", "reader_language", "created_at"}).
			AddRow(int64(2), "p2", "r2", "FR", newer).
			AddRow(int64(1), "p1", "r1", "EN", older))

	records, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ID != 2 || records[1].ID != 1 {
		t.Fatalf("expected newest-first order, got %+v", records)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	repo := &PGRepo{DB: conn}
	mock.ExpectQuery("SELECT id, prompt, result, reader_language, created_at").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "prompt", "result", "reader_language", "created_at"}))

	_, err = repo.GetByID(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoDelete(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	repo := &PGRepo{DB: conn}

	mock.ExpectExec("DELETE FROM history").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	mock.ExpectExec("DELETE FROM history").
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Delete(context.Background(), 8); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
