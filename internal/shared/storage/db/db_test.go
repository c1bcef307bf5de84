package db

import (
	"context"
	"testing"
	"time"
)

func TestConnectEmptyURL(t *testing.T) {
	_, err := Connect(context.Background(), "  ", DefaultServerOptions())
	if err == nil {
		t.Fatalf("expected error for empty DATABASE_URL")
	}
}

func TestDefaultOptions(t *testing.T) {
	server := DefaultServerOptions()
	if server.MaxOpenConns != 10 || server.MaxIdleConns != 5 {
		t.Fatalf("unexpected server pool defaults: %+v", server)
	}
	if server.PingTimeout != 5*time.Second {
		t.Fatalf("unexpected ping timeout: %v", server.PingTimeout)
	}

	migrate := DefaultMigrateOptions()
	if migrate.MaxOpenConns != 1 {
		t.Fatalf("migrations should use a single connection, got %d", migrate.MaxOpenConns)
	}
}

func TestRunMigrationsNilDB(t *testing.T) {
	if err := RunMigrations(context.Background(), nil); err != nil {
		t.Fatalf("nil db should be a no-op, got %v", err)
	}
}
