package main

import (
	"os"
	"testing"
)

func TestMigrationsDir_EnvOverride(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "/custom/migrations")

	if got := migrationsDir(); got != "/custom/migrations" {
		t.Fatalf("expected MIGRATIONS_DIR override, got %q", got)
	}
}

func TestMigrationsDir_Default(t *testing.T) {
	_ = os.Unsetenv("MIGRATIONS_DIR")

	if got := migrationsDir(); got != "db/migrations" {
		t.Fatalf("expected default migrations dir, got %q", got)
	}
}

func TestDatabaseDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")
	if got := databaseDSN(); got != defaultDSN {
		t.Fatalf("expected default dsn, got %q", got)
	}

	t.Setenv("DB_DSN", "postgres://u:p@db:5432/x")
	if got := databaseDSN(); got != "postgres://u:p@db:5432/x" {
		t.Fatalf("expected DB_DSN override, got %q", got)
	}
}

func TestRun_CreateRequiresName(t *testing.T) {
	if err := run("create", ""); err == nil {
		t.Fatal("expected error for create without name")
	}
}
