// Package pgtest opens a migrated Postgres schema for repository tests.
package pgtest

import (
	"fmt"
	"net/url"
	"os"
	"testing"

	"github.com/fekuna/omnipos-catalog-service/migrations"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// EnvDSN names the variable holding a postgres:// URL for integration tests.
const EnvDSN = "CATALOG_TEST_POSTGRES_DSN"

// Open recreates schema, applies migrations into it and returns a handle whose
// search_path points at it. The test is skipped when EnvDSN is unset.
func Open(t *testing.T, schema string) *sqlx.DB {
	t.Helper()

	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		t.Skipf("%s not set", EnvDSN)
	}

	admin, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}
	defer admin.Close()

	ident := fmt.Sprintf("%q", schema)
	if _, err := admin.Exec(`DROP SCHEMA IF EXISTS ` + ident + ` CASCADE`); err != nil {
		t.Fatalf("drop schema: %v", err)
	}
	if _, err := admin.Exec(`CREATE SCHEMA ` + ident); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	u, err := url.Parse(dsn)
	if err != nil {
		t.Fatalf("parse dsn: %v", err)
	}
	q := u.Query()
	q.Set("search_path", schema)
	u.RawQuery = q.Encode()

	if err := migrations.Migrate(u.String()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	db, err := sqlx.Connect("postgres", u.String())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

// Exec runs setup statements, failing the test on the first error.
func Exec(t *testing.T, db *sqlx.DB, statements ...string) {
	t.Helper()
	for _, s := range statements {
		if _, err := db.Exec(s); err != nil {
			t.Fatalf("exec %q: %v", s, err)
		}
	}
}
