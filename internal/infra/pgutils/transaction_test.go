package pgutils_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/fastprodman/cardescrow/internal/infra/pgtestutil"
	"github.com/fastprodman/cardescrow/internal/infra/pgutils"
)

func TestWithTx_CommitAndRollback(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	errBoom := errors.New("boom")

	err := pgutils.WithTx(t.Context(), db, func(tx *sql.Tx) error {
		_, e := tx.Exec(`INSERT INTO profiles (id, username) VALUES (gen_random_uuid(), 'committed')`)
		return e
	})
	if err != nil {
		t.Fatalf("commit path: %v", err)
	}

	err = pgutils.WithTx(t.Context(), db, func(tx *sql.Tx) error {
		_, e := tx.Exec(`INSERT INTO profiles (id, username) VALUES (gen_random_uuid(), 'rolled_back')`)
		if e != nil {
			return e
		}

		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("rollback path: want errBoom, got %v", err)
	}

	var n int
	err = db.QueryRow(`SELECT COUNT(*) FROM profiles WHERE username IN ('committed', 'rolled_back')`).Scan(&n)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("want exactly the committed row, got %d rows", n)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	_, err := db.Exec(`INSERT INTO profiles (id, username) VALUES (gen_random_uuid(), 'dup')`)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err = db.Exec(`INSERT INTO profiles (id, username) VALUES (gen_random_uuid(), 'dup')`)
	if !pgutils.IsUniqueViolation(err, "") {
		t.Fatalf("expected unique violation, got %v", err)
	}
	if !pgutils.IsUniqueViolation(err, "profiles_username_key") {
		t.Fatalf("expected constraint profiles_username_key, got %v", err)
	}
	if pgutils.IsUniqueViolation(err, "other_constraint") {
		t.Fatalf("constraint filter should not match")
	}
	if pgutils.IsForeignKeyViolation(err, "") {
		t.Fatalf("unique violation reported as fk violation")
	}
}
