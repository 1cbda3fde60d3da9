package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTxSurfacesCommitError(t *testing.T) {
	// A file-backed store: cancelling the transaction's context makes
	// database/sql discard the connection, which would destroy a
	// single-connection in-memory database before the count check.
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	// Cancel the context after the statement runs so the failure
	// happens at commit time, not inside fn.
	ctx, cancel := context.WithCancel(context.Background())

	err = s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO cats (name, tag, descreption, img) VALUES (?, ?, ?, ?)",
			"phantom", "", "", ""); err != nil {
			return err
		}
		cancel()
		return nil
	})
	require.Error(t, err)

	// The rolled-back insert must not be visible.
	var count int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM cats WHERE name = ?", "phantom").Scan(&count))
	assert.Zero(t, count)
}

func TestWithTxPropagatesFnError(t *testing.T) {
	s := newTestStore(t)

	sentinel := errors.New("boom")
	err := s.withTx(context.Background(), func(tx *sql.Tx) error {
		if _, err := tx.Exec(
			"INSERT INTO cats (name, tag, descreption, img) VALUES (?, ?, ?, ?)",
			"phantom", "", "", ""); err != nil {
			return err
		}
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	var count int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM cats WHERE name = ?", "phantom").Scan(&count))
	assert.Zero(t, count)
}
