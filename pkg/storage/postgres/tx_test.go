package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"snowstat/pkg/storage"
	"snowstat/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func countSnapshots(t *testing.T, db *sql.DB) int {
	t.Helper()
	row := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM snapshots`)
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success: begin from *sql.DB
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// Should be a *postgres.PgSQL with underlying *sql.Tx
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// Error: begin when already in tx
	_, err = inner.Begin(ctx)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	// Cleanup the opened transaction
	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitRollback_NotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_Commit_PersistsSnapshot(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreSnapshot(ctx, sampleSnapshot(time.Now().UTC()))
	require.NoError(t, err)

	require.NoError(t, txStorage.Commit())
	require.Equal(t, 1, countSnapshots(t, db))
}

func TestPgSQL_Rollback_DiscardsSnapshot(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreSnapshot(ctx, sampleSnapshot(time.Now().UTC()))
	require.NoError(t, err)

	require.NoError(t, txStorage.Rollback())
	require.Equal(t, 0, countSnapshots(t, db))
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	// Success callback: snapshot and incidents land atomically
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, err := s.StoreSnapshot(ctx, sampleSnapshot(time.Now().UTC())); err != nil {
			return err
		}

		return s.UpsertIncidents(ctx, sampleIncident("inc-tx", time.Now().UTC(), time.Time{}))
	})
	require.NoError(t, err)
	require.Equal(t, 1, countSnapshots(t, db))

	incidents, err := pg.Incidents(ctx, time.Now().UTC().Add(-time.Hour), 0)
	require.NoError(t, err)
	require.Len(t, incidents, 1)

	// Error in callback: nothing new persists
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, err := s.StoreSnapshot(ctx, sampleSnapshot(time.Now().UTC())); err != nil {
			return err
		}

		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 1, countSnapshots(t, db))
}
