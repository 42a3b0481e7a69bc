//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"github.com/phrazzld/tasks-api/internal/platform/postgres"
	"github.com/phrazzld/tasks-api/internal/store"
	"github.com/phrazzld/tasks-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTxStore(t *testing.T, tx *sql.Tx) store.TaskStore {
	t.Helper()
	l, _ := logger.NewTestLogger()
	return postgres.NewPostgresTaskStore(tx, l)
}

func TestPostgresTaskStore_Integration(t *testing.T) {
	db := testdb.GetTestDB(t)
	ctx := context.Background()

	t.Run("create then list", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			s := newTxStore(t, tx)

			before, err := s.List(ctx)
			require.NoError(t, err)

			created, err := s.Create(ctx, "  Buy milk  ")
			require.NoError(t, err)
			assert.Positive(t, created.ID)
			assert.Equal(t, "  Buy milk  ", created.Title)
			assert.WithinDuration(t, time.Now(), created.CreatedAt, time.Minute)

			after, err := s.List(ctx)
			require.NoError(t, err)
			require.Len(t, after, len(before)+1)
			assert.Equal(t, created.ID, after[0].ID)
		})
	})

	t.Run("newest first within a transaction", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			s := newTxStore(t, tx)

			// NOW() is fixed for the transaction, so ids break the tie.
			first, err := s.Create(ctx, "first")
			require.NoError(t, err)
			second, err := s.Create(ctx, "second")
			require.NoError(t, err)

			tasks, err := s.List(ctx)
			require.NoError(t, err)
			require.GreaterOrEqual(t, len(tasks), 2)
			assert.Equal(t, second.ID, tasks[0].ID)
			assert.Equal(t, first.ID, tasks[1].ID)
		})
	})

	t.Run("delete", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			s := newTxStore(t, tx)

			created, err := s.Create(ctx, "to delete")
			require.NoError(t, err)
			require.NoError(t, s.Delete(ctx, created.ID))

			err = s.Delete(ctx, created.ID)
			require.Error(t, err)
			assert.ErrorIs(t, err, store.ErrNotFound)

			var notFound *store.TaskNotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, created.ID, notFound.ID)
		})
	})

	t.Run("blank title rejected before SQL", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			_, err := newTxStore(t, tx).Create(ctx, "   ")
			assert.ErrorIs(t, err, store.ErrInvalidEntity)
		})
	})

	t.Run("check constraint", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			_, err := tx.ExecContext(ctx, `INSERT INTO tasks (title) VALUES ($1)`, " ")
			require.Error(t, err)
			assert.True(t, postgres.IsCheckConstraintViolation(err))
		})
	})
}
