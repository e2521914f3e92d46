package counter_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-agency/internal/shared/counter"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupCounterRepo(t *testing.T) (counter.Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	return counter.NewRepository(gormDB), sqlDB, mock
}

func TestCounterRepository_GetNextValue(t *testing.T) {
	ctx := context.Background()

	t.Run("runs inside caller tx", func(t *testing.T) {
		repo, sqlDB, mock := setupCounterRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO agency_counters").
			WithArgs("agency-1", "payout_run").
			WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(4))
		mock.ExpectRollback()

		tx, err := sqlDB.BeginTx(ctx, nil)
		require.NoError(t, err)

		v, err := repo.WithTx(tx).GetNextValue(ctx, "agency-1", "payout_run")
		require.NoError(t, err)
		assert.Equal(t, int64(4), v)

		require.NoError(t, tx.Rollback())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps query error", func(t *testing.T) {
		repo, _, mock := setupCounterRepo(t)

		mock.ExpectQuery("INSERT INTO agency_counters").
			WillReturnError(errors.New("db down"))

		_, err := repo.GetNextValue(ctx, "agency-1", "payout_run")
		assert.EqualError(t, err, "next payout_run counter: db down")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
