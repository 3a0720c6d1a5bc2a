package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB creates a GORM DB backed by a mocked SQL connection
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormClientRepository_FindByID(t *testing.T) {
	t.Run("finds existing client", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormClientRepository(db)

		clientID := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "name", "email", "status", "kyc_status"}).
			AddRow(clientID, "Anita Desai", "anita@example.com", "active", "pending")

		mock.ExpectQuery(`SELECT \* FROM "clients" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(clientID, 1).
			WillReturnRows(rows)

		client, err := repo.FindByID(context.Background(), clientID)
		require.NoError(t, err)
		assert.Equal(t, clientID, client.ID)
		assert.Equal(t, "Anita Desai", client.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing row to not found", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormClientRepository(db)

		clientID := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "clients"`).
			WithArgs(clientID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		_, err := repo.FindByID(context.Background(), clientID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormClientRepository_FindByEmail(t *testing.T) {
	t.Run("lowercases the lookup", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormClientRepository(db)

		clientID := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "name", "email"}).
			AddRow(clientID, "Anita Desai", "anita@example.com")

		mock.ExpectQuery(`SELECT \* FROM "clients" WHERE email = \$1`).
			WithArgs("anita@example.com", 1).
			WillReturnRows(rows)

		client, err := repo.FindByEmail(context.Background(), "Anita@Example.com")
		require.NoError(t, err)
		assert.Equal(t, clientID, client.ID)
	})

	t.Run("rejects empty email", func(t *testing.T) {
		db, _, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormClientRepository(db)

		_, err := repo.FindByEmail(context.Background(), "")
		assert.Error(t, err)
	})
}

func TestGormClientRepository_Delete(t *testing.T) {
	t.Run("deleting a missing client yields not found", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormClientRepository(db)

		clientID := uuid.New()
		mock.ExpectExec(`DELETE FROM "clients" WHERE id = \$1`).
			WithArgs(clientID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), clientID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("deletes existing client", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormClientRepository(db)

		clientID := uuid.New()
		mock.ExpectExec(`DELETE FROM "clients" WHERE id = \$1`).
			WithArgs(clientID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), clientID))
	})
}

func TestGormClientRepository_ExistsByEmail(t *testing.T) {
	t.Run("empty email never exists", func(t *testing.T) {
		db, _, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormClientRepository(db)

		exists, err := repo.ExistsByEmail(context.Background(), "")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("reports existing email", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormClientRepository(db)

		rows := sqlmock.NewRows([]string{"count"}).AddRow(1)
		mock.ExpectQuery(`SELECT count\(\*\) FROM "clients" WHERE email = \$1`).
			WithArgs("anita@example.com").
			WillReturnRows(rows)

		exists, err := repo.ExistsByEmail(context.Background(), "anita@example.com")
		require.NoError(t, err)
		assert.True(t, exists)
	})
}
