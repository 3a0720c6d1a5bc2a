package persistence

import (
	"context"
	"testing"

	"github.com/estate/backend/internal/domain/realty"
	"github.com/estate/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRealtyTestDB creates an in-memory SQLite database with the realty tables
func setupRealtyTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE projects (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			name TEXT NOT NULL,
			location TEXT,
			description TEXT,
			status TEXT NOT NULL DEFAULT 'planning'
		)
	`).Error
	require.NoError(t, err)

	err = db.Exec(`
		CREATE TABLE properties (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			version INTEGER NOT NULL DEFAULT 1,
			project_id TEXT NOT NULL,
			plot_number TEXT NOT NULL,
			type TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'available',
			area NUMERIC NOT NULL DEFAULT 0,
			area_unit TEXT,
			location TEXT,
			owner_client_id TEXT
		)
	`).Error
	require.NoError(t, err)

	return db
}

func TestGormPropertyRepository_SaveAndFind(t *testing.T) {
	db := setupRealtyTestDB(t)
	repo := NewGormPropertyRepository(db)
	ctx := context.Background()

	property, err := realty.NewProperty(uuid.New(), "A-101", realty.PropertyTypeResidential)
	require.NoError(t, err)
	require.NoError(t, property.SetDimensions(decimal.NewFromFloat(1250.5), "sqft"))

	require.NoError(t, repo.Save(ctx, property))

	retrieved, err := repo.FindByID(ctx, property.ID)
	require.NoError(t, err)
	assert.Equal(t, "A-101", retrieved.PlotNumber)
	assert.Equal(t, realty.PropertyTypeResidential, retrieved.Type)
	assert.Equal(t, realty.PropertyStatusAvailable, retrieved.Status)
	assert.True(t, retrieved.Area.Equal(decimal.NewFromFloat(1250.5)))
	assert.Equal(t, "sqft", retrieved.AreaUnit)
	assert.Nil(t, retrieved.OwnerClientID)
}

func TestGormPropertyRepository_FindByID_NotFound(t *testing.T) {
	db := setupRealtyTestDB(t)
	repo := NewGormPropertyRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormPropertyRepository_FindByProject(t *testing.T) {
	db := setupRealtyTestDB(t)
	repo := NewGormPropertyRepository(db)
	ctx := context.Background()

	projectID := uuid.New()
	for _, plot := range []string{"B-202", "A-101", "C-303"} {
		p, err := realty.NewProperty(projectID, plot, realty.PropertyTypeResidential)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, p))
	}

	other, err := realty.NewProperty(uuid.New(), "Z-999", realty.PropertyTypeCommercial)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, other))

	properties, err := repo.FindByProject(ctx, projectID, shared.DefaultFilter())
	require.NoError(t, err)
	require.Len(t, properties, 3)
	// default order is plot_number ascending
	assert.Equal(t, "A-101", properties[0].PlotNumber)
	assert.Equal(t, "B-202", properties[1].PlotNumber)
	assert.Equal(t, "C-303", properties[2].PlotNumber)
}

func TestGormPropertyRepository_StatusFilter(t *testing.T) {
	db := setupRealtyTestDB(t)
	repo := NewGormPropertyRepository(db)
	ctx := context.Background()

	projectID := uuid.New()
	available, err := realty.NewProperty(projectID, "A-101", realty.PropertyTypeResidential)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, available))

	sold, err := realty.NewProperty(projectID, "A-102", realty.PropertyTypeResidential)
	require.NoError(t, err)
	require.NoError(t, sold.SetStatus(realty.PropertyStatusSold))
	require.NoError(t, repo.Save(ctx, sold))

	filter := shared.DefaultFilter()
	filter.Filters["status"] = "sold"

	properties, err := repo.FindAll(ctx, filter)
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "A-102", properties[0].PlotNumber)

	count, err := repo.Count(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormPropertyRepository_OwnerAssignment(t *testing.T) {
	db := setupRealtyTestDB(t)
	repo := NewGormPropertyRepository(db)
	ctx := context.Background()

	property, err := realty.NewProperty(uuid.New(), "A-101", realty.PropertyTypeLand)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, property))

	ownerID := uuid.New()
	require.NoError(t, property.AssignOwner(ownerID))
	require.NoError(t, repo.Save(ctx, property))

	retrieved, err := repo.FindByID(ctx, property.ID)
	require.NoError(t, err)
	require.NotNil(t, retrieved.OwnerClientID)
	assert.Equal(t, ownerID, *retrieved.OwnerClientID)
	assert.Equal(t, 2, retrieved.Version)
}

func TestGormPropertyRepository_Delete(t *testing.T) {
	db := setupRealtyTestDB(t)
	repo := NewGormPropertyRepository(db)
	ctx := context.Background()

	property, err := realty.NewProperty(uuid.New(), "A-101", realty.PropertyTypeResidential)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, property))

	require.NoError(t, repo.Delete(ctx, property.ID))
	_, err = repo.FindByID(ctx, property.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, property.ID), shared.ErrNotFound)
}

func TestGormProjectRepository_RoundTrip(t *testing.T) {
	db := setupRealtyTestDB(t)
	repo := NewGormProjectRepository(db)
	ctx := context.Background()

	project, err := realty.NewProject("Green Acres", "Pune")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, project))

	retrieved, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Green Acres", retrieved.Name)
	assert.Equal(t, realty.ProjectStatusPlanning, retrieved.Status)

	require.NoError(t, retrieved.SetStatus(realty.ProjectStatusUnderway))
	require.NoError(t, repo.Save(ctx, retrieved))

	updated, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, realty.ProjectStatusUnderway, updated.Status)
	assert.Equal(t, 2, updated.Version)
}
