package database

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yukikurage/labourlink-api/internal/config"
	"github.com/yukikurage/labourlink-api/internal/models"
	"github.com/yukikurage/labourlink-api/internal/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})
	return db
}

func TestMigrateDatabase_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, MigrateDatabase(db))
	// Running again on an existing schema is a no-op.
	require.NoError(t, MigrateDatabase(db))

	for _, idx := range requiredIndexes {
		require.True(t, db.Migrator().HasIndex(idx.model, idx.name), idx.name)
	}
}

func TestEnsureIndexes_RestoresDroppedIndex(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, MigrateDatabase(db))

	require.NoError(t, db.Migrator().DropIndex(&models.Application{}, "idx_applications_worker_job"))
	require.False(t, db.Migrator().HasIndex(&models.Application{}, "idx_applications_worker_job"))

	require.NoError(t, EnsureIndexes(db))
	require.True(t, db.Migrator().HasIndex(&models.Application{}, "idx_applications_worker_job"))
}

func TestDialectorFor(t *testing.T) {
	cfg := &config.Config{DBDriver: "mysql", DBHost: "db", DBPort: "3306", DBUser: "u", DBPassword: "p", DBName: "n"}
	dialector, err := dialectorFor(cfg)
	require.NoError(t, err)
	require.Equal(t, "mysql", dialector.Name())

	cfg.DBDriver = "postgres"
	dialector, err = dialectorFor(cfg)
	require.NoError(t, err)
	require.Equal(t, "postgres", dialector.Name())

	cfg.DBDriver = "oracle"
	_, err = dialectorFor(cfg)
	require.Error(t, err)
}

func TestScopes(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, MigrateDatabase(db))

	recruiter := &models.User{Name: "r", Email: "r@example.com", Phone: "1", PasswordHash: "x", Role: models.RoleRecruiter}
	require.NoError(t, db.Create(recruiter).Error)
	for _, title := range []string{"a", "b", "c"} {
		require.NoError(t, db.Create(&models.Job{RecruiterID: recruiter.ID, Title: title, Description: "d", Category: "c", Location: "l"}).Error)
	}

	var jobs []models.Job
	require.NoError(t, db.Scopes(Paginate(utils.NewPaginationParams(2, 2))).Find(&jobs).Error)
	require.Len(t, jobs, 1)
}
