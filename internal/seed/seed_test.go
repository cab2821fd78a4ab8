package seed

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bookverse/bookverse-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Book{}))
	return db
}

func TestCatalogSeedIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Catalog(db))
	require.NoError(t, Catalog(db))

	var count int64
	require.NoError(t, db.Model(&models.Book{}).Count(&count).Error)
	assert.EqualValues(t, len(starterBooks), count)
}

func TestPromoteAdmins(t *testing.T) {
	db := newTestDB(t)

	users := []models.User{
		{Name: "Ada", Email: "ada@bookverse.test", PasswordHash: "x", IsVerified: true},
		{Name: "Bob", Email: "bob@bookverse.test", PasswordHash: "x", IsVerified: true},
	}
	require.NoError(t, db.Create(&users).Error)

	require.NoError(t, PromoteAdmins(db, " ada@bookverse.test , ghost@bookverse.test "))

	var ada, bob models.User
	require.NoError(t, db.First(&ada, "email = ?", "ada@bookverse.test").Error)
	require.NoError(t, db.First(&bob, "email = ?", "bob@bookverse.test").Error)
	assert.True(t, ada.IsAdmin)
	assert.False(t, bob.IsAdmin)
}

func TestPromoteAdminsEmptyList(t *testing.T) {
	db := newTestDB(t)

	user := models.User{Name: "Ada", Email: "ada@bookverse.test", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	require.NoError(t, PromoteAdmins(db, ""))

	var ada models.User
	require.NoError(t, db.First(&ada, "email = ?", user.Email).Error)
	assert.False(t, ada.IsAdmin)
}
