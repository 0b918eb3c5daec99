package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"prayerhub/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Session{}))
	return db
}

func runStoreTests(t *testing.T, store Store) {
	t.Run("create and get", func(t *testing.T) {
		token, err := store.Create(7, time.Hour)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		userID, err := store.Get(token)
		require.NoError(t, err)
		assert.Equal(t, uint(7), userID)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := store.Get("no-such-token")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("expired session", func(t *testing.T) {
		token, err := store.Create(8, -time.Minute)
		require.NoError(t, err)

		_, err = store.Get(token)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("destroy", func(t *testing.T) {
		token, err := store.Create(9, time.Hour)
		require.NoError(t, err)

		require.NoError(t, store.Destroy(token))

		_, err = store.Get(token)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("destroy all user sessions", func(t *testing.T) {
		first, err := store.Create(10, time.Hour)
		require.NoError(t, err)
		second, err := store.Create(10, time.Hour)
		require.NoError(t, err)
		other, err := store.Create(11, time.Hour)
		require.NoError(t, err)

		require.NoError(t, store.DestroyUserSessions(10))

		_, err = store.Get(first)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = store.Get(second)
		assert.ErrorIs(t, err, ErrNotFound)

		userID, err := store.Get(other)
		require.NoError(t, err)
		assert.Equal(t, uint(11), userID)
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreTests(t, NewMemoryStore())
}

func TestDBStore(t *testing.T) {
	runStoreTests(t, NewDBStore(openTestDB(t)))
}

func TestInitSelectsBackend(t *testing.T) {
	db := openTestDB(t)

	Init("db", db)
	_, ok := Active.(*DBStore)
	assert.True(t, ok)

	Init("memory", db)
	_, ok = Active.(*MemoryStore)
	assert.True(t, ok)

	Init("anything-else", db)
	_, ok = Active.(*MemoryStore)
	assert.True(t, ok)
}
