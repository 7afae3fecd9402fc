package users

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bookshelf/internal/database"
	"bookshelf/internal/entities"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	dbPath := "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})
	return NewRepository(db.DB)
}

func TestRepository_Create(t *testing.T) {
	repo := setupTestRepo(t)

	user := &entities.User{Name: "Jane", Email: "jane@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(user))
	assert.NotZero(t, user.ID)

	got, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.UserRoleMember, got.Role)

	t.Run("duplicate email is rejected", func(t *testing.T) {
		err := repo.Create(&entities.User{Name: "Other", Email: "jane@example.com", PasswordHash: "hash"})
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})
}

func TestRepository_GetByEmail(t *testing.T) {
	repo := setupTestRepo(t)

	require.NoError(t, repo.Create(&entities.User{Name: "Jane", Email: "jane@example.com", PasswordHash: "hash"}))

	user, err := repo.GetByEmail("jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane", user.Name)

	_, err = repo.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_EmailTaken(t *testing.T) {
	repo := setupTestRepo(t)

	jane := &entities.User{Name: "Jane", Email: "jane@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(jane))

	t.Run("taken by another user", func(t *testing.T) {
		taken, err := repo.EmailTaken("jane@example.com", 0)
		require.NoError(t, err)
		assert.True(t, taken)
	})

	t.Run("own email is not taken", func(t *testing.T) {
		taken, err := repo.EmailTaken("jane@example.com", jane.ID)
		require.NoError(t, err)
		assert.False(t, taken)
	})

	t.Run("free email is not taken", func(t *testing.T) {
		taken, err := repo.EmailTaken("free@example.com", 0)
		require.NoError(t, err)
		assert.False(t, taken)
	})
}

func TestRepository_UpdateFields(t *testing.T) {
	repo := setupTestRepo(t)

	user := &entities.User{Name: "Jane", Email: "jane@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(user))

	require.NoError(t, repo.UpdateFields(user.ID, map[string]any{
		"failed_login_count": 3,
	}))

	got, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.FailedLoginCount)
}

func TestRepository_Count(t *testing.T) {
	repo := setupTestRepo(t)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	require.NoError(t, repo.Create(&entities.User{Name: "Jane", Email: "jane@example.com", PasswordHash: "hash"}))

	count, err = repo.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
