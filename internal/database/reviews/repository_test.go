package reviews

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

func setupTestRepo(t *testing.T) (*Repository, *gorm.DB) {
	t.Helper()
	dbPath := "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})
	return NewRepository(db.DB), db.DB
}

func seedUserAndBook(t *testing.T, db *gorm.DB) (*entities.User, *entities.Book) {
	t.Helper()
	user := &entities.User{Name: "Reviewer", Email: "reviewer@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	book := &entities.Book{Title: "Reviewed Book", Author: "Author", CategoryID: 1}
	require.NoError(t, db.Create(book).Error)
	return user, book
}

func TestRepository_Create(t *testing.T) {
	repo, db := setupTestRepo(t)
	user, book := seedUserAndBook(t, db)

	review := &entities.Review{UserID: user.ID, BookID: book.ID, Rating: 5, Comment: "Loved it"}
	require.NoError(t, repo.Create(review))
	assert.NotZero(t, review.ID)

	t.Run("second review for the same pair is a duplicate key", func(t *testing.T) {
		duplicate := &entities.Review{UserID: user.ID, BookID: book.ID, Rating: 1}
		err := repo.Create(duplicate)
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

		// Original is untouched
		got, err := repo.GetByID(review.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, got.Rating)
		assert.Equal(t, "Loved it", got.Comment)
	})

	t.Run("same user may review a different book", func(t *testing.T) {
		other := &entities.Book{Title: "Other Book", Author: "Author", CategoryID: 1}
		require.NoError(t, db.Create(other).Error)

		err := repo.Create(&entities.Review{UserID: user.ID, BookID: other.ID, Rating: 3})
		assert.NoError(t, err)
	})
}

func TestRepository_GetByUserAndBook(t *testing.T) {
	repo, db := setupTestRepo(t)
	user, book := seedUserAndBook(t, db)

	_, err := repo.GetByUserAndBook(user.ID, book.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, repo.Create(&entities.Review{UserID: user.ID, BookID: book.ID, Rating: 4}))

	review, err := repo.GetByUserAndBook(user.ID, book.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
}

func TestRepository_Update(t *testing.T) {
	repo, db := setupTestRepo(t)
	user, book := seedUserAndBook(t, db)

	review := &entities.Review{UserID: user.ID, BookID: book.ID, Rating: 2, Comment: "Meh"}
	require.NoError(t, repo.Create(review))

	require.NoError(t, repo.Update(review.ID, 4, "Grew on me"))

	got, err := repo.GetByID(review.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Rating)
	assert.Equal(t, "Grew on me", got.Comment)
}

func TestRepository_Delete(t *testing.T) {
	repo, db := setupTestRepo(t)
	user, book := seedUserAndBook(t, db)

	review := &entities.Review{UserID: user.ID, BookID: book.ID, Rating: 3}
	require.NoError(t, repo.Create(review))

	require.NoError(t, repo.Delete(review.ID))

	_, err := repo.GetByID(review.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	t.Run("the pair can be reviewed again after deletion", func(t *testing.T) {
		err := repo.Create(&entities.Review{UserID: user.ID, BookID: book.ID, Rating: 5})
		assert.NoError(t, err)
	})
}
