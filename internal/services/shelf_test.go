package services

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"bookshelf/internal/database"
	"bookshelf/internal/database/books"
	"bookshelf/internal/database/shelves"
	"bookshelf/internal/entities"
)

func setupShelfService(t *testing.T) (*ShelfService, *gorm.DB) {
	t.Helper()
	dbPath := "./test_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})

	svc := NewShelfService(shelves.NewRepository(db.DB), books.NewRepository(db.DB))
	return svc, db.DB
}

func seedShelfFixtures(t *testing.T, db *gorm.DB) (*entities.User, *entities.Book) {
	t.Helper()
	user := &entities.User{Name: "Reader", Email: "reader@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	book := &entities.Book{Title: "Shelved Book", Author: "Author", CategoryID: 1}
	require.NoError(t, db.Create(book).Error)
	return user, book
}

func TestShelfService_AssignShelf(t *testing.T) {
	t.Run("rejects unknown shelf type", func(t *testing.T) {
		svc, db := setupShelfService(t)
		user, book := seedShelfFixtures(t, db)

		_, err := svc.AssignShelf(user.ID, book.ID, entities.ShelfType("favourites"))
		var vErr *ValidationError
		require.True(t, AsValidationError(err, &vErr))
		assert.Contains(t, vErr.Fields, "shelf_type")
	})

	t.Run("missing book", func(t *testing.T) {
		svc, db := setupShelfService(t)
		user, _ := seedShelfFixtures(t, db)

		_, err := svc.AssignShelf(user.ID, 999, entities.ShelfRead)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("reassignment overwrites the previous shelf", func(t *testing.T) {
		svc, db := setupShelfService(t)
		user, book := seedShelfFixtures(t, db)

		first, err := svc.AssignShelf(user.ID, book.ID, entities.ShelfWantToRead)
		require.NoError(t, err)

		second, err := svc.AssignShelf(user.ID, book.ID, entities.ShelfCurrentlyReading)
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, entities.ShelfCurrentlyReading, second.ShelfType)

		collection, err := svc.ListShelves(user.ID)
		require.NoError(t, err)
		assert.Empty(t, collection.WantToRead)
		assert.Len(t, collection.CurrentlyReading, 1)
	})
}

func TestShelfService_UpdateShelf(t *testing.T) {
	svc, db := setupShelfService(t)
	user, book := seedShelfFixtures(t, db)

	entry, err := svc.AssignShelf(user.ID, book.ID, entities.ShelfWantToRead)
	require.NoError(t, err)

	t.Run("owner moves the entry", func(t *testing.T) {
		updated, err := svc.UpdateShelf(user.ID, entry.ID, entities.ShelfRead)
		require.NoError(t, err)
		assert.Equal(t, entities.ShelfRead, updated.ShelfType)
	})

	t.Run("non-owner may not touch it", func(t *testing.T) {
		other := &entities.User{Name: "Other", Email: "other@example.com", PasswordHash: "x"}
		require.NoError(t, db.Create(other).Error)

		_, err := svc.UpdateShelf(other.ID, entry.ID, entities.ShelfWantToRead)
		assert.ErrorIs(t, err, ErrNotPermitted)
	})

	t.Run("rejects unknown shelf type", func(t *testing.T) {
		_, err := svc.UpdateShelf(user.ID, entry.ID, entities.ShelfType("abandoned"))
		var vErr *ValidationError
		assert.True(t, AsValidationError(err, &vErr))
	})

	t.Run("missing entry", func(t *testing.T) {
		_, err := svc.UpdateShelf(user.ID, 999, entities.ShelfRead)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestShelfService_RemoveShelf(t *testing.T) {
	svc, db := setupShelfService(t)
	user, book := seedShelfFixtures(t, db)

	entry, err := svc.AssignShelf(user.ID, book.ID, entities.ShelfRead)
	require.NoError(t, err)

	t.Run("non-owner may not remove", func(t *testing.T) {
		other := &entities.User{Name: "Other", Email: "other@example.com", PasswordHash: "x"}
		require.NoError(t, db.Create(other).Error)

		assert.ErrorIs(t, svc.RemoveShelf(other.ID, entry.ID), ErrNotPermitted)
	})

	t.Run("owner removes", func(t *testing.T) {
		require.NoError(t, svc.RemoveShelf(user.ID, entry.ID))
		assert.ErrorIs(t, svc.RemoveShelf(user.ID, entry.ID), ErrNotFound)
	})
}

func TestShelfService_ListShelves(t *testing.T) {
	svc, db := setupShelfService(t)
	user, _ := seedShelfFixtures(t, db)

	wantBook := &entities.Book{Title: "Want", Author: "A", CategoryID: 1}
	readingBook := &entities.Book{Title: "Reading", Author: "B", CategoryID: 1}
	doneBook := &entities.Book{Title: "Done", Author: "C", CategoryID: 1}
	for _, b := range []*entities.Book{wantBook, readingBook, doneBook} {
		require.NoError(t, db.Create(b).Error)
	}

	_, err := svc.AssignShelf(user.ID, wantBook.ID, entities.ShelfWantToRead)
	require.NoError(t, err)
	_, err = svc.AssignShelf(user.ID, readingBook.ID, entities.ShelfCurrentlyReading)
	require.NoError(t, err)
	_, err = svc.AssignShelf(user.ID, doneBook.ID, entities.ShelfRead)
	require.NoError(t, err)

	collection, err := svc.ListShelves(user.ID)
	require.NoError(t, err)
	require.Len(t, collection.WantToRead, 1)
	require.Len(t, collection.CurrentlyReading, 1)
	require.Len(t, collection.Read, 1)
	assert.Equal(t, "Want", collection.WantToRead[0].Book.Title)
	assert.Equal(t, "Reading", collection.CurrentlyReading[0].Book.Title)
	assert.Equal(t, "Done", collection.Read[0].Book.Title)

	t.Run("empty shelves are empty lists, not nil", func(t *testing.T) {
		other := &entities.User{Name: "Other", Email: "other@example.com", PasswordHash: "x"}
		require.NoError(t, db.Create(other).Error)

		collection, err := svc.ListShelves(other.ID)
		require.NoError(t, err)
		assert.NotNil(t, collection.WantToRead)
		assert.NotNil(t, collection.CurrentlyReading)
		assert.NotNil(t, collection.Read)
		assert.Empty(t, collection.WantToRead)
	})
}
