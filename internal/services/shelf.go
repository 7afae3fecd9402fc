package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookshelf/internal/entities"
)

// ShelfStore defines the database operations the shelf service needs.
// Upsert must be backed by a storage-level unique constraint on
// (user, book) so concurrent assignments cannot create duplicates.
type ShelfStore interface {
	Upsert(userID, bookID uint, shelfType entities.ShelfType) (*entities.ShelfEntry, error)
	GetByID(id uint) (*entities.ShelfEntry, error)
	UpdateType(id uint, shelfType entities.ShelfType) error
	Delete(id uint) error
	ListByUser(userID uint) ([]entities.ShelfEntry, error)
}

// BookLookup resolves referenced books.
type BookLookup interface {
	GetByID(id uint) (*entities.Book, error)
}

// ShelfCollection groups a user's shelf entries by shelf type into
// three disjoint lists.
type ShelfCollection struct {
	WantToRead       []entities.ShelfEntry `json:"want_to_read"`
	CurrentlyReading []entities.ShelfEntry `json:"currently_reading"`
	Read             []entities.ShelfEntry `json:"read"`
}

// ShelfService manages per-(user, book) reading shelves. Each user has
// an independent shelf state per book; assigning a shelf overwrites any
// existing assignment for the pair.
type ShelfService struct {
	shelves ShelfStore
	books   BookLookup
}

// NewShelfService creates a shelf service.
func NewShelfService(shelves ShelfStore, books BookLookup) *ShelfService {
	return &ShelfService{shelves: shelves, books: books}
}

// AssignShelf places the book on one of the user's shelves, overwriting
// any prior assignment for the pair. Assigning the same type again is a
// no-op state-wise and still succeeds.
func (s *ShelfService) AssignShelf(userID, bookID uint, shelfType entities.ShelfType) (*entities.ShelfEntry, error) {
	if !shelfType.Valid() {
		v := newValidationError()
		v.add("shelf_type", "shelf type must be one of want_to_read, currently_reading, read")
		return nil, v
	}

	if _, err := s.books.GetByID(bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get book: %w", err)
	}

	entry, err := s.shelves.Upsert(userID, bookID, shelfType)
	if err != nil {
		return nil, fmt.Errorf("assign shelf: %w", err)
	}
	return entry, nil
}

// UpdateShelf changes an existing entry's shelf type. The caller must
// own the entry.
func (s *ShelfService) UpdateShelf(callerID, entryID uint, shelfType entities.ShelfType) (*entities.ShelfEntry, error) {
	if !shelfType.Valid() {
		v := newValidationError()
		v.add("shelf_type", "shelf type must be one of want_to_read, currently_reading, read")
		return nil, v
	}

	entry, err := s.shelves.GetByID(entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get shelf entry: %w", err)
	}
	if entry.UserID != callerID {
		return nil, ErrNotPermitted
	}

	if err := s.shelves.UpdateType(entryID, shelfType); err != nil {
		return nil, fmt.Errorf("update shelf entry: %w", err)
	}
	entry.ShelfType = shelfType
	return entry, nil
}

// RemoveShelf deletes an entry. The caller must own it.
func (s *ShelfService) RemoveShelf(callerID, entryID uint) error {
	entry, err := s.shelves.GetByID(entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get shelf entry: %w", err)
	}
	if entry.UserID != callerID {
		return ErrNotPermitted
	}

	if err := s.shelves.Delete(entryID); err != nil {
		return fmt.Errorf("remove shelf entry: %w", err)
	}
	return nil
}

// ListShelves returns the user's shelves as three disjoint lists, each
// book joined with its category.
func (s *ShelfService) ListShelves(userID uint) (*ShelfCollection, error) {
	entries, err := s.shelves.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("list shelves: %w", err)
	}

	collection := &ShelfCollection{
		WantToRead:       []entities.ShelfEntry{},
		CurrentlyReading: []entities.ShelfEntry{},
		Read:             []entities.ShelfEntry{},
	}
	for _, entry := range entries {
		switch entry.ShelfType {
		case entities.ShelfWantToRead:
			collection.WantToRead = append(collection.WantToRead, entry)
		case entities.ShelfCurrentlyReading:
			collection.CurrentlyReading = append(collection.CurrentlyReading, entry)
		case entities.ShelfRead:
			collection.Read = append(collection.Read, entry)
		}
	}
	return collection, nil
}
