package http

import (
	"bookshelf/internal/entities"
	"bookshelf/internal/services"
)

// Catalog provides book browsing and admin catalog management.
type Catalog interface {
	ListBooks(page int) ([]entities.Book, services.Pagination, error)
	SearchBooks(query string, categoryID uint, page int) ([]entities.Book, services.Pagination, error)
	GetBook(id uint, callerID uint) (*services.BookDetail, error)
	Home() (latest, popular []entities.Book, err error)
	CreateBook(caller *entities.User, input services.BookInput, cover *services.Upload) (*entities.Book, error)
	UpdateBook(caller *entities.User, id uint, input services.BookInput, cover *services.Upload) (*entities.Book, error)
	DeleteBook(caller *entities.User, id uint) error
}

// Shelves manages per-user reading shelves.
type Shelves interface {
	AssignShelf(userID, bookID uint, shelfType entities.ShelfType) (*entities.ShelfEntry, error)
	UpdateShelf(callerID, entryID uint, shelfType entities.ShelfType) (*entities.ShelfEntry, error)
	RemoveShelf(callerID, entryID uint) error
	ListShelves(userID uint) (*services.ShelfCollection, error)
}

// Reviews manages book reviews.
type Reviews interface {
	AddReview(userID, bookID uint, rating int, comment string) (*entities.Review, error)
	EditReview(callerID, reviewID uint, rating int, comment string) (*entities.Review, error)
	DeleteReview(caller *entities.User, reviewID uint) error
}

// Profiles updates user account details.
type Profiles interface {
	UpdateProfile(userID uint, input services.ProfileInput) (*entities.User, error)
}

// Categories reads the fixed category taxonomy.
type Categories interface {
	List() ([]entities.Category, error)
	GetByID(id uint) (*entities.Category, error)
	Books(categoryID uint, limit, offset int) ([]entities.Book, int64, error)
}

// UserResolver loads a user by ID, for handlers that need the full
// caller record rather than just the session's user ID.
type UserResolver interface {
	GetUserByID(id uint) (*entities.User, error)
}
