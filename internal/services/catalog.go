package services

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gorm.io/gorm"

	"bookshelf/internal/config"
	"bookshelf/internal/entities"
)

// CatalogStore defines the database operations the catalog service needs.
type CatalogStore interface {
	List(limit, offset int) ([]entities.Book, int64, error)
	Search(query string, categoryID uint, limit, offset int) ([]entities.Book, int64, error)
	GetByID(id uint) (*entities.Book, error)
	Create(book *entities.Book) error
	Update(book *entities.Book) error
	Delete(id uint) error
	AverageRating(bookID uint) (float64, error)
	ReviewCount(bookID uint) (int64, error)
	Latest(n int) ([]entities.Book, error)
	MostReviewed(n int) ([]entities.Book, error)
}

// CategoryChecker verifies that a referenced category exists.
type CategoryChecker interface {
	Exists(id uint) (bool, error)
}

// ReviewLookup finds the caller's own review on the book detail page.
type ReviewLookup interface {
	GetByUserAndBook(userID, bookID uint) (*entities.Review, error)
}

// ShelfLookup finds the caller's current shelf entry on the book detail page.
type ShelfLookup interface {
	GetByUserAndBook(userID, bookID uint) (*entities.ShelfEntry, error)
}

// CoverStore persists and removes stored cover image files.
type CoverStore interface {
	SaveCover(src io.Reader, originalName string) (string, error)
	DeleteCover(filename string) error
}

// Upload carries an incoming file to be stored.
type Upload struct {
	Reader   io.Reader
	Filename string // original filename; only the extension is kept
}

// BookInput carries the writable fields of a book.
type BookInput struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	Description   string `json:"description"`
	ISBN          string `json:"isbn"`
	PublishedYear int    `json:"published_year"`
	Publisher     string `json:"publisher"`
	CategoryID    uint   `json:"category_id"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// BookDetail is the full payload for a single book, including the
// caller's own review and shelf state when authenticated.
type BookDetail struct {
	Book          entities.Book       `json:"book"`
	AverageRating float64             `json:"average_rating"`
	ReviewsCount  int64               `json:"reviews_count"`
	UserReview    *entities.Review    `json:"user_review,omitempty"`
	ShelfType     *entities.ShelfType `json:"shelf_type,omitempty"`
}

// CatalogService implements catalog browsing and admin-only catalog
// management. Caller identity is passed explicitly into every mutating
// operation; there is no ambient authentication state.
type CatalogService struct {
	books      CatalogStore
	categories CategoryChecker
	reviews    ReviewLookup
	shelves    ShelfLookup
	covers     CoverStore
}

// NewCatalogService creates a catalog service.
func NewCatalogService(books CatalogStore, categories CategoryChecker, reviews ReviewLookup, shelves ShelfLookup, covers CoverStore) *CatalogService {
	return &CatalogService{
		books:      books,
		categories: categories,
		reviews:    reviews,
		shelves:    shelves,
		covers:     covers,
	}
}

// ListBooks returns one page of the catalog, newest-first.
func (s *CatalogService) ListBooks(page int) ([]entities.Book, Pagination, error) {
	limit, offset := pageBounds(page)
	books, total, err := s.books.List(limit, offset)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("list books: %w", err)
	}
	return books, paginate(page, total), nil
}

// SearchBooks returns one page of books matching the optional substring
// query and the optional category filter.
func (s *CatalogService) SearchBooks(query string, categoryID uint, page int) ([]entities.Book, Pagination, error) {
	limit, offset := pageBounds(page)
	books, total, err := s.books.Search(query, categoryID, limit, offset)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("search books: %w", err)
	}
	return books, paginate(page, total), nil
}

// GetBook returns the book detail. callerID 0 means unauthenticated; an
// authenticated caller additionally gets their own review and shelf type.
func (s *CatalogService) GetBook(id uint, callerID uint) (*BookDetail, error) {
	book, err := s.books.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get book: %w", err)
	}

	avg, err := s.books.AverageRating(id)
	if err != nil {
		return nil, fmt.Errorf("average rating: %w", err)
	}
	count, err := s.books.ReviewCount(id)
	if err != nil {
		return nil, fmt.Errorf("review count: %w", err)
	}

	detail := &BookDetail{
		Book:          *book,
		AverageRating: avg,
		ReviewsCount:  count,
	}

	if callerID != 0 {
		if review, err := s.reviews.GetByUserAndBook(callerID, id); err == nil {
			detail.UserReview = review
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user review: %w", err)
		}
		if entry, err := s.shelves.GetByUserAndBook(callerID, id); err == nil {
			shelfType := entry.ShelfType
			detail.ShelfType = &shelfType
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("shelf entry: %w", err)
		}
	}

	return detail, nil
}

// Home returns the latest and most-reviewed books for the landing page.
func (s *CatalogService) Home() (latest, popular []entities.Book, err error) {
	latest, err = s.books.Latest(config.HomePageBookCount)
	if err != nil {
		return nil, nil, fmt.Errorf("latest books: %w", err)
	}
	popular, err = s.books.MostReviewed(config.HomePageBookCount)
	if err != nil {
		return nil, nil, fmt.Errorf("popular books: %w", err)
	}
	return latest, popular, nil
}

// CreateBook validates the input and inserts a new book. Only admins may
// manage the catalog. The cover file, if any, is written before the row
// is committed.
func (s *CatalogService) CreateBook(caller *entities.User, input BookInput, cover *Upload) (*entities.Book, error) {
	if caller == nil || !caller.IsAdmin() {
		return nil, ErrNotPermitted
	}
	if err := s.validateBookInput(input); err != nil {
		return nil, err
	}

	book := &entities.Book{
		Title:         input.Title,
		Author:        input.Author,
		Description:   input.Description,
		ISBN:          input.ISBN,
		PublishedYear: input.PublishedYear,
		Publisher:     input.Publisher,
		CategoryID:    input.CategoryID,
	}

	if cover != nil {
		filename, err := s.covers.SaveCover(cover.Reader, cover.Filename)
		if err != nil {
			return nil, fmt.Errorf("store cover: %w", err)
		}
		book.CoverImage = filename
	}

	if err := s.books.Create(book); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return book, nil
}

// UpdateBook validates the input and overwrites the book's fields.
// Replacing the cover image deletes the previously stored file.
func (s *CatalogService) UpdateBook(caller *entities.User, id uint, input BookInput, cover *Upload) (*entities.Book, error) {
	if caller == nil || !caller.IsAdmin() {
		return nil, ErrNotPermitted
	}

	book, err := s.books.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get book: %w", err)
	}

	if err := s.validateBookInput(input); err != nil {
		return nil, err
	}

	book.Title = input.Title
	book.Author = input.Author
	book.Description = input.Description
	book.ISBN = input.ISBN
	book.PublishedYear = input.PublishedYear
	book.Publisher = input.Publisher
	book.CategoryID = input.CategoryID

	oldCover := ""
	if cover != nil {
		filename, err := s.covers.SaveCover(cover.Reader, cover.Filename)
		if err != nil {
			return nil, fmt.Errorf("store cover: %w", err)
		}
		oldCover = book.CoverImage
		book.CoverImage = filename
	}

	// Reviews were preloaded by GetByID; clear them so Save does not
	// touch associated rows.
	book.Reviews = nil

	if err := s.books.Update(book); err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}

	if oldCover != "" {
		if err := s.covers.DeleteCover(oldCover); err != nil {
			return nil, fmt.Errorf("delete old cover: %w", err)
		}
	}

	return book, nil
}

// DeleteBook removes the book, its shelf entries and reviews, and its
// stored cover image.
func (s *CatalogService) DeleteBook(caller *entities.User, id uint) error {
	if caller == nil || !caller.IsAdmin() {
		return ErrNotPermitted
	}

	book, err := s.books.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("get book: %w", err)
	}

	if err := s.books.Delete(id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	if book.CoverImage != "" {
		if err := s.covers.DeleteCover(book.CoverImage); err != nil {
			return fmt.Errorf("delete cover: %w", err)
		}
	}

	return nil
}

func (s *CatalogService) validateBookInput(input BookInput) error {
	v := newValidationError()

	if input.Title == "" {
		v.add("title", "title is required")
	} else if len(input.Title) > 255 {
		v.add("title", "title must be at most 255 characters")
	}

	if input.Author == "" {
		v.add("author", "author is required")
	} else if len(input.Author) > 255 {
		v.add("author", "author must be at most 255 characters")
	}

	if len(input.ISBN) > 20 {
		v.add("isbn", "isbn must be at most 20 characters")
	}

	if input.PublishedYear != 0 {
		currentYear := time.Now().Year()
		if input.PublishedYear < 1000 || input.PublishedYear > currentYear {
			v.add("published_year", fmt.Sprintf("published year must be between 1000 and %d", currentYear))
		}
	}

	if len(input.Publisher) > 255 {
		v.add("publisher", "publisher must be at most 255 characters")
	}

	if input.CategoryID == 0 {
		v.add("category_id", "category is required")
	} else {
		exists, err := s.categories.Exists(input.CategoryID)
		if err != nil {
			return fmt.Errorf("check category: %w", err)
		}
		if !exists {
			v.add("category_id", "category does not exist")
		}
	}

	return v.orNil()
}

func pageBounds(page int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	return config.PageSize, (page - 1) * config.PageSize
}

func paginate(page int, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	totalPages := int((total + config.PageSize - 1) / config.PageSize)
	return Pagination{
		Page:       page,
		PageSize:   config.PageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
