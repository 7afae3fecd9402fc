package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/entities"
	"bookshelf/internal/services"
)

type BooksController struct {
	catalog Catalog
	users   UserResolver
}

func NewBooksController(catalog Catalog, users UserResolver) *BooksController {
	return &BooksController{catalog: catalog, users: users}
}

// List returns one page of the catalog, newest first.
// GET /books?page=N
func (controller *BooksController) List(c *gin.Context) {
	books, pagination, err := controller.catalog.ListBooks(parsePageQuery(c))
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.JSON(http.StatusOK, newPaginatedResponse(books, pagination))
}

// Search filters the catalog by a case-insensitive term and an optional
// category.
// GET /books/search?query=term&category_id=N&page=N
func (controller *BooksController) Search(c *gin.Context) {
	query := c.Query("query")

	var categoryID uint
	if raw := c.Query("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondBadRequest(c, "invalid category_id")
			return
		}
		categoryID = uint(parsed)
	}

	books, pagination, err := controller.catalog.SearchBooks(query, categoryID, parsePageQuery(c))
	if err != nil {
		respondInternalError(c, err, "search books")
		return
	}
	c.JSON(http.StatusOK, newPaginatedResponse(books, pagination))
}

// Get returns a single book with its reviews, average rating, and — for
// authenticated callers — their own review and shelf state.
// GET /books/:id
func (controller *BooksController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	detail, err := controller.catalog.GetBook(id, GetUserID(c))
	if err != nil {
		respondServiceError(c, err, "book")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Create adds a book to the catalog. Admin only.
// POST /books (multipart form, optional cover_image file)
func (controller *BooksController) Create(c *gin.Context) {
	caller, ok := controller.resolveCaller(c)
	if !ok {
		return
	}

	input, cover, cleanup, ok := parseBookForm(c)
	if !ok {
		return
	}
	defer cleanup()

	book, err := controller.catalog.CreateBook(caller, input, cover)
	if err != nil {
		respondServiceError(c, err, "book")
		return
	}
	respondCreated(c, book)
}

// Update replaces a book's details and optionally its cover. Admin only.
// PUT /books/:id
func (controller *BooksController) Update(c *gin.Context) {
	caller, ok := controller.resolveCaller(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	input, cover, cleanup, ok := parseBookForm(c)
	if !ok {
		return
	}
	defer cleanup()

	book, err := controller.catalog.UpdateBook(caller, id, input, cover)
	if err != nil {
		respondServiceError(c, err, "book")
		return
	}
	c.JSON(http.StatusOK, book)
}

// Delete removes a book along with its reviews and shelf entries. Admin only.
// DELETE /books/:id
func (controller *BooksController) Delete(c *gin.Context) {
	caller, ok := controller.resolveCaller(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.catalog.DeleteBook(caller, id); err != nil {
		respondServiceError(c, err, "book")
		return
	}
	respondSuccess(c, "book deleted")
}

func (controller *BooksController) resolveCaller(c *gin.Context) (*entities.User, bool) {
	userID := GetUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return nil, false
	}
	caller, err := controller.users.GetUserByID(userID)
	if err != nil {
		respondInternalError(c, err, "resolve caller")
		return nil, false
	}
	return caller, true
}

// parseBookForm reads the multipart book form. The returned cleanup
// function closes the cover file and must be called even when no cover
// was uploaded.
func parseBookForm(c *gin.Context) (services.BookInput, *services.Upload, func(), bool) {
	year := 0
	if raw := c.PostForm("published_year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondBadRequest(c, "invalid published_year")
			return services.BookInput{}, nil, nil, false
		}
		year = parsed
	}

	var categoryID uint
	if raw := c.PostForm("category_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondBadRequest(c, "invalid category_id")
			return services.BookInput{}, nil, nil, false
		}
		categoryID = uint(parsed)
	}

	input := services.BookInput{
		Title:         c.PostForm("title"),
		Author:        c.PostForm("author"),
		Description:   c.PostForm("description"),
		ISBN:          c.PostForm("isbn"),
		PublishedYear: year,
		Publisher:     c.PostForm("publisher"),
		CategoryID:    categoryID,
	}

	cleanup := func() {}
	var cover *services.Upload
	if fileHeader, err := c.FormFile("cover_image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			respondBadRequest(c, "could not read cover_image")
			return services.BookInput{}, nil, nil, false
		}
		cover = &services.Upload{Reader: file, Filename: fileHeader.Filename}
		cleanup = func() { _ = file.Close() }
	}

	return input, cover, cleanup, true
}
