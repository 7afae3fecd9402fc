package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/entities"
)

type ShelvesController struct {
	shelves Shelves
}

func NewShelvesController(shelves Shelves) *ShelvesController {
	return &ShelvesController{shelves: shelves}
}

type shelfRequest struct {
	ShelfType string `json:"shelf_type" binding:"required"`
}

// List returns the caller's shelves grouped by type.
// GET /bookshelves
func (controller *ShelvesController) List(c *gin.Context) {
	collection, err := controller.shelves.ListShelves(GetUserID(c))
	if err != nil {
		respondInternalError(c, err, "list shelves")
		return
	}
	c.JSON(http.StatusOK, collection)
}

// Assign puts a book on one of the caller's shelves, replacing any
// previous shelf assignment for that book.
// POST /books/:id/shelf
func (controller *ShelvesController) Assign(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req shelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "shelf_type is required")
		return
	}

	entry, err := controller.shelves.AssignShelf(GetUserID(c), bookID, entities.ShelfType(req.ShelfType))
	if err != nil {
		respondServiceError(c, err, "book")
		return
	}
	respondCreated(c, entry)
}

// Update moves an existing shelf entry to a different shelf.
// PUT /bookshelves/:id
func (controller *ShelvesController) Update(c *gin.Context) {
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req shelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "shelf_type is required")
		return
	}

	entry, err := controller.shelves.UpdateShelf(GetUserID(c), entryID, entities.ShelfType(req.ShelfType))
	if err != nil {
		respondServiceError(c, err, "shelf entry")
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Remove takes a book off the caller's shelves.
// DELETE /bookshelves/:id
func (controller *ShelvesController) Remove(c *gin.Context) {
	entryID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := controller.shelves.RemoveShelf(GetUserID(c), entryID); err != nil {
		respondServiceError(c, err, "shelf entry")
		return
	}
	respondSuccess(c, "shelf entry removed")
}
