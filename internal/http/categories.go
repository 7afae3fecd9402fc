package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/config"
	"bookshelf/internal/services"
)

type CategoriesController struct {
	categories Categories
}

func NewCategoriesController(categories Categories) *CategoriesController {
	return &CategoriesController{categories: categories}
}

// List returns all categories with their book counts.
// GET /categories
func (controller *CategoriesController) List(c *gin.Context) {
	categories, err := controller.categories.List()
	if err != nil {
		respondInternalError(c, err, "list categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories, "count": len(categories)})
}

// Get returns one category and a page of its books.
// GET /categories/:id?page=N
func (controller *CategoriesController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	category, err := controller.categories.GetByID(id)
	if err != nil {
		respondNotFound(c, "category")
		return
	}

	page := parsePageQuery(c)
	books, total, err := controller.categories.Books(id, config.PageSize, (page-1)*config.PageSize)
	if err != nil {
		respondInternalError(c, err, "list category books")
		return
	}

	totalPages := int((total + config.PageSize - 1) / config.PageSize)
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"books": newPaginatedResponse(books, services.Pagination{
			Page:       page,
			PageSize:   config.PageSize,
			Total:      total,
			TotalPages: totalPages,
		}),
	})
}
