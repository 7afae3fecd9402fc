package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HomeController struct {
	catalog Catalog
}

func NewHomeController(catalog Catalog) *HomeController {
	return &HomeController{catalog: catalog}
}

// Index returns the landing page data: the latest additions and the
// most-reviewed books.
// GET /
func (controller *HomeController) Index(c *gin.Context) {
	latest, popular, err := controller.catalog.Home()
	if err != nil {
		respondInternalError(c, err, "home")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"latest_books":  latest,
		"popular_books": popular,
	})
}
