package http

import (
	"github.com/gin-gonic/gin"

	"bookshelf/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(auth.SecurityHeadersMiddleware())

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	// Session runs after CSRF so session context isn't overwritten by
	// CSRF's request replacement
	router.Use(cfg.SessionManager.SessionLoadSave())
	router.Use(cfg.AuthMiddleware.Handler())

	// Serve uploaded images straight from disk
	router.Static("/uploads/covers", cfg.CoversPath)
	router.Static("/uploads/profile_pictures", cfg.ProfilePicturesPath)

	authController := auth.NewAuthController(cfg.AuthService, cfg.SessionManager)
	authController.RegisterRoutes(router)

	home := NewHomeController(cfg.Catalog)
	books := NewBooksController(cfg.Catalog, cfg.AuthService)
	categories := NewCategoriesController(cfg.Categories)
	shelves := NewShelvesController(cfg.Shelves)
	reviews := NewReviewsController(cfg.Reviews, cfg.AuthService)
	profile := NewProfileController(cfg.Profiles, cfg.AuthService)
	health := NewHealthController(cfg.Database, cfg.Version)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Public catalog endpoints. Book detail resolves the caller when a
	// session is present to include their review and shelf state.
	router.GET("/", home.Index)
	router.GET("/books", books.List)
	router.GET("/books/search", books.Search)
	router.GET("/books/:id", books.Get)
	router.GET("/categories", categories.List)
	router.GET("/categories/:id", categories.Get)

	// Catalog management, admin only
	admin := router.Group("/", cfg.AuthMiddleware.RequireAdmin())
	admin.POST("/books", books.Create)
	admin.PUT("/books/:id", books.Update)
	admin.DELETE("/books/:id", books.Delete)

	// Member endpoints
	member := router.Group("/", cfg.AuthMiddleware.RequireAuth())
	member.GET("/bookshelves", shelves.List)
	member.POST("/books/:id/shelf", shelves.Assign)
	member.PUT("/bookshelves/:id", shelves.Update)
	member.DELETE("/bookshelves/:id", shelves.Remove)
	member.POST("/books/:id/reviews", reviews.Create)
	member.PUT("/reviews/:id", reviews.Update)
	member.DELETE("/reviews/:id", reviews.Delete)
	member.GET("/profile", profile.Show)
	member.PUT("/profile", profile.Update)

	return router
}
