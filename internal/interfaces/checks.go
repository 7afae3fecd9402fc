package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"bookshelf/internal/auth"
	"bookshelf/internal/database/books"
	"bookshelf/internal/database/categories"
	"bookshelf/internal/database/reviews"
	"bookshelf/internal/database/shelves"
	"bookshelf/internal/database/users"
	"bookshelf/internal/http"
	"bookshelf/internal/services"
	"bookshelf/internal/uploads"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// Catalog repositories
var _ services.CatalogStore = (*books.Repository)(nil)
var _ services.CategoryChecker = (*categories.Repository)(nil)
var _ services.BookLookup = (*books.Repository)(nil)

// Shelf and review repositories
var _ services.ShelfStore = (*shelves.Repository)(nil)
var _ services.ShelfLookup = (*shelves.Repository)(nil)
var _ services.ReviewStore = (*reviews.Repository)(nil)
var _ services.ReviewLookup = (*reviews.Repository)(nil)

// User repositories
var _ services.UserStore = (*users.Repository)(nil)
var _ auth.UserRepository = (*users.Repository)(nil)

// =============================================================================
// Upload Storage
// =============================================================================

var _ services.CoverStore = (*uploads.Store)(nil)
var _ services.PictureStore = (*uploads.Store)(nil)

// =============================================================================
// HTTP Layer
// =============================================================================

var _ http.Catalog = (*services.CatalogService)(nil)
var _ http.Shelves = (*services.ShelfService)(nil)
var _ http.Reviews = (*services.ReviewService)(nil)
var _ http.Profiles = (*services.ProfileService)(nil)
var _ http.Categories = (*categories.Repository)(nil)
var _ http.UserResolver = (*auth.Service)(nil)
