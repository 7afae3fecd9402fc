// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// The application uses several categories of interfaces:
//
// ## Data Access Interfaces
//
//   - CatalogStore, CategoryChecker, ReviewLookup, ShelfLookup: catalog reads
//     and writes (internal/services/catalog.go)
//   - ShelfStore, BookLookup: shelf management (internal/services/shelf.go)
//   - ReviewStore: review management (internal/services/review.go)
//   - UserStore: profile persistence (internal/services/profile.go)
//
// ## HTTP Layer Interfaces
//
//   - Catalog, Shelves, Reviews, Profiles, Categories, UserResolver: what the
//     controllers need from the service layer (internal/http/stores.go)
//
// ## Storage Interfaces
//
//   - CoverStore, PictureStore: uploaded image persistence
//     (internal/services/catalog.go, internal/services/profile.go)
//
// # Adding a New Database Domain
//
// To add a new data domain (e.g., reading stats):
//
//  1. Create sub-package: internal/database/stats/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Implement interface methods
//
//  4. Add compile-time check:
//
//     var _ StatsStore = (*Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
