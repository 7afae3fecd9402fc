package config

const (
	// DefaultDatabasePath is the default path for the application database
	DefaultDatabasePath = "./bookshelf.db"

	// DefaultUploadsDir is the root directory for user-uploaded files.
	// Cover images and profile pictures live in separate subdirectories
	// beneath it, both served publicly.
	DefaultUploadsDir = "./uploads"

	// PageSize is the fixed page size for catalog and category listings.
	PageSize = 12

	// HomePageBookCount is how many latest/popular books the home payload carries.
	HomePageBookCount = 6
)
