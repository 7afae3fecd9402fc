package http

import (
	"bookshelf/internal/auth"
	"bookshelf/internal/database"
)

// RouterConfig carries all router dependencies, keeping NewRouter's
// signature stable as the application grows.
type RouterConfig struct {
	Database *database.Database
	Version  string

	Catalog    Catalog
	Shelves    Shelves
	Reviews    Reviews
	Profiles   Profiles
	Categories Categories

	AuthService    *auth.Service
	SessionManager *auth.SessionManager
	AuthMiddleware *auth.Middleware

	CSRFSecret    []byte
	SecureCookies bool

	// Filesystem paths for serving uploaded images
	CoversPath          string
	ProfilePicturesPath string
}
