package entrypoint

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/auth"
	"bookshelf/internal/config"
	"bookshelf/internal/database"
	"bookshelf/internal/database/books"
	"bookshelf/internal/database/categories"
	"bookshelf/internal/database/reviews"
	"bookshelf/internal/database/shelves"
	"bookshelf/internal/database/users"
	http_controllers "bookshelf/internal/http"
	"bookshelf/internal/services"
	"bookshelf/internal/uploads"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT / SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookshelf v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	uploadStore, err := uploads.NewStore(cfg.Uploads.Dir)
	if err != nil {
		log.Fatalf("Failed to initialize upload store: %v", err)
	}

	// Repositories
	bookRepo := books.NewRepository(db.DB)
	categoryRepo := categories.NewRepository(db.DB)
	shelfRepo := shelves.NewRepository(db.DB)
	reviewRepo := reviews.NewRepository(db.DB)
	userRepo := users.NewRepository(db.DB)

	// Services
	catalogService := services.NewCatalogService(bookRepo, categoryRepo, reviewRepo, shelfRepo, uploadStore)
	shelfService := services.NewShelfService(shelfRepo, bookRepo)
	reviewService := services.NewReviewService(reviewRepo, bookRepo)
	profileService := services.NewProfileService(userRepo, uploadStore, cfg.Auth.BcryptCost)

	// Authentication
	authService := auth.NewService(userRepo, cfg.Auth)

	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}

	sessionManager, err := auth.NewSessionManager(sqlDB, cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	authMiddleware := auth.NewMiddleware(authService, sessionManager)

	var csrfSecret []byte
	if cfg.Auth.SessionSecret != "" {
		csrfSecret, err = hex.DecodeString(cfg.Auth.SessionSecret)
		if err != nil {
			// Not hex, use as raw bytes
			csrfSecret = []byte(cfg.Auth.SessionSecret)
		}
	} else {
		secret, err := auth.GenerateSessionSecret()
		if err != nil {
			log.Fatalf("Failed to generate CSRF secret: %v", err)
		}
		csrfSecret, _ = hex.DecodeString(secret)
		log.Printf("Generated session secret (set AUTH_SESSION_SECRET to persist)")
	}

	hasUsers, _ := authService.HasUsers()
	if !hasUsers {
		log.Printf("No users found. Run '%s create-admin' to create an administrator account.", os.Args[0])
	}

	routerCfg := http_controllers.RouterConfig{
		Database:            db,
		Version:             version,
		Catalog:             catalogService,
		Shelves:             shelfService,
		Reviews:             reviewService,
		Profiles:            profileService,
		Categories:          categoryRepo,
		AuthService:         authService,
		SessionManager:      sessionManager,
		AuthMiddleware:      authMiddleware,
		CSRFSecret:          csrfSecret,
		SecureCookies:       cfg.Auth.SecureCookies,
		CoversPath:          uploadStore.CoversPath(),
		ProfilePicturesPath: uploadStore.ProfilePicturesPath(),
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg)
}
