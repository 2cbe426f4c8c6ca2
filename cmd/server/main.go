package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"Ripple/internal/api/middleware"
	"Ripple/internal/api/routes"
	"Ripple/internal/config"
	"Ripple/internal/core/likes"
	"Ripple/internal/core/posts"
	"Ripple/internal/core/users"
	postgresRepo "Ripple/internal/db/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	log.Println("Connected to database")

	// Run migrations
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}

	if err := goose.Up(db, cfg.MigrationsDir); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Migrations completed successfully")

	// Repositories
	postRepo := postgresRepo.NewPostRepository(db)
	likeRepo := postgresRepo.NewLikeRepository(db)
	userRepo := postgresRepo.NewUserRepository(db)

	// Services
	postService := posts.NewService(postRepo, nil)
	likeService := likes.NewService(likeRepo, postRepo, nil)
	userService := users.NewService(userRepo, nil)

	// Auth: bearer tokens from the identity provider, session cookies for
	// browser clients
	cookieStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	authMw := middleware.NewAuthMiddleware([]byte(cfg.TokenSecret), cookieStore)

	// Rate limiting applies to procedures (authenticated mutations and
	// session establishment); queries stay unthrottled
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)

	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	routes.RegisterPostRoutes(r, postService, authMw, rateLimiter.Middleware)
	routes.RegisterLikeRoutes(r, likeService, authMw, rateLimiter.Middleware)
	routes.RegisterUserRoutes(r, userService)
	routes.RegisterSessionRoutes(r, userService, authMw, []byte(cfg.TokenSecret), rateLimiter.Middleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	fmt.Printf("Ripple server starting on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
