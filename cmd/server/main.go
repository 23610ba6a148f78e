package main

import (
	"database/sql"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"

	_ "github.com/lib/pq"

	"minimalpost/internal/api/middleware"
	"minimalpost/internal/api/routes"
	"minimalpost/internal/config"
	"minimalpost/internal/core/posts"
	"minimalpost/internal/db/badgerdb"
	"minimalpost/internal/db/memory"
	postgresRepo "minimalpost/internal/db/postgres"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	postRepo, closer, err := openStore(cfg)
	if err != nil {
		log.Fatal("Failed to open post store:", err)
	}
	defer func() { _ = closer.Close() }()

	postService := posts.NewPostService(postRepo)

	// Rate limiting per client IP; 0 disables it
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimitRequests > 0 {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
		defer rateLimiter.Stop()
	}

	r := routes.NewAPIRouter(postService, rateLimiter, cfg.AllowedOrigins())

	fmt.Printf("minimalpost API starting on port %d\n", cfg.Port)
	fmt.Printf("Store: %s\n", cfg.Store)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), r))
}

// openStore builds the repository selected by STORE
// The returned closer releases the underlying database
func openStore(cfg config.ServerConfig) (posts.Repository, io.Closer, error) {
	switch cfg.Store {
	case config.StorePostgres:
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}
		log.Println("Connected to posts database")

		if err := postgresRepo.Migrate(db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Println("Migrations completed successfully")

		return postgresRepo.NewPostRepository(db), db, nil

	case config.StoreBadger:
		db, err := badgerdb.Open(cfg.BadgerPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open badger at %s: %w", cfg.BadgerPath, err)
		}
		log.Printf("Opened badger store at %s", cfg.BadgerPath)

		logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("store", "badger")
		return badgerdb.NewPostRepository(db, logger), db, nil

	default:
		log.Println("Using in-memory post store; posts are lost on restart")
		return memory.NewPostRepository(), io.NopCloser(nil), nil
	}
}
