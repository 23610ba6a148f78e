package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"minimalpost/internal/api/routes"
	"minimalpost/internal/config"
	"minimalpost/internal/journal"
)

func main() {
	cfg, err := config.LoadJournal()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	client := journal.NewClient(cfg.APIURL, &http.Client{Timeout: cfg.HTTPTimeout})

	// Flash messages for the page, plus a log line per notification
	feed := journal.NewFeed(20)
	logNotifier := journal.NotifierFunc(func(n journal.Notification) {
		slog.Info("journal notification", "kind", n.Kind, "message", n.Message)
	})

	controller := journal.NewController(client, journal.Multi(feed, logNotifier), journal.Options{
		ClearEditOnFailure: cfg.ClearEditOnFailure,
	})

	// Load once; on failure the fallback entries are shown and the page still serves
	if err := controller.LoadInitialPosts(context.Background()); err != nil {
		log.Printf("[JOURNAL] Initial load from %s failed, showing fallback entries", client.BaseURL())
	}

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)

	routes.RegisterWebRoutes(r, controller, feed)

	fmt.Printf("minimalpost journal starting on port %d\n", cfg.Port)
	fmt.Printf("API URL: %s\n", client.BaseURL())
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), r))
}
