// Command seed adds a small sample reading log to the configured store.
package main

import (
	"context"
	"log"
	"time"

	"readinglog/internal/app"
	"readinglog/internal/book"
	"readinglog/internal/config"
	"readinglog/internal/logger"

	"go.uber.org/zap"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, "console")
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := app.OpenStore(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("Failed to open store", zap.Error(err))
	}
	defer store.Close(context.Background())

	service := book.NewService(store.Books)
	if err := service.Ready(ctx); err != nil {
		zl.Fatal("Store is not reachable", zap.Error(err))
	}

	zl.Info("Seeding books", zap.Int("count", len(sampleBooks())))
	for _, in := range sampleBooks() {
		b, err := service.Create(ctx, in)
		if err != nil {
			zl.Fatal("Failed to insert book", zap.String("title", in.Title), zap.Error(err))
		}
		zl.Info("Inserted book", zap.String("id", b.ID), zap.String("title", b.Title))
	}
}

func sampleBooks() []book.CreateInput {
	entry := func(title, first, last, genre string, published book.Date, pages int, read bool) book.CreateInput {
		return book.CreateInput{
			Title:           title,
			AuthorFirstName: first,
			AuthorLastName:  last,
			Genre:           genre,
			PublishedDate:   &published,
			Pages:           &pages,
			ReadStatus:      &read,
		}
	}

	return []book.CreateInput{
		entry("Dune", "Frank", "Herbert", "SciFi", book.NewDate(1965, time.August, 1), 412, true),
		entry("The Left Hand of Darkness", "Ursula", "Le Guin", "SciFi", book.NewDate(1969, time.March, 1), 304, false),
		entry("Beloved", "Toni", "Morrison", "Fiction", book.NewDate(1987, time.September, 2), 324, false),
		entry("The Name of the Rose", "Umberto", "Eco", "Mystery", book.NewDate(1980, time.January, 1), 536, true),
		entry("A Brief History of Time", "Stephen", "Hawking", "Science", book.NewDate(1988, time.April, 1), 256, false),
	}
}
