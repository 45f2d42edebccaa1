package book

import (
	"context"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every book in the reading log.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []Book{}
	}
	return books, nil
}

// Get returns a book by its identifier.
func (s *Service) Get(ctx context.Context, id string) (Book, error) {
	return s.repo.Get(ctx, id)
}

// Create persists a new book and returns it with its assigned identifier.
func (s *Service) Create(ctx context.Context, in CreateInput) (Book, error) {
	b := in.Book()
	if err := s.repo.Create(ctx, &b); err != nil {
		return Book{}, err
	}
	return b, nil
}

// Update merges the provided fields onto an existing book.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Book, error) {
	if in.Empty() {
		return s.repo.Get(ctx, id)
	}
	return s.repo.Update(ctx, id, in)
}

// Delete removes a book.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Ready reports whether the underlying store is reachable.
func (s *Service) Ready(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
