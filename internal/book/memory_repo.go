package book

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-process Repository. Identifiers have the same shape as
// the document store's so clients behave identically against either.
type MemoryRepo struct {
	mu    sync.RWMutex
	books map[string]Book
	order []string
}

// NewMemoryRepo creates an empty in-memory repository.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		books: make(map[string]Book),
	}
}

func parseMemoryID(id string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidID, id, err)
	}
	return oid.Hex(), nil
}

// List returns books in insertion order.
func (m *MemoryRepo) List(ctx context.Context) ([]Book, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Book, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.books[id])
	}
	return out, nil
}

func (m *MemoryRepo) Get(ctx context.Context, id string) (Book, error) {
	key, err := parseMemoryID(id)
	if err != nil {
		return Book{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.books[key]
	if !ok {
		return Book{}, ErrNotFound
	}
	return b, nil
}

func (m *MemoryRepo) Create(ctx context.Context, book *Book) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	book.ID = primitive.NewObjectID().Hex()
	m.books[book.ID] = *book
	m.order = append(m.order, book.ID)
	return nil
}

func (m *MemoryRepo) Update(ctx context.Context, id string, in UpdateInput) (Book, error) {
	key, err := parseMemoryID(id)
	if err != nil {
		return Book{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.books[key]
	if !ok {
		return Book{}, ErrNotFound
	}
	in.Apply(&b)
	m.books[key] = b
	return b, nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id string) error {
	key, err := parseMemoryID(id)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.books[key]; !ok {
		return ErrNotFound
	}
	delete(m.books, key)
	for i, existing := range m.order {
		if existing == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryRepo) Ping(ctx context.Context) error {
	return ctx.Err()
}
