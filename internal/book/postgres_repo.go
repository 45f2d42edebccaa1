package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookColumns = `id, title, author_first_name, author_last_name, genre, published_date, pages, read_status`

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func parseUUID(id string) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q: %v", ErrInvalidID, id, err)
	}
	return u, nil
}

func scanBook(row pgx.Row) (Book, error) {
	var (
		b         Book
		id        uuid.UUID
		published time.Time
	)
	if err := row.Scan(
		&id, &b.Title, &b.AuthorFirstName, &b.AuthorLastName, &b.Genre,
		&published, &b.Pages, &b.ReadStatus,
	); err != nil {
		return Book{}, err
	}
	b.ID = id.String()
	b.PublishedDate = DateOf(published)
	return b, nil
}

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, `SELECT `+bookColumns+` FROM books ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Get(ctx context.Context, id string) (Book, error) {
	u, err := parseUUID(id)
	if err != nil {
		return Book{}, err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	b, err := scanBook(r.db.QueryRow(timeoutCtx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, u))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("get book %s: %w", id, err)
	}
	return b, nil
}

func (r *PostgresRepo) Create(ctx context.Context, book *Book) error {
	const sql = `
		INSERT INTO books (id, title, author_first_name, author_last_name, genre,
		                   published_date, pages, read_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	id := uuid.New()
	_, err := r.db.Exec(timeoutCtx, sql,
		id, book.Title, book.AuthorFirstName, book.AuthorLastName, book.Genre,
		book.PublishedDate.Time, book.Pages, book.ReadStatus,
	)
	if err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	book.ID = id.String()
	return nil
}

func (r *PostgresRepo) Update(ctx context.Context, id string, in UpdateInput) (Book, error) {
	u, err := parseUUID(id)
	if err != nil {
		return Book{}, err
	}

	sets := []string{}
	args := []any{}
	argn := 1
	add := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argn))
		args = append(args, value)
		argn++
	}

	if in.Title != nil {
		add("title", *in.Title)
	}
	if in.AuthorFirstName != nil {
		add("author_first_name", *in.AuthorFirstName)
	}
	if in.AuthorLastName != nil {
		add("author_last_name", *in.AuthorLastName)
	}
	if in.Genre != nil {
		add("genre", *in.Genre)
	}
	if in.PublishedDate != nil {
		add("published_date", in.PublishedDate.Time)
	}
	if in.Pages != nil {
		add("pages", *in.Pages)
	}
	if in.ReadStatus != nil {
		add("read_status", *in.ReadStatus)
	}
	if len(sets) == 0 {
		return r.Get(ctx, id)
	}
	sets = append(sets, "updated_at = NOW()")

	sql := fmt.Sprintf(`UPDATE books SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), argn, bookColumns)
	args = append(args, u)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	b, err := scanBook(r.db.QueryRow(timeoutCtx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("update book %s: %w", id, err)
	}
	return b, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	u, err := parseUUID(id)
	if err != nil {
		return err
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM books WHERE id = $1`, u)
	if err != nil {
		return fmt.Errorf("delete book %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Ping(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.Ping(timeoutCtx)
}
