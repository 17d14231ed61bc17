package blog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bloglist/internal/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepo stores blogs in the blogs table created by db/migrations.
type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

// OpenPostgres creates a pool for dsn and pings it before returning.
func OpenPostgres(ctx context.Context, dsn string, timeout time.Duration) (*PostgresRepo, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	repo := NewPostgresRepo(pool, timeout)
	if err := repo.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return repo, nil
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) List(ctx context.Context) ([]entity.Blog, error) {
	const query = `
		SELECT id::text, title, author, url, likes, created_at, updated_at
		FROM blogs
		ORDER BY created_at, id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Blog{}
	for rows.Next() {
		var b entity.Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Create(ctx context.Context, b *entity.Blog) error {
	const query = `
		INSERT INTO blogs (title, author, url, likes)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text, created_at, updated_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query, b.Title, b.Author, b.URL, b.Likes).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *PostgresRepo) Update(ctx context.Context, id string, b entity.Blog) (entity.Blog, error) {
	if _, err := uuid.Parse(id); err != nil {
		return entity.Blog{}, ErrInvalidID
	}

	const query = `
		UPDATE blogs
		SET title = $2, author = $3, url = $4, likes = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING id::text, title, author, url, likes, created_at, updated_at`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var out entity.Blog
	err := r.db.QueryRow(timeoutCtx, query, id, b.Title, b.Author, b.URL, b.Likes).Scan(
		&out.ID, &out.Title, &out.Author, &out.URL, &out.Likes, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Blog{}, ErrNotFound
		}
		return entity.Blog{}, err
	}
	return out, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) DeleteAll(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, `DELETE FROM blogs`)
	return err
}

func (r *PostgresRepo) Ping(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.Ping(timeoutCtx)
}

func (r *PostgresRepo) Close(context.Context) error {
	r.db.Close()
	return nil
}
