package blog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bloglist/internal/entity"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS blogs (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL,
	author     TEXT NOT NULL,
	url        TEXT NOT NULL,
	likes      INTEGER NOT NULL DEFAULT 0 CHECK (likes >= 0),
	created_at TEXT NOT NULL,
	updated_at TEXT NOT NULL
);`

// SQLiteRepo stores blogs in an embedded SQLite database file.
type SQLiteRepo struct {
	db      *sql.DB
	timeout time.Duration
}

// OpenSQLite opens (or creates) the database at path and applies the schema.
func OpenSQLite(ctx context.Context, path string, timeout time.Duration) (*SQLiteRepo, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// every connection to :memory: is its own database
	db.SetMaxOpenConns(1)

	repo := &SQLiteRepo{db: db, timeout: timeout}
	if err := repo.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply sqlite schema: %w", err)
	}
	return repo, nil
}

func (r *SQLiteRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *SQLiteRepo) List(ctx context.Context) ([]entity.Blog, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(timeoutCtx, `
		SELECT id, title, author, url, likes, created_at, updated_at
		FROM blogs
		ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entity.Blog{}
	for rows.Next() {
		b, err := scanSQLiteBlog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *SQLiteRepo) Create(ctx context.Context, b *entity.Blog) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	now := time.Now().UTC()
	id := uuid.NewString()
	_, err := r.db.ExecContext(timeoutCtx, `
		INSERT INTO blogs (id, title, author, url, likes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, b.Title, b.Author, b.URL, b.Likes, formatTime(now), formatTime(now))
	if err != nil {
		return err
	}
	b.ID = id
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (r *SQLiteRepo) Update(ctx context.Context, id string, b entity.Blog) (entity.Blog, error) {
	if _, err := uuid.Parse(id); err != nil {
		return entity.Blog{}, ErrInvalidID
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(timeoutCtx, `
		UPDATE blogs SET title = ?, author = ?, url = ?, likes = ?, updated_at = ?
		WHERE id = ?`,
		b.Title, b.Author, b.URL, b.Likes, formatTime(time.Now().UTC()), id)
	if err != nil {
		return entity.Blog{}, err
	}
	if n, err := res.RowsAffected(); err != nil {
		return entity.Blog{}, err
	} else if n == 0 {
		return entity.Blog{}, ErrNotFound
	}

	row := r.db.QueryRowContext(timeoutCtx, `
		SELECT id, title, author, url, likes, created_at, updated_at
		FROM blogs WHERE id = ?`, id)
	return scanSQLiteBlog(row)
}

func (r *SQLiteRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(timeoutCtx, `DELETE FROM blogs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteRepo) DeleteAll(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.ExecContext(timeoutCtx, `DELETE FROM blogs`)
	return err
}

func (r *SQLiteRepo) Ping(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.PingContext(timeoutCtx)
}

func (r *SQLiteRepo) Close(context.Context) error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSQLiteBlog(row rowScanner) (entity.Blog, error) {
	var (
		b                    entity.Blog
		createdAt, updatedAt string
	)
	if err := row.Scan(&b.ID, &b.Title, &b.Author, &b.URL, &b.Likes, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Blog{}, ErrNotFound
		}
		return entity.Blog{}, err
	}

	var err error
	if b.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return entity.Blog{}, fmt.Errorf("parse created_at: %w", err)
	}
	if b.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return entity.Blog{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return b, nil
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
