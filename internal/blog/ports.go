package blog

import (
	"context"

	"bloglist/internal/entity"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=blog

// Repository defines the contract for blog storage. Implementations own their
// connection and release it in Close.
type Repository interface {
	List(ctx context.Context) ([]entity.Blog, error)
	Create(ctx context.Context, b *entity.Blog) error
	Update(ctx context.Context, id string, b entity.Blog) (entity.Blog, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
