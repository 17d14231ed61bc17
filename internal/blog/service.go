package blog

import (
	"context"
	"fmt"
	"strings"

	"bloglist/internal/entity"
	"bloglist/internal/listhelper"
)

// Service provides blog business logic on top of a Repository.
type Service struct {
	repo Repository
}

// NewService creates a new blog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every stored blog.
func (s *Service) List(ctx context.Context) ([]entity.Blog, error) {
	blogs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if blogs == nil {
		blogs = []entity.Blog{}
	}
	return blogs, nil
}

// Create stores a new blog. Likes default to 0 when absent.
func (s *Service) Create(ctx context.Context, in Input) (entity.Blog, error) {
	b, err := fromInput(in)
	if err != nil {
		return entity.Blog{}, err
	}
	if err := s.repo.Create(ctx, &b); err != nil {
		return entity.Blog{}, err
	}
	return b, nil
}

// Update replaces the writable fields of the blog with the given id.
func (s *Service) Update(ctx context.Context, id string, in Input) (entity.Blog, error) {
	b, err := fromInput(in)
	if err != nil {
		return entity.Blog{}, err
	}
	return s.repo.Update(ctx, id, b)
}

// Delete removes the blog with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Stats aggregates over the full collection.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	blogs, err := s.repo.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	st := Stats{
		Count:      len(blogs),
		TotalLikes: listhelper.TotalLikes(blogs),
	}
	if fav, ok := listhelper.FavoriteBlog(blogs); ok {
		st.Favorite = &fav
	}
	return st, nil
}

// Ping reports whether the store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func fromInput(in Input) (entity.Blog, error) {
	b := entity.Blog{
		Title:  strings.TrimSpace(in.Title),
		Author: strings.TrimSpace(in.Author),
		URL:    strings.TrimSpace(in.URL),
	}
	if b.Title == "" || b.Author == "" || b.URL == "" {
		return entity.Blog{}, fmt.Errorf("%w: title, author and url are required", ErrInvalidInput)
	}
	if in.Likes != nil {
		if *in.Likes < 0 {
			return entity.Blog{}, fmt.Errorf("%w: likes must not be negative", ErrInvalidInput)
		}
		if *in.Likes > MaxLikes {
			return entity.Blog{}, fmt.Errorf("%w: likes must not exceed %d", ErrInvalidInput, MaxLikes)
		}
		b.Likes = *in.Likes
	}
	return b, nil
}
