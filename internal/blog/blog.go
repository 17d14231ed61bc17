package blog

import (
	"errors"
	"math"

	"bloglist/internal/entity"
)

var (
	// ErrNotFound is returned when no blog has the requested id.
	ErrNotFound = errors.New("blog not found")
	// ErrInvalidID is returned when an id cannot be parsed by the store.
	ErrInvalidID = errors.New("malformed blog id")
	// ErrInvalidInput is returned for writes that break a field constraint.
	ErrInvalidInput = errors.New("invalid blog input")
)

// MaxLikes is the largest like count every store can hold.
const MaxLikes = math.MaxInt32

// Input is the writable part of a blog, as accepted by create and update.
type Input struct {
	Title  string `json:"title" validate:"required,notblank"`
	Author string `json:"author" validate:"required,notblank"`
	URL    string `json:"url" validate:"required,notblank"`
	Likes  *int   `json:"likes" validate:"omitempty,gte=0,lte=2147483647"`
}

// Stats summarizes the whole collection.
type Stats struct {
	Count      int          `json:"count"`
	TotalLikes int          `json:"total_likes"`
	Favorite   *entity.Blog `json:"favorite"`
}
