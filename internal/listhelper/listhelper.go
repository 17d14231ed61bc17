// Package listhelper computes summary statistics over an in-memory list of blogs.
package listhelper

import (
	"math"

	"bloglist/internal/entity"
)

// Dummy always returns 1.
func Dummy(blogs []entity.Blog) int {
	return 1
}

// TotalLikes returns the sum of likes across all blogs. An empty list yields 0.
// The sum saturates at math.MaxInt instead of wrapping.
func TotalLikes(blogs []entity.Blog) int {
	total := 0
	for _, b := range blogs {
		if b.Likes > 0 && total > math.MaxInt-b.Likes {
			return math.MaxInt
		}
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes. On a tie the earliest blog wins.
// The running maximum starts at 0, so a blog only qualifies with at least one like;
// ok is false when the list is empty or no blog has a positive like count.
func FavoriteBlog(blogs []entity.Blog) (favorite entity.Blog, ok bool) {
	mostLikes := 0
	for _, b := range blogs {
		if b.Likes > mostLikes {
			favorite = b
			mostLikes = b.Likes
			ok = true
		}
	}
	return favorite, ok
}
