package blog

import (
	"context"
	"testing"

	"bloglist/internal/entity"
	"bloglist/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(blogs []entity.Blog) []string {
	out := make([]string, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, b.Title)
	}
	return out
}

// seedReference replaces the store contents with the reference blogs and
// returns them with their store-assigned ids.
func seedReference(t *testing.T, repo Repository) []entity.Blog {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, repo.DeleteAll(ctx))

	blogs := testutil.ReferenceBlogs()
	for i := range blogs {
		blogs[i].ID = ""
		require.NoError(t, repo.Create(ctx, &blogs[i]))
		require.NotEmpty(t, blogs[i].ID)
	}
	return blogs
}

// runRepositoryContract checks the behaviour every Repository must share.
// missingID must be well formed for the store but not refer to any blog.
func runRepositoryContract(t *testing.T, repo Repository, missingID string) {
	ctx := context.Background()

	t.Run("list returns blogs in insertion order with unique ids", func(t *testing.T) {
		seeded := seedReference(t, repo)

		blogs, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, blogs, len(seeded))
		assert.Equal(t, titles(seeded), titles(blogs))

		ids := map[string]bool{}
		for _, b := range blogs {
			assert.False(t, ids[b.ID], "duplicate id %s", b.ID)
			ids[b.ID] = true
			assert.False(t, b.CreatedAt.IsZero())
		}
	})

	t.Run("create adds exactly one blog", func(t *testing.T) {
		seeded := seedReference(t, repo)

		b := entity.Blog{Title: "This is a new post", Author: "Tom Jerry", URL: "https://newpost.com", Likes: 1}
		require.NoError(t, repo.Create(ctx, &b))
		assert.NotEmpty(t, b.ID)

		blogs, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, blogs, len(seeded)+1)
		assert.Contains(t, titles(blogs), "This is a new post")
	})

	t.Run("delete removes exactly one blog", func(t *testing.T) {
		seeded := seedReference(t, repo)
		target := seeded[0]

		require.NoError(t, repo.Delete(ctx, target.ID))

		blogs, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, blogs, len(seeded)-1)
		assert.NotContains(t, titles(blogs), target.Title)

		assert.ErrorIs(t, repo.Delete(ctx, target.ID), ErrNotFound)
	})

	t.Run("update changes only the target and keeps its id", func(t *testing.T) {
		seeded := seedReference(t, repo)
		target := seeded[0]

		updated, err := repo.Update(ctx, target.ID, entity.Blog{
			Title:  "React patterns",
			Author: "Michael Chan",
			URL:    "thisisaurl",
			Likes:  10,
		})
		require.NoError(t, err)
		assert.Equal(t, target.ID, updated.ID)
		assert.Equal(t, "thisisaurl", updated.URL)
		assert.Equal(t, 10, updated.Likes)

		blogs, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, blogs, len(seeded))
		assert.Equal(t, target.ID, blogs[0].ID)
		assert.Equal(t, 10, blogs[0].Likes)
		for i := 1; i < len(blogs); i++ {
			assert.Equal(t, seeded[i].ID, blogs[i].ID)
			assert.Equal(t, seeded[i].Likes, blogs[i].Likes)
			assert.Equal(t, seeded[i].URL, blogs[i].URL)
		}
	})

	t.Run("unknown and malformed ids", func(t *testing.T) {
		seedReference(t, repo)

		_, err := repo.Update(ctx, missingID, entity.Blog{Title: "t", Author: "a", URL: "u"})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, missingID), ErrNotFound)

		_, err = repo.Update(ctx, "not-an-id", entity.Blog{Title: "t", Author: "a", URL: "u"})
		assert.ErrorIs(t, err, ErrInvalidID)
		assert.ErrorIs(t, repo.Delete(ctx, "not-an-id"), ErrInvalidID)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, repo.Ping(ctx))
	})
}
