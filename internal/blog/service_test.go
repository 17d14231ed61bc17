package blog

import (
	"context"
	"errors"
	"testing"

	"bloglist/internal/entity"
	"bloglist/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("nil becomes empty", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(nil, nil)

		blogs, err := service.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, blogs)
		assert.Empty(t, blogs)
	})

	t.Run("error", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := service.List(context.Background())
		assert.Error(t, err)
	})
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("likes default to zero", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *entity.Blog) error {
			assert.Equal(t, 0, b.Likes)
			assert.Equal(t, "Title", b.Title)
			b.ID = "new-id"
			return nil
		})

		created, err := service.Create(context.Background(), Input{Title: " Title ", Author: "Author", URL: "http://x"})
		require.NoError(t, err)
		assert.Equal(t, "new-id", created.ID)
		assert.Equal(t, "Title", created.Title)
	})

	t.Run("explicit likes kept", func(t *testing.T) {
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *entity.Blog) error {
			b.ID = "id-2"
			return nil
		})

		created, err := service.Create(context.Background(), Input{Title: "T", Author: "A", URL: "u", Likes: intPtr(4)})
		require.NoError(t, err)
		assert.Equal(t, 4, created.Likes)
	})

	t.Run("negative likes rejected", func(t *testing.T) {
		_, err := service.Create(context.Background(), Input{Title: "T", Author: "A", URL: "u", Likes: intPtr(-1)})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("likes above store range rejected", func(t *testing.T) {
		_, err := service.Create(context.Background(), Input{Title: "T", Author: "A", URL: "u", Likes: intPtr(MaxLikes + 1)})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		_, err := service.Create(context.Background(), Input{Title: "T", Author: " "})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	want := entity.Blog{Title: "React patterns", Author: "Michael Chan", URL: "thisisaurl", Likes: 10}
	mockRepo.EXPECT().Update(gomock.Any(), "abc", want).Return(entity.Blog{ID: "abc", Title: want.Title, Likes: 10}, nil)

	updated, err := service.Update(context.Background(), "abc", Input{
		Title: "React patterns", Author: "Michael Chan", URL: "thisisaurl", Likes: intPtr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", updated.ID)
	assert.Equal(t, 10, updated.Likes)

	mockRepo.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).Return(entity.Blog{}, ErrNotFound)
	_, err = service.Update(context.Background(), "missing", Input{Title: "T", Author: "A", URL: "u"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	t.Run("reference blogs", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(testutil.ReferenceBlogs(), nil)

		st, err := service.Stats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 6, st.Count)
		assert.Equal(t, 36, st.TotalLikes)
		require.NotNil(t, st.Favorite)
		assert.Equal(t, "Canonical string reduction", st.Favorite.Title)
	})

	t.Run("empty collection has no favorite", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return([]entity.Blog{}, nil)

		st, err := service.Stats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, st.Count)
		assert.Equal(t, 0, st.TotalLikes)
		assert.Nil(t, st.Favorite)
	})
}
