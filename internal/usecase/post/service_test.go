package post_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/domain/mocks"
	"github.com/Guyuepp/bloggers-platform/internal/usecase/post"
)

type deps struct {
	posts *mocks.PostRepository
	blogs *mocks.BlogRepository
	bloom *mocks.BloomRepository
	agg   *mocks.ReactionAggregator
}

func newService() (*post.Service, deps) {
	d := deps{
		posts: new(mocks.PostRepository),
		blogs: new(mocks.BlogRepository),
		bloom: new(mocks.BloomRepository),
		agg:   new(mocks.ReactionAggregator),
	}
	return post.NewService(d.posts, d.blogs, d.bloom, d.agg), d
}

func TestGetByID(t *testing.T) {
	viewer := int64(3)
	info := domain.LikesInfo{LikesCount: 1, MyStatus: domain.LikeStatusLike, NewestLikes: []domain.LikeDetails{{UserID: 3, Login: "bob"}}}

	t.Run("success", func(t *testing.T) {
		s, d := newService()
		p := domain.Post{ID: 1, BlogID: 2, Title: faker.Word()}
		d.bloom.On("Exists", mock.Anything, int64(1)).Return(true, nil).Once()
		d.posts.On("GetByID", mock.Anything, int64(1)).Return(p, nil).Once()
		d.agg.On("Aggregate", mock.Anything, p.Subject(), &viewer).Return(info, nil).Once()

		res, err := s.GetByID(context.TODO(), 1, &viewer)

		require.NoError(t, err)
		assert.Equal(t, p.Title, res.Title)
		assert.Equal(t, info, res.LikesInfo)
	})

	t.Run("rejected by bloom filter", func(t *testing.T) {
		s, d := newService()
		d.bloom.On("Exists", mock.Anything, int64(1)).Return(false, nil).Once()

		_, err := s.GetByID(context.TODO(), 1, nil)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		d.posts.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("bloom filter down", func(t *testing.T) {
		s, d := newService()
		p := domain.Post{ID: 1, BlogID: 2}
		d.bloom.On("Exists", mock.Anything, int64(1)).Return(false, errors.New("redis down")).Once()
		d.posts.On("GetByID", mock.Anything, int64(1)).Return(p, nil).Once()
		d.agg.On("Aggregate", mock.Anything, p.Subject(), (*int64)(nil)).Return(domain.LikesInfo{MyStatus: domain.LikeStatusNone}, nil).Once()

		_, err := s.GetByID(context.TODO(), 1, nil)

		assert.NoError(t, err)
	})

	t.Run("reactions unavailable", func(t *testing.T) {
		s, d := newService()
		p := domain.Post{ID: 1, BlogID: 2}
		d.bloom.On("Exists", mock.Anything, int64(1)).Return(true, nil).Once()
		d.posts.On("GetByID", mock.Anything, int64(1)).Return(p, nil).Once()
		d.agg.On("Aggregate", mock.Anything, p.Subject(), (*int64)(nil)).Return(domain.LikesInfo{}, domain.ErrDataUnavailable).Once()

		_, err := s.GetByID(context.TODO(), 1, nil)

		assert.ErrorIs(t, err, domain.ErrDataUnavailable)
	})
}

func TestFetchByBlog(t *testing.T) {
	q := domain.Query{PageNumber: 1, PageSize: 10, SortBy: "createdAt", SortDirection: domain.SortDesc}

	t.Run("success", func(t *testing.T) {
		s, d := newService()
		blogID := int64(2)
		page := domain.NewPage(q, 2, []domain.Post{{ID: 1, BlogID: 2}, {ID: 2, BlogID: 2}})
		d.blogs.On("GetByID", mock.Anything, blogID).Return(domain.Blog{ID: blogID}, nil).Once()
		d.posts.On("Fetch", mock.Anything, q, &blogID).Return(page, nil).Once()
		d.agg.On("Aggregate", mock.Anything, mock.Anything, (*int64)(nil)).Return(domain.LikesInfo{LikesCount: 7}, nil).Twice()

		res, err := s.FetchByBlog(context.TODO(), blogID, q, nil)

		require.NoError(t, err)
		assert.Equal(t, int64(2), res.TotalCount)
		assert.Equal(t, int64(1), res.PagesCount)
		for _, p := range res.Items {
			assert.Equal(t, int64(7), p.LikesInfo.LikesCount)
		}
		d.agg.AssertExpectations(t)
	})

	t.Run("blog not found", func(t *testing.T) {
		s, d := newService()
		d.blogs.On("GetByID", mock.Anything, int64(2)).Return(domain.Blog{}, domain.ErrNotFound).Once()

		_, err := s.FetchByBlog(context.TODO(), 2, q, nil)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		d.posts.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStore(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s, d := newService()
		p := &domain.Post{Title: "title", BlogID: 2}
		d.blogs.On("GetByID", mock.Anything, int64(2)).Return(domain.Blog{ID: 2, OwnerID: 5, Name: "golang"}, nil).Once()
		d.posts.On("Store", mock.Anything, p).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Post).ID = 11
		}).Return(nil).Once()
		d.bloom.On("Add", mock.Anything, int64(11)).Return(nil).Once()

		err := s.Store(context.TODO(), 5, p)

		require.NoError(t, err)
		assert.Equal(t, int64(11), p.ID)
		assert.Equal(t, "golang", p.BlogName)
		assert.Equal(t, domain.LikeStatusNone, p.LikesInfo.MyStatus)
		assert.NotNil(t, p.LikesInfo.NewestLikes)
		d.bloom.AssertExpectations(t)
	})

	t.Run("bloom failure does not fail the write", func(t *testing.T) {
		s, d := newService()
		p := &domain.Post{BlogID: 2}
		d.blogs.On("GetByID", mock.Anything, int64(2)).Return(domain.Blog{ID: 2, OwnerID: 5}, nil).Once()
		d.posts.On("Store", mock.Anything, p).Return(nil).Once()
		d.bloom.On("Add", mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

		assert.NoError(t, s.Store(context.TODO(), 5, p))
	})

	t.Run("not the owner", func(t *testing.T) {
		s, d := newService()
		d.blogs.On("GetByID", mock.Anything, int64(2)).Return(domain.Blog{ID: 2, OwnerID: 6}, nil).Once()

		err := s.Store(context.TODO(), 5, &domain.Post{BlogID: 2})

		assert.ErrorIs(t, err, domain.ErrForbidden)
		d.posts.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	})
}

func TestDelete(t *testing.T) {
	t.Run("post of another blog", func(t *testing.T) {
		s, d := newService()
		d.blogs.On("GetByID", mock.Anything, int64(2)).Return(domain.Blog{ID: 2, OwnerID: 5}, nil).Once()
		d.bloom.On("Exists", mock.Anything, int64(9)).Return(true, nil).Once()
		d.posts.On("GetByID", mock.Anything, int64(9)).Return(domain.Post{ID: 9, BlogID: 3}, nil).Once()

		err := s.Delete(context.TODO(), 5, 2, 9)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		d.posts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("success", func(t *testing.T) {
		s, d := newService()
		d.blogs.On("GetByID", mock.Anything, int64(2)).Return(domain.Blog{ID: 2, OwnerID: 5}, nil).Once()
		d.bloom.On("Exists", mock.Anything, int64(9)).Return(true, nil).Once()
		d.posts.On("GetByID", mock.Anything, int64(9)).Return(domain.Post{ID: 9, BlogID: 2}, nil).Once()
		d.posts.On("Delete", mock.Anything, int64(9)).Return(nil).Once()

		assert.NoError(t, s.Delete(context.TODO(), 5, 2, 9))
		d.posts.AssertExpectations(t)
	})
}

func TestInitBloomFilter(t *testing.T) {
	s, d := newService()
	first := make([]int64, 1000)
	for i := range first {
		first[i] = int64(i + 1)
	}
	d.posts.On("FetchIDs", mock.Anything, int64(0), int64(1000)).Return(first, nil).Once()
	d.posts.On("FetchIDs", mock.Anything, int64(1000), int64(1000)).Return([]int64{1001, 1002}, nil).Once()
	d.posts.On("FetchIDs", mock.Anything, int64(1002), int64(1000)).Return([]int64{}, nil).Once()
	d.bloom.On("BulkAdd", mock.Anything, first).Return(nil).Once()
	d.bloom.On("BulkAdd", mock.Anything, []int64{1001, 1002}).Return(nil).Once()

	err := s.InitBloomFilter(context.TODO())

	require.NoError(t, err)
	d.posts.AssertExpectations(t)
	d.bloom.AssertExpectations(t)
}
