package blog_test

import (
	"context"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/domain/mocks"
	"github.com/Guyuepp/bloggers-platform/internal/usecase/blog"
)

func TestFetchOwned(t *testing.T) {
	repo := new(mocks.BlogRepository)
	q := domain.Query{PageNumber: 1, PageSize: 10}
	owner := int64(4)
	repo.On("Fetch", mock.Anything, q, &owner).Return(domain.NewPage(q, 1, []domain.Blog{{ID: 1, OwnerID: owner}}), nil).Once()

	res, err := blog.NewService(repo).FetchOwned(context.TODO(), owner, q)

	require.NoError(t, err)
	assert.Len(t, res.Items, 1)
	repo.AssertExpectations(t)
}

func TestUpdate(t *testing.T) {
	var b domain.Blog
	require.NoError(t, faker.FakeData(&b))
	b.OwnerID = 4

	t.Run("owner", func(t *testing.T) {
		repo := new(mocks.BlogRepository)
		repo.On("GetByID", mock.Anything, b.ID).Return(b, nil).Once()
		repo.On("Update", mock.Anything, &b).Return(nil).Once()

		err := blog.NewService(repo).Update(context.TODO(), 4, &b)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("not owner", func(t *testing.T) {
		repo := new(mocks.BlogRepository)
		repo.On("GetByID", mock.Anything, b.ID).Return(b, nil).Once()

		err := blog.NewService(repo).Update(context.TODO(), 5, &b)

		assert.ErrorIs(t, err, domain.ErrForbidden)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDelete(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		repo := new(mocks.BlogRepository)
		repo.On("GetByID", mock.Anything, int64(3)).Return(domain.Blog{}, domain.ErrNotFound).Once()

		err := blog.NewService(repo).Delete(context.TODO(), 4, 3)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("owner", func(t *testing.T) {
		repo := new(mocks.BlogRepository)
		repo.On("GetByID", mock.Anything, int64(3)).Return(domain.Blog{ID: 3, OwnerID: 4}, nil).Once()
		repo.On("Delete", mock.Anything, int64(3)).Return(nil).Once()

		assert.NoError(t, blog.NewService(repo).Delete(context.TODO(), 4, 3))
		repo.AssertExpectations(t)
	})
}
