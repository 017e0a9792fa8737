package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/bloggers-platform/domain"
)

type ReactionAggregator struct{ mock.Mock }

func (m *ReactionAggregator) Aggregate(ctx context.Context, subject domain.Subject, viewerID *int64) (domain.LikesInfo, error) {
	args := m.Called(ctx, subject, viewerID)
	return ret[domain.LikesInfo](args, 0), args.Error(1)
}

type ReactionUsecase struct{ mock.Mock }

func (m *ReactionUsecase) SetPostReaction(ctx context.Context, postID, userID int64, status domain.LikeStatus) error {
	return m.Called(ctx, postID, userID, status).Error(0)
}

func (m *ReactionUsecase) SetCommentReaction(ctx context.Context, commentID, userID int64, status domain.LikeStatus) error {
	return m.Called(ctx, commentID, userID, status).Error(0)
}

type PostUsecase struct{ mock.Mock }

func (m *PostUsecase) Fetch(ctx context.Context, q domain.Query, viewerID *int64) (domain.Page[domain.Post], error) {
	args := m.Called(ctx, q, viewerID)
	return ret[domain.Page[domain.Post]](args, 0), args.Error(1)
}

func (m *PostUsecase) FetchByBlog(ctx context.Context, blogID int64, q domain.Query, viewerID *int64) (domain.Page[domain.Post], error) {
	args := m.Called(ctx, blogID, q, viewerID)
	return ret[domain.Page[domain.Post]](args, 0), args.Error(1)
}

func (m *PostUsecase) GetByID(ctx context.Context, id int64, viewerID *int64) (domain.Post, error) {
	args := m.Called(ctx, id, viewerID)
	return ret[domain.Post](args, 0), args.Error(1)
}

func (m *PostUsecase) Store(ctx context.Context, ownerID int64, p *domain.Post) error {
	return m.Called(ctx, ownerID, p).Error(0)
}

func (m *PostUsecase) Update(ctx context.Context, ownerID int64, p *domain.Post) error {
	return m.Called(ctx, ownerID, p).Error(0)
}

func (m *PostUsecase) Delete(ctx context.Context, ownerID, blogID, postID int64) error {
	return m.Called(ctx, ownerID, blogID, postID).Error(0)
}

func (m *PostUsecase) InitBloomFilter(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type CommentUsecase struct{ mock.Mock }

func (m *CommentUsecase) Create(ctx context.Context, c *domain.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CommentUsecase) Update(ctx context.Context, userID, id int64, content string) error {
	return m.Called(ctx, userID, id, content).Error(0)
}

func (m *CommentUsecase) Delete(ctx context.Context, userID, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *CommentUsecase) GetByID(ctx context.Context, id int64, viewerID *int64) (domain.Comment, error) {
	args := m.Called(ctx, id, viewerID)
	return ret[domain.Comment](args, 0), args.Error(1)
}

func (m *CommentUsecase) FetchByPost(ctx context.Context, postID int64, q domain.Query, viewerID *int64) (domain.Page[domain.Comment], error) {
	args := m.Called(ctx, postID, q, viewerID)
	return ret[domain.Page[domain.Comment]](args, 0), args.Error(1)
}

func (m *CommentUsecase) FetchForBlogger(ctx context.Context, ownerID int64, q domain.Query) (domain.Page[domain.Comment], error) {
	args := m.Called(ctx, ownerID, q)
	return ret[domain.Page[domain.Comment]](args, 0), args.Error(1)
}

type AuthUsecase struct{ mock.Mock }

func (m *AuthUsecase) Register(ctx context.Context, login, email, password string) error {
	return m.Called(ctx, login, email, password).Error(0)
}

func (m *AuthUsecase) Login(ctx context.Context, loginOrEmail, password, ip, title string) (domain.TokenPair, error) {
	args := m.Called(ctx, loginOrEmail, password, ip, title)
	return ret[domain.TokenPair](args, 0), args.Error(1)
}

func (m *AuthUsecase) Refresh(ctx context.Context, refreshToken, ip string) (domain.TokenPair, error) {
	args := m.Called(ctx, refreshToken, ip)
	return ret[domain.TokenPair](args, 0), args.Error(1)
}

func (m *AuthUsecase) Logout(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

func (m *AuthUsecase) Me(ctx context.Context, userID int64) (domain.User, error) {
	args := m.Called(ctx, userID)
	return ret[domain.User](args, 0), args.Error(1)
}

func (m *AuthUsecase) Session(ctx context.Context, refreshToken string) (domain.DeviceSession, error) {
	args := m.Called(ctx, refreshToken)
	return ret[domain.DeviceSession](args, 0), args.Error(1)
}

type BanUsecase struct{ mock.Mock }

func (m *BanUsecase) BanUser(ctx context.Context, userID int64, isBanned bool, reason string) error {
	return m.Called(ctx, userID, isBanned, reason).Error(0)
}

func (m *BanUsecase) BanUserForBlog(ctx context.Context, ownerID, userID, blogID int64, isBanned bool, reason string) error {
	return m.Called(ctx, ownerID, userID, blogID, isBanned, reason).Error(0)
}

func (m *BanUsecase) FetchBlogBans(ctx context.Context, ownerID, blogID int64, q domain.Query) (domain.Page[domain.BlogBan], error) {
	args := m.Called(ctx, ownerID, blogID, q)
	return ret[domain.Page[domain.BlogBan]](args, 0), args.Error(1)
}

type DeviceUsecase struct{ mock.Mock }

func (m *DeviceUsecase) Fetch(ctx context.Context, userID int64) ([]domain.DeviceSession, error) {
	args := m.Called(ctx, userID)
	return ret[[]domain.DeviceSession](args, 0), args.Error(1)
}

func (m *DeviceUsecase) TerminateOthers(ctx context.Context, userID int64, currentDeviceID string) error {
	return m.Called(ctx, userID, currentDeviceID).Error(0)
}

func (m *DeviceUsecase) Terminate(ctx context.Context, userID int64, deviceID string) error {
	return m.Called(ctx, userID, deviceID).Error(0)
}

type BlogUsecase struct{ mock.Mock }

func (m *BlogUsecase) Fetch(ctx context.Context, q domain.Query) (domain.Page[domain.Blog], error) {
	args := m.Called(ctx, q)
	return ret[domain.Page[domain.Blog]](args, 0), args.Error(1)
}

func (m *BlogUsecase) FetchOwned(ctx context.Context, ownerID int64, q domain.Query) (domain.Page[domain.Blog], error) {
	args := m.Called(ctx, ownerID, q)
	return ret[domain.Page[domain.Blog]](args, 0), args.Error(1)
}

func (m *BlogUsecase) GetByID(ctx context.Context, id int64) (domain.Blog, error) {
	args := m.Called(ctx, id)
	return ret[domain.Blog](args, 0), args.Error(1)
}

func (m *BlogUsecase) Store(ctx context.Context, b *domain.Blog) error {
	return m.Called(ctx, b).Error(0)
}

func (m *BlogUsecase) Update(ctx context.Context, ownerID int64, b *domain.Blog) error {
	return m.Called(ctx, ownerID, b).Error(0)
}

func (m *BlogUsecase) Delete(ctx context.Context, ownerID, id int64) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

type UserUsecase struct{ mock.Mock }

func (m *UserUsecase) Create(ctx context.Context, login, email, password string) (domain.User, error) {
	args := m.Called(ctx, login, email, password)
	return ret[domain.User](args, 0), args.Error(1)
}

func (m *UserUsecase) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *UserUsecase) Fetch(ctx context.Context, q domain.Query) (domain.Page[domain.User], error) {
	args := m.Called(ctx, q)
	return ret[domain.Page[domain.User]](args, 0), args.Error(1)
}
