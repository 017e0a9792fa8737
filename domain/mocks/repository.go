package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/bloggers-platform/domain"
)

type ReactionRepository struct{ mock.Mock }

func (m *ReactionRepository) Set(ctx context.Context, r *domain.Reaction) error {
	return m.Called(ctx, r).Error(0)
}

func (m *ReactionRepository) Get(ctx context.Context, subjectType domain.SubjectType, subjectID, userID int64) (domain.LikeStatus, error) {
	args := m.Called(ctx, subjectType, subjectID, userID)
	return ret[domain.LikeStatus](args, 0), args.Error(1)
}

func (m *ReactionRepository) ListBySubject(ctx context.Context, subjectType domain.SubjectType, subjectID int64) ([]domain.Reaction, error) {
	args := m.Called(ctx, subjectType, subjectID)
	return ret[[]domain.Reaction](args, 0), args.Error(1)
}

type BanRepository struct{ mock.Mock }

func (m *BanRepository) IsGloballyBanned(ctx context.Context, userID int64) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *BanRepository) IsBlogBanned(ctx context.Context, userID, blogID int64) (bool, error) {
	args := m.Called(ctx, userID, blogID)
	return args.Bool(0), args.Error(1)
}

func (m *BanRepository) ExcludedAmong(ctx context.Context, blogID int64, userIDs []int64) (map[int64]bool, error) {
	args := m.Called(ctx, blogID, userIDs)
	return ret[map[int64]bool](args, 0), args.Error(1)
}

func (m *BanRepository) SetGlobalBan(ctx context.Context, b domain.GlobalBan) error {
	return m.Called(ctx, b).Error(0)
}

func (m *BanRepository) SetBlogBan(ctx context.Context, b domain.BlogBan) error {
	return m.Called(ctx, b).Error(0)
}

func (m *BanRepository) FetchBlogBans(ctx context.Context, blogID int64, q domain.Query) (domain.Page[domain.BlogBan], error) {
	args := m.Called(ctx, blogID, q)
	return ret[domain.Page[domain.BlogBan]](args, 0), args.Error(1)
}

type UserRepository struct{ mock.Mock }

func (m *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	args := m.Called(ctx, id)
	return ret[domain.User](args, 0), args.Error(1)
}

func (m *UserRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	args := m.Called(ctx, ids)
	return ret[[]domain.User](args, 0), args.Error(1)
}

func (m *UserRepository) GetByLoginOrEmail(ctx context.Context, loginOrEmail string) (domain.User, error) {
	args := m.Called(ctx, loginOrEmail)
	return ret[domain.User](args, 0), args.Error(1)
}

func (m *UserRepository) Insert(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *UserRepository) Fetch(ctx context.Context, q domain.Query) (domain.Page[domain.User], error) {
	args := m.Called(ctx, q)
	return ret[domain.Page[domain.User]](args, 0), args.Error(1)
}

type BlogRepository struct{ mock.Mock }

func (m *BlogRepository) GetByID(ctx context.Context, id int64) (domain.Blog, error) {
	args := m.Called(ctx, id)
	return ret[domain.Blog](args, 0), args.Error(1)
}

func (m *BlogRepository) Fetch(ctx context.Context, q domain.Query, ownerID *int64) (domain.Page[domain.Blog], error) {
	args := m.Called(ctx, q, ownerID)
	return ret[domain.Page[domain.Blog]](args, 0), args.Error(1)
}

func (m *BlogRepository) Store(ctx context.Context, b *domain.Blog) error {
	return m.Called(ctx, b).Error(0)
}

func (m *BlogRepository) Update(ctx context.Context, b *domain.Blog) error {
	return m.Called(ctx, b).Error(0)
}

func (m *BlogRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type PostRepository struct{ mock.Mock }

func (m *PostRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	args := m.Called(ctx, id)
	return ret[domain.Post](args, 0), args.Error(1)
}

func (m *PostRepository) Fetch(ctx context.Context, q domain.Query, blogID *int64) (domain.Page[domain.Post], error) {
	args := m.Called(ctx, q, blogID)
	return ret[domain.Page[domain.Post]](args, 0), args.Error(1)
}

func (m *PostRepository) Store(ctx context.Context, p *domain.Post) error {
	return m.Called(ctx, p).Error(0)
}

func (m *PostRepository) Update(ctx context.Context, p *domain.Post) error {
	return m.Called(ctx, p).Error(0)
}

func (m *PostRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *PostRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	args := m.Called(ctx, cursor, limit)
	return ret[[]int64](args, 0), args.Error(1)
}

type CommentRepository struct{ mock.Mock }

func (m *CommentRepository) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	args := m.Called(ctx, id)
	return ret[domain.Comment](args, 0), args.Error(1)
}

func (m *CommentRepository) FetchByPost(ctx context.Context, postID int64, q domain.Query) (domain.Page[domain.Comment], error) {
	args := m.Called(ctx, postID, q)
	return ret[domain.Page[domain.Comment]](args, 0), args.Error(1)
}

func (m *CommentRepository) FetchByBlogOwner(ctx context.Context, ownerID int64, q domain.Query) (domain.Page[domain.Comment], error) {
	args := m.Called(ctx, ownerID, q)
	return ret[domain.Page[domain.Comment]](args, 0), args.Error(1)
}

func (m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CommentRepository) Update(ctx context.Context, c *domain.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CommentRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type DeviceRepository struct{ mock.Mock }

func (m *DeviceRepository) Store(ctx context.Context, s *domain.DeviceSession) error {
	return m.Called(ctx, s).Error(0)
}

func (m *DeviceRepository) GetByDeviceID(ctx context.Context, deviceID string) (domain.DeviceSession, error) {
	args := m.Called(ctx, deviceID)
	return ret[domain.DeviceSession](args, 0), args.Error(1)
}

func (m *DeviceRepository) Touch(ctx context.Context, deviceID, ip string, lastActive, expiresAt time.Time) error {
	return m.Called(ctx, deviceID, ip, lastActive, expiresAt).Error(0)
}

func (m *DeviceRepository) FetchByUser(ctx context.Context, userID int64) ([]domain.DeviceSession, error) {
	args := m.Called(ctx, userID)
	return ret[[]domain.DeviceSession](args, 0), args.Error(1)
}

func (m *DeviceRepository) Delete(ctx context.Context, deviceID string) error {
	return m.Called(ctx, deviceID).Error(0)
}

func (m *DeviceRepository) DeleteOthers(ctx context.Context, userID int64, keepDeviceID string) error {
	return m.Called(ctx, userID, keepDeviceID).Error(0)
}

func (m *DeviceRepository) DeleteByUser(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *DeviceRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return ret[int64](args, 0), args.Error(1)
}

type BloomRepository struct{ mock.Mock }

func (m *BloomRepository) Add(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *BloomRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *BloomRepository) BulkAdd(ctx context.Context, ids []int64) error {
	return m.Called(ctx, ids).Error(0)
}

type RateLimiter struct{ mock.Mock }

func (m *RateLimiter) Allow(ctx context.Context, key string, limit int64, window time.Duration) (bool, error) {
	args := m.Called(ctx, key, limit, window)
	return args.Bool(0), args.Error(1)
}

type TokenProvider struct{ mock.Mock }

func (m *TokenProvider) IssueAccess(u domain.User) (string, error) {
	args := m.Called(u)
	return args.String(0), args.Error(1)
}

func (m *TokenProvider) IssueRefresh(userID int64, deviceID string, issuedAt time.Time) (string, time.Time, error) {
	args := m.Called(userID, deviceID, issuedAt)
	return args.String(0), ret[time.Time](args, 1), args.Error(2)
}

func (m *TokenProvider) ParseAccess(token string) (domain.TokenClaims, error) {
	args := m.Called(token)
	return ret[domain.TokenClaims](args, 0), args.Error(1)
}

func (m *TokenProvider) ParseRefresh(token string) (domain.TokenClaims, error) {
	args := m.Called(token)
	return ret[domain.TokenClaims](args, 0), args.Error(1)
}

type PasswordHasher struct{ mock.Mock }

func (m *PasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *PasswordHasher) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}
