package reaction

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/bloggers-platform/domain"
)

// memStore is an in-memory reaction store, ban registry and user lookup.
type memStore struct {
	domain.UserRepository

	mu        sync.Mutex
	nextID    int64
	reactions []domain.Reaction
	global    map[int64]bool
	blog      map[[2]int64]bool
	logins    map[int64]string

	listErr error
	getErr  error
	banErr  error
	userErr error

	getCalls     int
	getByIDCalls int
}

func newMemStore() *memStore {
	return &memStore{
		global: map[int64]bool{},
		blog:   map[[2]int64]bool{},
		logins: map[int64]string{},
	}
}

func (s *memStore) Set(_ context.Context, r *domain.Reaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reactions {
		cur := &s.reactions[i]
		if cur.SubjectType == r.SubjectType && cur.SubjectID == r.SubjectID && cur.UserID == r.UserID {
			if cur.Status != r.Status {
				cur.AddedAt = r.AddedAt
			}
			cur.Status = r.Status
			return nil
		}
	}
	s.nextID++
	row := *r
	row.ID = s.nextID
	s.reactions = append(s.reactions, row)
	return nil
}

func (s *memStore) Get(_ context.Context, t domain.SubjectType, id, userID int64) (domain.LikeStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getCalls++
	if s.getErr != nil {
		return domain.LikeStatusNone, s.getErr
	}
	for _, r := range s.reactions {
		if r.SubjectType == t && r.SubjectID == id && r.UserID == userID {
			return r.Status, nil
		}
	}
	return domain.LikeStatusNone, nil
}

func (s *memStore) ListBySubject(_ context.Context, t domain.SubjectType, id int64) ([]domain.Reaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	var res []domain.Reaction
	for _, r := range s.reactions {
		if r.SubjectType == t && r.SubjectID == id {
			res = append(res, r)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].AddedAt.Equal(res[j].AddedAt) {
			return res[i].AddedAt.After(res[j].AddedAt)
		}
		return res[i].ID > res[j].ID
	})
	return res, nil
}

func (s *memStore) IsGloballyBanned(_ context.Context, userID int64) (bool, error) {
	return s.global[userID], s.banErr
}

func (s *memStore) IsBlogBanned(_ context.Context, userID, blogID int64) (bool, error) {
	return s.blog[[2]int64{blogID, userID}], s.banErr
}

func (s *memStore) ExcludedAmong(_ context.Context, blogID int64, userIDs []int64) (map[int64]bool, error) {
	if s.banErr != nil {
		return nil, s.banErr
	}
	res := map[int64]bool{}
	for _, id := range userIDs {
		if s.global[id] || s.blog[[2]int64{blogID, id}] {
			res[id] = true
		}
	}
	return res, nil
}

func (s *memStore) GetByIDs(_ context.Context, ids []int64) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getByIDCalls++
	if s.userErr != nil {
		return nil, s.userErr
	}
	var res []domain.User
	for _, id := range ids {
		if login, ok := s.logins[id]; ok {
			res = append(res, domain.User{ID: id, Login: login})
		}
	}
	return res, nil
}

var base = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func (s *memStore) react(t *testing.T, subject domain.Subject, userID int64, status domain.LikeStatus, at time.Time) {
	t.Helper()
	require.NoError(t, s.Set(context.Background(), &domain.Reaction{
		SubjectType: subject.Type,
		SubjectID:   subject.ID,
		UserID:      userID,
		Status:      status,
		AddedAt:     at,
	}))
}

func viewer(id int64) *int64 {
	return &id
}

func TestAggregateCountsIgnoreNone(t *testing.T) {
	store := newMemStore()
	agg := NewAggregator(store, store, store)
	post := domain.Subject{Type: domain.SubjectPost, ID: 1, BlogID: 10}

	store.react(t, post, 1, domain.LikeStatusLike, base)
	store.react(t, post, 2, domain.LikeStatusDislike, base.Add(time.Second))
	store.react(t, post, 3, domain.LikeStatusNone, base.Add(2*time.Second))
	store.react(t, post, 4, domain.LikeStatusLike, base.Add(3*time.Second))

	res, err := agg.Aggregate(context.Background(), post, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(2), res.LikesCount)
	assert.Equal(t, int64(1), res.DislikesCount)
	// every reaction but the None one is counted
	assert.Equal(t, int64(len(store.reactions)-1), res.LikesCount+res.DislikesCount)
}

func TestAggregateAnonymousViewer(t *testing.T) {
	store := newMemStore()
	agg := NewAggregator(store, store, store)
	post := domain.Subject{Type: domain.SubjectPost, ID: 1, BlogID: 10}
	store.react(t, post, 1, domain.LikeStatusLike, base)

	res, err := agg.Aggregate(context.Background(), post, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.LikeStatusNone, res.MyStatus)
	assert.Zero(t, store.getCalls)
}

func TestAggregateGlobalBan(t *testing.T) {
	const userA, userB int64 = 1, 2
	store := newMemStore()
	store.logins[userA] = "alice"
	agg := NewAggregator(store, store, store)
	post := domain.Subject{Type: domain.SubjectPost, ID: 7, BlogID: 10}
	ctx := context.Background()

	store.react(t, post, userA, domain.LikeStatusLike, base)

	res, err := agg.Aggregate(ctx, post, viewer(userB))
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.LikesCount)
	assert.Equal(t, int64(0), res.DislikesCount)
	assert.Equal(t, domain.LikeStatusNone, res.MyStatus)

	res, err = agg.Aggregate(ctx, post, viewer(userA))
	require.NoError(t, err)
	assert.Equal(t, domain.LikeStatusLike, res.MyStatus)

	store.global[userA] = true

	res, err = agg.Aggregate(ctx, post, viewer(userB))
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.LikesCount)
	assert.Empty(t, res.NewestLikes)

	res, err = agg.Aggregate(ctx, post, viewer(userA))
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.LikesCount)
	assert.Equal(t, domain.LikeStatusLike, res.MyStatus)
}

func TestAggregateBlogBanIsScopedToTheBlog(t *testing.T) {
	const userC int64 = 3
	store := newMemStore()
	store.logins[userC] = "carol"
	agg := NewAggregator(store, store, store)
	postX := domain.Subject{Type: domain.SubjectPost, ID: 1, BlogID: 100}
	postY := domain.Subject{Type: domain.SubjectPost, ID: 2, BlogID: 200}
	commentX := domain.Subject{Type: domain.SubjectComment, ID: 5, BlogID: 100}
	ctx := context.Background()

	store.react(t, postX, userC, domain.LikeStatusLike, base)
	store.react(t, postY, userC, domain.LikeStatusLike, base)
	store.react(t, commentX, userC, domain.LikeStatusDislike, base)

	store.blog[[2]int64{100, userC}] = true

	res, err := agg.Aggregate(ctx, postX, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.LikesCount)
	assert.Empty(t, res.NewestLikes)

	res, err = agg.Aggregate(ctx, commentX, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.DislikesCount)

	res, err = agg.Aggregate(ctx, postY, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.LikesCount)
	require.Len(t, res.NewestLikes, 1)
	assert.Equal(t, "carol", res.NewestLikes[0].Login)

	// the banned user still sees their own reaction
	res, err = agg.Aggregate(ctx, postX, viewer(userC))
	require.NoError(t, err)
	assert.Equal(t, domain.LikeStatusLike, res.MyStatus)
}

func TestAggregateNewestLikes(t *testing.T) {
	store := newMemStore()
	for id, login := range map[int64]string{1: "u1", 2: "u2", 3: "u3", 4: "u4", 5: "u5", 6: "u6"} {
		store.logins[id] = login
	}
	agg := NewAggregator(store, store, store)
	post := domain.Subject{Type: domain.SubjectPost, ID: 1, BlogID: 10}

	store.react(t, post, 1, domain.LikeStatusLike, base)
	store.react(t, post, 2, domain.LikeStatusLike, base.Add(1*time.Second))
	store.react(t, post, 3, domain.LikeStatusLike, base.Add(2*time.Second))
	store.react(t, post, 4, domain.LikeStatusDislike, base.Add(3*time.Second))
	store.react(t, post, 5, domain.LikeStatusLike, base.Add(4*time.Second))
	store.react(t, post, 6, domain.LikeStatusLike, base.Add(5*time.Second))
	store.global[6] = true

	res, err := agg.Aggregate(context.Background(), post, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(4), res.LikesCount)
	require.Len(t, res.NewestLikes, domain.NewestLikesLimit)
	assert.Equal(t, []int64{5, 3, 2}, []int64{res.NewestLikes[0].UserID, res.NewestLikes[1].UserID, res.NewestLikes[2].UserID})
	assert.Equal(t, "u5", res.NewestLikes[0].Login)
	assert.Equal(t, base.Add(4*time.Second), res.NewestLikes[0].AddedAt)
	for i := 1; i < len(res.NewestLikes); i++ {
		assert.False(t, res.NewestLikes[i].AddedAt.After(res.NewestLikes[i-1].AddedAt))
	}
}

func TestAggregateNewestLikesTieBreak(t *testing.T) {
	store := newMemStore()
	store.logins[1] = "first"
	store.logins[2] = "second"
	agg := NewAggregator(store, store, store)
	post := domain.Subject{Type: domain.SubjectPost, ID: 1, BlogID: 10}

	store.react(t, post, 1, domain.LikeStatusLike, base)
	store.react(t, post, 2, domain.LikeStatusLike, base)

	res, err := agg.Aggregate(context.Background(), post, nil)
	require.NoError(t, err)
	require.Len(t, res.NewestLikes, 2)
	assert.Equal(t, "second", res.NewestLikes[0].Login)
}

func TestAggregateCommentsHaveNoNewestLikes(t *testing.T) {
	store := newMemStore()
	store.logins[1] = "u1"
	agg := NewAggregator(store, store, store)
	comment := domain.Subject{Type: domain.SubjectComment, ID: 1, BlogID: 10}
	store.react(t, comment, 1, domain.LikeStatusLike, base)

	res, err := agg.Aggregate(context.Background(), comment, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.LikesCount)
	assert.Nil(t, res.NewestLikes)
	assert.Zero(t, store.getByIDCalls)
}

func TestAggregateIsIdempotentUnderRepeatedLike(t *testing.T) {
	store := newMemStore()
	store.logins[1] = "u1"
	store.logins[2] = "u2"
	agg := NewAggregator(store, store, store)
	post := domain.Subject{Type: domain.SubjectPost, ID: 1, BlogID: 10}
	ctx := context.Background()

	store.react(t, post, 1, domain.LikeStatusLike, base)
	store.react(t, post, 2, domain.LikeStatusLike, base.Add(time.Second))
	once, err := agg.Aggregate(ctx, post, viewer(1))
	require.NoError(t, err)

	store.react(t, post, 1, domain.LikeStatusLike, base.Add(time.Minute))
	twice, err := agg.Aggregate(ctx, post, viewer(1))
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestAggregatePropagatesStoreFailures(t *testing.T) {
	boom := errors.New("connection refused")
	post := domain.Subject{Type: domain.SubjectPost, ID: 1, BlogID: 10}

	cases := map[string]func(s *memStore){
		"list reactions": func(s *memStore) { s.listErr = boom },
		"viewer status":  func(s *memStore) { s.getErr = boom },
		"ban registry":   func(s *memStore) { s.banErr = boom },
		"liker logins":   func(s *memStore) { s.userErr = boom },
	}
	for name, breakStore := range cases {
		t.Run(name, func(t *testing.T) {
			store := newMemStore()
			store.logins[1] = "u1"
			store.react(t, post, 1, domain.LikeStatusLike, base)
			breakStore(store)

			res, err := NewAggregator(store, store, store).Aggregate(context.Background(), post, viewer(1))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrDataUnavailable)
			assert.ErrorIs(t, err, boom)
			assert.Equal(t, domain.LikesInfo{}, res)
		})
	}
}
