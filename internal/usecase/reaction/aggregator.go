package reaction

import (
	"context"
	"fmt"
	"sort"

	"github.com/Guyuepp/bloggers-platform/domain"
)

// Aggregator computes like/dislike counters, the viewer's own status and the
// newest likes preview straight from the reaction rows. Reactions of users
// that are globally banned, or banned on the subject's blog, are left out for
// every viewer.
type Aggregator struct {
	reactionRepo domain.ReactionRepository
	banRegistry  domain.BanRegistry
	userRepo     domain.UserRepository
}

var _ domain.ReactionAggregator = (*Aggregator)(nil)

func NewAggregator(r domain.ReactionRepository, b domain.BanRegistry, u domain.UserRepository) *Aggregator {
	return &Aggregator{
		reactionRepo: r,
		banRegistry:  b,
		userRepo:     u,
	}
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrDataUnavailable, op, err)
}

func (a *Aggregator) Aggregate(ctx context.Context, subject domain.Subject, viewerID *int64) (domain.LikesInfo, error) {
	reactions, err := a.reactionRepo.ListBySubject(ctx, subject.Type, subject.ID)
	if err != nil {
		return domain.LikesInfo{}, unavailable("list reactions", err)
	}

	res := domain.LikesInfo{MyStatus: domain.LikeStatusNone}
	if viewerID != nil {
		res.MyStatus, err = a.reactionRepo.Get(ctx, subject.Type, subject.ID, *viewerID)
		if err != nil {
			return domain.LikesInfo{}, unavailable("get viewer reaction", err)
		}
	}

	excluded, err := a.banRegistry.ExcludedAmong(ctx, subject.BlogID, reactingUsers(reactions))
	if err != nil {
		return domain.LikesInfo{}, unavailable("check bans", err)
	}

	likes := make([]domain.Reaction, 0, len(reactions))
	for _, r := range reactions {
		if excluded[r.UserID] {
			continue
		}
		switch r.Status {
		case domain.LikeStatusLike:
			res.LikesCount++
			likes = append(likes, r)
		case domain.LikeStatusDislike:
			res.DislikesCount++
		}
	}

	if subject.Type != domain.SubjectPost {
		return res, nil
	}
	res.NewestLikes, err = a.newestLikes(ctx, likes)
	if err != nil {
		return domain.LikesInfo{}, err
	}
	return res, nil
}

// reactingUsers returns the distinct users holding a Like or a Dislike.
// None rows never count, so their owners need no ban check.
func reactingUsers(reactions []domain.Reaction) []int64 {
	seen := make(map[int64]bool, len(reactions))
	ids := make([]int64, 0, len(reactions))
	for _, r := range reactions {
		if r.Status == domain.LikeStatusNone || seen[r.UserID] {
			continue
		}
		seen[r.UserID] = true
		ids = append(ids, r.UserID)
	}
	return ids
}

// newestLikes picks the most recent likes and resolves their logins.
func (a *Aggregator) newestLikes(ctx context.Context, likes []domain.Reaction) ([]domain.LikeDetails, error) {
	sort.SliceStable(likes, func(i, j int) bool {
		if !likes[i].AddedAt.Equal(likes[j].AddedAt) {
			return likes[i].AddedAt.After(likes[j].AddedAt)
		}
		return likes[i].ID > likes[j].ID
	})
	likes = likes[:min(len(likes), domain.NewestLikesLimit)]

	res := make([]domain.LikeDetails, 0, len(likes))
	if len(likes) == 0 {
		return res, nil
	}

	userIDs := make([]int64, len(likes))
	for i, l := range likes {
		userIDs[i] = l.UserID
	}
	users, err := a.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		return nil, unavailable("resolve likers", err)
	}
	logins := make(map[int64]string, len(users))
	for _, u := range users {
		logins[u.ID] = u.Login
	}

	for _, l := range likes {
		login, ok := logins[l.UserID]
		if !ok {
			// deleted between the two reads
			continue
		}
		res = append(res, domain.LikeDetails{
			AddedAt: l.AddedAt,
			UserID:  l.UserID,
			Login:   login,
		})
	}
	return res, nil
}
