package repository

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/bloggers-platform/domain"
)

// shared runs fn once for every concurrent caller of key. The shared call is
// detached from the first caller's cancellation; each caller still stops
// waiting when its own ctx is done.
func shared[T any](ctx context.Context, g *singleflight.Group, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	ch := g.DoChan(key, func() (any, error) {
		return fn(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			var zero T
			return zero, res.Err
		}
		return res.Val.(T), nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// postRepository 协调层，合并同一篇文章的并发读取
type postRepository struct {
	domain.PostRepository
	group singleflight.Group
}

var _ domain.PostRepository = (*postRepository)(nil)

// NewPostRepository wraps db so concurrent detail reads of one post hit the
// database once.
func NewPostRepository(db domain.PostRepository) *postRepository {
	return &postRepository{PostRepository: db}
}

func (r *postRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	return shared(ctx, &r.group, fmt.Sprintf("post:%d", id), func(ctx context.Context) (domain.Post, error) {
		return r.PostRepository.GetByID(ctx, id)
	})
}

// reactionRepository coalesces the subject listings of concurrent
// aggregations. Every viewer of a hot post needs the same rows.
type reactionRepository struct {
	domain.ReactionRepository
	group singleflight.Group
}

var _ domain.ReactionRepository = (*reactionRepository)(nil)

func NewReactionRepository(db domain.ReactionRepository) *reactionRepository {
	return &reactionRepository{ReactionRepository: db}
}

// Set writes through and drops the in-flight listing of the subject, so a
// read starting after the write never joins a listing started before it.
func (r *reactionRepository) Set(ctx context.Context, reaction *domain.Reaction) error {
	if err := r.ReactionRepository.Set(ctx, reaction); err != nil {
		return err
	}
	r.group.Forget(reactionsKey(reaction.SubjectType, reaction.SubjectID))
	return nil
}

func reactionsKey(subjectType domain.SubjectType, subjectID int64) string {
	return fmt.Sprintf("reactions:%s:%d", subjectType, subjectID)
}

func (r *reactionRepository) ListBySubject(ctx context.Context, subjectType domain.SubjectType, subjectID int64) ([]domain.Reaction, error) {
	res, err := shared(ctx, &r.group, reactionsKey(subjectType, subjectID), func(ctx context.Context) ([]domain.Reaction, error) {
		return r.ReactionRepository.ListBySubject(ctx, subjectType, subjectID)
	})
	if err != nil {
		return nil, err
	}
	// callers sort and slice the result
	return append([]domain.Reaction(nil), res...), nil
}
