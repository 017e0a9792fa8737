package listing

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/bloggers-platform/domain"
)

// maxParallelAggregations bounds the per-page fan-out.
const maxParallelAggregations = 8

// Likeable is implemented by pointers to posts and comments.
type Likeable interface {
	Subject() domain.Subject
	SetLikesInfo(info domain.LikesInfo)
}

// Assemble attaches the reactions seen by viewerID to every item. The
// aggregations are independent reads and run concurrently; the first failure
// cancels the others and fails the whole page.
func Assemble[T any, PT interface {
	*T
	Likeable
}](ctx context.Context, agg domain.ReactionAggregator, items []T, viewerID *int64) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelAggregations)

	for i := range items {
		item := PT(&items[i])
		g.Go(func() error {
			info, err := agg.Aggregate(ctx, item.Subject(), viewerID)
			if err != nil {
				return err
			}
			item.SetLikesInfo(info)
			return nil
		})
	}
	return g.Wait()
}

// AssembleOne is Assemble for a single detail read.
func AssembleOne[T any, PT interface {
	*T
	Likeable
}](ctx context.Context, agg domain.ReactionAggregator, item *T, viewerID *int64) error {
	info, err := agg.Aggregate(ctx, PT(item).Subject(), viewerID)
	if err != nil {
		return err
	}
	PT(item).SetLikesInfo(info)
	return nil
}
