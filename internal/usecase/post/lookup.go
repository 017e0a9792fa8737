package post

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/bloggers-platform/domain"
)

// Lookup loads a post, asking the bloom filter first so ids that were never
// created do not reach the database. A filter failure falls through to the
// database.
func Lookup(ctx context.Context, bloomRepo domain.BloomRepository, postRepo domain.PostRepository, id int64) (domain.Post, error) {
	exists, err := bloomRepo.Exists(ctx, id)
	if err != nil {
		logrus.Warnf("bloom filter check for post %d failed: %v", id, err)
	} else if !exists {
		return domain.Post{}, domain.ErrNotFound
	}
	return postRepo.GetByID(ctx, id)
}
