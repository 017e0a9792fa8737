package domain

import (
	"context"
	"time"
)

// Post is representing the Post data struct
type Post struct {
	ID               int64
	Title            string
	ShortDescription string
	Content          string
	BlogID           int64
	BlogName         string
	CreatedAt        time.Time
	LikesInfo        LikesInfo // Filled per viewer, never stored
}

// Subject returns the reaction subject of the post.
func (p Post) Subject() Subject {
	return Subject{Type: SubjectPost, ID: p.ID, BlogID: p.BlogID}
}

// PostRepository defines the contract for post data persistence
type PostRepository interface {
	// GetByID returns ErrNotFound if the post doesn't exist.
	GetByID(ctx context.Context, id int64) (Post, error)

	// Fetch lists posts, only the ones of blogID when it is not nil.
	Fetch(ctx context.Context, q Query, blogID *int64) (Page[Post], error)

	Store(ctx context.Context, p *Post) error

	// Update returns ErrNotFound if the post doesn't exist.
	Update(ctx context.Context, p *Post) error

	// Delete removes the post with its comments and reactions.
	Delete(ctx context.Context, id int64) error

	// FetchIDs pages through post ids in ascending order, after cursor.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

type PostUsecase interface {
	Fetch(ctx context.Context, q Query, viewerID *int64) (Page[Post], error)
	FetchByBlog(ctx context.Context, blogID int64, q Query, viewerID *int64) (Page[Post], error)
	GetByID(ctx context.Context, id int64, viewerID *int64) (Post, error)

	// Store, Update and Delete act on behalf of the owner of the post's blog.
	Store(ctx context.Context, ownerID int64, p *Post) error
	Update(ctx context.Context, ownerID int64, p *Post) error
	Delete(ctx context.Context, ownerID, blogID, postID int64) error

	InitBloomFilter(ctx context.Context) error
}

// SetLikesInfo attaches the aggregated reactions.
func (p *Post) SetLikesInfo(info LikesInfo) {
	p.LikesInfo = info
}
