package domain

import (
	"context"
	"time"
)

// Comment domain model
type Comment struct {
	ID        int64
	PostID    int64
	BlogID    int64
	Content   string
	UserID    int64
	UserLogin string
	CreatedAt time.Time
	LikesInfo LikesInfo // Filled per viewer, never stored

	// PostTitle and BlogName are only filled for the blogger's listing
	PostTitle string
	BlogName  string
}

// Subject returns the reaction subject of the comment.
func (c Comment) Subject() Subject {
	return Subject{Type: SubjectComment, ID: c.ID, BlogID: c.BlogID}
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	// Create returns ErrForbidden if the author is banned on the post's blog.
	Create(ctx context.Context, c *Comment) error
	Update(ctx context.Context, userID, id int64, content string) error
	Delete(ctx context.Context, userID, id int64) error
	GetByID(ctx context.Context, id int64, viewerID *int64) (Comment, error)
	FetchByPost(ctx context.Context, postID int64, q Query, viewerID *int64) (Page[Comment], error)
	FetchForBlogger(ctx context.Context, ownerID int64, q Query) (Page[Comment], error)
}

// CommentRepository 数据存取接口
// Comments written by globally banned users are never returned.
type CommentRepository interface {
	GetByID(ctx context.Context, id int64) (Comment, error)
	FetchByPost(ctx context.Context, postID int64, q Query) (Page[Comment], error)
	FetchByBlogOwner(ctx context.Context, ownerID int64, q Query) (Page[Comment], error)
	Store(ctx context.Context, c *Comment) error
	Update(ctx context.Context, c *Comment) error
	// Delete removes the comment with its reactions.
	Delete(ctx context.Context, id int64) error
}

// SetLikesInfo attaches the aggregated reactions. Comments carry no preview.
func (c *Comment) SetLikesInfo(info LikesInfo) {
	info.NewestLikes = nil
	c.LikesInfo = info
}
