package model

import (
	"time"

	"github.com/Guyuepp/bloggers-platform/domain"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	PostID    int64     `gorm:"column:post_id;not null;index"`
	BlogID    int64     `gorm:"column:blog_id;not null;index"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	Content   string    `gorm:"type:varchar(300);not null"`
	CreatedAt time.Time `gorm:"type:datetime(3)"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		BlogID:    c.BlogID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

// CommentRow is a comment joined with its author and, for the blogger
// listing, its post and blog.
type CommentRow struct {
	Comment
	UserLogin string
	PostTitle string
	BlogName  string
}

func (m *CommentRow) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		BlogID:    m.BlogID,
		Content:   m.Content,
		UserID:    m.UserID,
		UserLogin: m.UserLogin,
		CreatedAt: m.CreatedAt,
		PostTitle: m.PostTitle,
		BlogName:  m.BlogName,
	}
}
