package model

import (
	"time"

	"github.com/Guyuepp/bloggers-platform/domain"
)

type Post struct {
	ID               int64     `gorm:"primaryKey;autoIncrement"`
	Title            string    `gorm:"type:varchar(30);not null"`
	ShortDescription string    `gorm:"type:varchar(100);not null"`
	Content          string    `gorm:"type:text;not null"`
	BlogID           int64     `gorm:"column:blog_id;not null;index"`
	CreatedAt        time.Time `gorm:"type:datetime(3)"`
}

func (Post) TableName() string {
	return "posts"
}

func NewPostFromDomain(p *domain.Post) *Post {
	return &Post{
		ID:               p.ID,
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		Content:          p.Content,
		BlogID:           p.BlogID,
		CreatedAt:        p.CreatedAt,
	}
}

// PostRow is a post joined with its blog's name.
type PostRow struct {
	Post
	BlogName string
}

func (m *PostRow) ToDomain() domain.Post {
	return domain.Post{
		ID:               m.ID,
		Title:            m.Title,
		ShortDescription: m.ShortDescription,
		Content:          m.Content,
		BlogID:           m.BlogID,
		BlogName:         m.BlogName,
		CreatedAt:        m.CreatedAt,
	}
}
