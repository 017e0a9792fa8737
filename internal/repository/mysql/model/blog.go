package model

import (
	"time"

	"github.com/Guyuepp/bloggers-platform/domain"
)

type Blog struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"type:varchar(15);not null"`
	Description  string    `gorm:"type:varchar(500);not null"`
	WebsiteURL   string    `gorm:"column:website_url;type:varchar(100);not null"`
	IsMembership bool      `gorm:"not null;default:false"`
	OwnerID      int64     `gorm:"column:owner_id;not null;index"`
	CreatedAt    time.Time `gorm:"type:datetime(3)"`
}

func (Blog) TableName() string {
	return "blogs"
}

func NewBlogFromDomain(b *domain.Blog) *Blog {
	return &Blog{
		ID:           b.ID,
		Name:         b.Name,
		Description:  b.Description,
		WebsiteURL:   b.WebsiteURL,
		IsMembership: b.IsMembership,
		OwnerID:      b.OwnerID,
		CreatedAt:    b.CreatedAt,
	}
}

// BlogRow is a blog joined with its owner's login.
type BlogRow struct {
	Blog
	OwnerLogin string
}

func (m *BlogRow) ToDomain() domain.Blog {
	return domain.Blog{
		ID:           m.ID,
		Name:         m.Name,
		Description:  m.Description,
		WebsiteURL:   m.WebsiteURL,
		IsMembership: m.IsMembership,
		OwnerID:      m.OwnerID,
		OwnerLogin:   m.OwnerLogin,
		CreatedAt:    m.CreatedAt,
	}
}
