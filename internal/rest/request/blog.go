package request

import (
	"strings"

	"github.com/Guyuepp/bloggers-platform/domain"
)

type Blog struct {
	Name        string `json:"name" binding:"required,notblank,max=15"`
	Description string `json:"description" binding:"required,notblank,max=500"`
	WebsiteURL  string `json:"websiteUrl" binding:"required,max=100,websiteurl"`
}

// ToDomain: Request -> Domain
func (r *Blog) ToDomain() domain.Blog {
	return domain.Blog{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		WebsiteURL:  r.WebsiteURL,
	}
}

type Post struct {
	Title            string `json:"title" binding:"required,notblank,max=30"`
	ShortDescription string `json:"shortDescription" binding:"required,notblank,max=100"`
	Content          string `json:"content" binding:"required,notblank,max=1000"`
}

// ToDomain: Request -> Domain
func (r *Post) ToDomain(blogID int64) domain.Post {
	return domain.Post{
		Title:            strings.TrimSpace(r.Title),
		ShortDescription: strings.TrimSpace(r.ShortDescription),
		Content:          strings.TrimSpace(r.Content),
		BlogID:           blogID,
	}
}
