package response

import "github.com/Guyuepp/bloggers-platform/domain"

type Blog struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	WebsiteURL   string `json:"websiteUrl"`
	CreatedAt    string `json:"createdAt"`
	IsMembership bool   `json:"isMembership"`
}

// NewBlogFromDomain: Domain -> Response
func NewBlogFromDomain(b *domain.Blog) Blog {
	return Blog{
		ID:           formatID(b.ID),
		Name:         b.Name,
		Description:  b.Description,
		WebsiteURL:   b.WebsiteURL,
		CreatedAt:    formatTime(b.CreatedAt),
		IsMembership: b.IsMembership,
	}
}

type BlogOwnerInfo struct {
	UserID    string `json:"userId"`
	UserLogin string `json:"userLogin"`
}

// AdminBlog is the super-admin view of a blog.
type AdminBlog struct {
	Blog
	BlogOwnerInfo BlogOwnerInfo `json:"blogOwnerInfo"`
}

func NewAdminBlogFromDomain(b *domain.Blog) AdminBlog {
	return AdminBlog{
		Blog: NewBlogFromDomain(b),
		BlogOwnerInfo: BlogOwnerInfo{
			UserID:    formatID(b.OwnerID),
			UserLogin: b.OwnerLogin,
		},
	}
}
