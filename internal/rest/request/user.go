package request

import "strconv"

// User is used both by the super-admin and by self registration.
type User struct {
	Login    string `json:"login" binding:"required,min=3,max=10,login"`
	Password string `json:"password" binding:"required,min=6,max=20"`
	Email    string `json:"email" binding:"required,email"`
}

type Login struct {
	LoginOrEmail string `json:"loginOrEmail" binding:"required,notblank"`
	Password     string `json:"password" binding:"required,notblank"`
}

type BanUser struct {
	IsBanned  *bool  `json:"isBanned" binding:"required"`
	BanReason string `json:"banReason" binding:"required,min=20"`
}

type BlogBanUser struct {
	IsBanned  *bool  `json:"isBanned" binding:"required"`
	BanReason string `json:"banReason" binding:"required,min=20"`
	BlogID    string `json:"blogId" binding:"required,numeric"`
}

// ParsedBlogID returns the blog id, false when it does not fit an int64.
func (r *BlogBanUser) ParsedBlogID() (int64, bool) {
	id, err := strconv.ParseInt(r.BlogID, 10, 64)
	return id, err == nil && id > 0
}
