package response

import "github.com/Guyuepp/bloggers-platform/domain"

// LikesInfo is the comments' reaction summary. Comments have no newest likes.
type LikesInfo struct {
	LikesCount    int64  `json:"likesCount"`
	DislikesCount int64  `json:"dislikesCount"`
	MyStatus      string `json:"myStatus"`
}

type CommentatorInfo struct {
	UserID    string `json:"userId"`
	UserLogin string `json:"userLogin"`
}

type Comment struct {
	ID              string          `json:"id"`
	Content         string          `json:"content"`
	CommentatorInfo CommentatorInfo `json:"commentatorInfo"`
	CreatedAt       string          `json:"createdAt"`
	LikesInfo       LikesInfo       `json:"likesInfo"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	return Comment{
		ID:      formatID(c.ID),
		Content: c.Content,
		CommentatorInfo: CommentatorInfo{
			UserID:    formatID(c.UserID),
			UserLogin: c.UserLogin,
		},
		CreatedAt: formatTime(c.CreatedAt),
		LikesInfo: LikesInfo{
			LikesCount:    c.LikesInfo.LikesCount,
			DislikesCount: c.LikesInfo.DislikesCount,
			MyStatus:      myStatus(c.LikesInfo.MyStatus),
		},
	}
}

type PostInfo struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	BlogID   string `json:"blogId"`
	BlogName string `json:"blogName"`
}

// BloggerComment is a comment as listed to the owner of its blog.
type BloggerComment struct {
	Comment
	PostInfo PostInfo `json:"postInfo"`
}

func NewBloggerCommentFromDomain(c *domain.Comment) BloggerComment {
	return BloggerComment{
		Comment: NewCommentFromDomain(c),
		PostInfo: PostInfo{
			ID:       formatID(c.PostID),
			Title:    c.PostTitle,
			BlogID:   formatID(c.BlogID),
			BlogName: c.BlogName,
		},
	}
}
