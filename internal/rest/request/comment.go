package request

import "github.com/Guyuepp/bloggers-platform/domain"

type Comment struct {
	Content string `json:"content" binding:"required,min=20,max=300"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain(postID, userID int64) domain.Comment {
	return domain.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: r.Content,
	}
}

type LikeStatus struct {
	LikeStatus string `json:"likeStatus" binding:"required,likestatus"`
}

func (r *LikeStatus) ToDomain() domain.LikeStatus {
	return domain.LikeStatus(r.LikeStatus)
}
