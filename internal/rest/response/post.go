package response

import "github.com/Guyuepp/bloggers-platform/domain"

type LikeDetails struct {
	AddedAt string `json:"addedAt"`
	UserID  string `json:"userId"`
	Login   string `json:"login"`
}

// ExtendedLikesInfo is the posts' reaction summary, with the newest likes.
type ExtendedLikesInfo struct {
	LikesCount    int64         `json:"likesCount"`
	DislikesCount int64         `json:"dislikesCount"`
	MyStatus      string        `json:"myStatus"`
	NewestLikes   []LikeDetails `json:"newestLikes"`
}

func newExtendedLikesInfo(info domain.LikesInfo) ExtendedLikesInfo {
	res := ExtendedLikesInfo{
		LikesCount:    info.LikesCount,
		DislikesCount: info.DislikesCount,
		MyStatus:      myStatus(info.MyStatus),
		NewestLikes:   make([]LikeDetails, len(info.NewestLikes)),
	}
	for i, l := range info.NewestLikes {
		res.NewestLikes[i] = LikeDetails{
			AddedAt: formatTime(l.AddedAt),
			UserID:  formatID(l.UserID),
			Login:   l.Login,
		}
	}
	return res
}

func myStatus(s domain.LikeStatus) string {
	if s == "" {
		return string(domain.LikeStatusNone)
	}
	return string(s)
}

type Post struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	ShortDescription  string            `json:"shortDescription"`
	Content           string            `json:"content"`
	BlogID            string            `json:"blogId"`
	BlogName          string            `json:"blogName"`
	CreatedAt         string            `json:"createdAt"`
	ExtendedLikesInfo ExtendedLikesInfo `json:"extendedLikesInfo"`
}

// NewPostFromDomain: Domain -> Response
func NewPostFromDomain(p *domain.Post) Post {
	return Post{
		ID:                formatID(p.ID),
		Title:             p.Title,
		ShortDescription:  p.ShortDescription,
		Content:           p.Content,
		BlogID:            formatID(p.BlogID),
		BlogName:          p.BlogName,
		CreatedAt:         formatTime(p.CreatedAt),
		ExtendedLikesInfo: newExtendedLikesInfo(p.LikesInfo),
	}
}
