package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/internal/rest/request"
)

// ReactionHandler serves the like-status endpoints of posts and comments
type ReactionHandler struct {
	Service domain.ReactionUsecase
}

func NewReactionHandler(svc domain.ReactionUsecase) *ReactionHandler {
	return &ReactionHandler{
		Service: svc,
	}
}

func (h *ReactionHandler) LikePost(c *gin.Context) {
	h.setStatus(c, h.Service.SetPostReaction)
}

func (h *ReactionHandler) LikeComment(c *gin.Context) {
	h.setStatus(c, h.Service.SetCommentReaction)
}

func (h *ReactionHandler) setStatus(c *gin.Context, set func(ctx context.Context, subjectID, userID int64, status domain.LikeStatus) error) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.LikeStatus
	if !bindJSON(c, &req) {
		return
	}
	if err := set(c.Request.Context(), id, uid, req.ToDomain()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
