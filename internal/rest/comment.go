package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/internal/rest/middleware"
	"github.com/Guyuepp/bloggers-platform/internal/rest/request"
	"github.com/Guyuepp/bloggers-platform/internal/rest/response"
)

type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

func (h *CommentHandler) Create(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.Comment
	if !bindJSON(c, &req) {
		return
	}

	comment := req.ToDomain(postID, uid)
	if err := h.Service.Create(c.Request.Context(), &comment); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&comment))
}

func (h *CommentHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	comment, err := h.Service.GetByID(c.Request.Context(), id, middleware.ViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewCommentFromDomain(&comment))
}

func (h *CommentHandler) FetchByPost(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		return
	}
	q, ok := listQuery(c)
	if !ok {
		return
	}
	page, err := h.Service.FetchByPost(c.Request.Context(), postID, q, middleware.ViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPaginator(page, response.NewCommentFromDomain))
}

// FetchForBlogger lists the comments on every blog of the current user
func (h *CommentHandler) FetchForBlogger(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	q, ok := listQuery(c)
	if !ok {
		return
	}
	page, err := h.Service.FetchForBlogger(c.Request.Context(), uid, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPaginator(page, response.NewBloggerCommentFromDomain))
}

func (h *CommentHandler) Update(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.Comment
	if !bindJSON(c, &req) {
		return
	}
	if err := h.Service.Update(c.Request.Context(), uid, id, req.Content); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), uid, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
