package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/internal/rest/middleware"
	"github.com/Guyuepp/bloggers-platform/internal/rest/request"
	"github.com/Guyuepp/bloggers-platform/internal/rest/response"
)

// PostHandler represent the httphandler for posts
type PostHandler struct {
	Service domain.PostUsecase
}

func NewPostHandler(svc domain.PostUsecase) *PostHandler {
	return &PostHandler{
		Service: svc,
	}
}

// Fetch lists every post as seen by the viewer
func (h *PostHandler) Fetch(c *gin.Context) {
	q, ok := listQuery(c)
	if !ok {
		return
	}
	page, err := h.Service.Fetch(c.Request.Context(), q, middleware.ViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPaginator(page, response.NewPostFromDomain))
}

// FetchByBlog lists the posts of one blog
func (h *PostHandler) FetchByBlog(c *gin.Context) {
	blogID, ok := pathID(c, "id")
	if !ok {
		return
	}
	q, ok := listQuery(c)
	if !ok {
		return
	}
	page, err := h.Service.FetchByBlog(c.Request.Context(), blogID, q, middleware.ViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPaginator(page, response.NewPostFromDomain))
}

// GetByID will get post by given id
func (h *PostHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := h.Service.GetByID(c.Request.Context(), id, middleware.ViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPostFromDomain(&p))
}

// Store creates a post in a blog of the current user
func (h *PostHandler) Store(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	blogID, ok := pathID(c, "blogId")
	if !ok {
		return
	}
	var req request.Post
	if !bindJSON(c, &req) {
		return
	}
	p := req.ToDomain(blogID)
	if err := h.Service.Store(c.Request.Context(), uid, &p); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewPostFromDomain(&p))
}

func (h *PostHandler) Update(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	blogID, ok := pathID(c, "blogId")
	if !ok {
		return
	}
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}
	var req request.Post
	if !bindJSON(c, &req) {
		return
	}
	p := req.ToDomain(blogID)
	p.ID = postID
	if err := h.Service.Update(c.Request.Context(), uid, &p); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PostHandler) Delete(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	blogID, ok := pathID(c, "blogId")
	if !ok {
		return
	}
	postID, ok := pathID(c, "postId")
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), uid, blogID, postID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
