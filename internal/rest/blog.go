package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/internal/rest/request"
	"github.com/Guyuepp/bloggers-platform/internal/rest/response"
)

// BlogHandler represent the httphandler for blogs
type BlogHandler struct {
	Service domain.BlogUsecase
}

func NewBlogHandler(svc domain.BlogUsecase) *BlogHandler {
	return &BlogHandler{
		Service: svc,
	}
}

// Fetch lists every blog
func (h *BlogHandler) Fetch(c *gin.Context) {
	q, ok := listQuery(c)
	if !ok {
		return
	}
	page, err := h.Service.Fetch(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPaginator(page, response.NewBlogFromDomain))
}

// FetchForAdmin lists every blog with its owner
func (h *BlogHandler) FetchForAdmin(c *gin.Context) {
	q, ok := listQuery(c)
	if !ok {
		return
	}
	page, err := h.Service.Fetch(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPaginator(page, response.NewAdminBlogFromDomain))
}

// FetchOwned lists the blogs of the current user
func (h *BlogHandler) FetchOwned(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	q, ok := listQuery(c)
	if !ok {
		return
	}
	page, err := h.Service.FetchOwned(c.Request.Context(), uid, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPaginator(page, response.NewBlogFromDomain))
}

// GetByID will get blog by given id
func (h *BlogHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	b, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewBlogFromDomain(&b))
}

// Store creates a blog owned by the current user
func (h *BlogHandler) Store(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	var req request.Blog
	if !bindJSON(c, &req) {
		return
	}
	b := req.ToDomain()
	b.OwnerID = uid
	if err := h.Service.Store(c.Request.Context(), &b); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.NewBlogFromDomain(&b))
}

func (h *BlogHandler) Update(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "blogId")
	if !ok {
		return
	}
	var req request.Blog
	if !bindJSON(c, &req) {
		return
	}
	b := req.ToDomain()
	b.ID = id
	if err := h.Service.Update(c.Request.Context(), uid, &b); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "blogId")
	if !ok {
		return
	}
	if err := h.Service.Delete(c.Request.Context(), uid, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
