package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/internal/rest/request"
	"github.com/Guyuepp/bloggers-platform/internal/rest/response"
)

// BanHandler serves both the platform wide and the blog scoped bans
type BanHandler struct {
	Service domain.BanUsecase
}

func NewBanHandler(svc domain.BanUsecase) *BanHandler {
	return &BanHandler{
		Service: svc,
	}
}

// BanUser toggles the platform wide ban (super-admin)
func (h *BanHandler) BanUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req request.BanUser
	if !bindJSON(c, &req) {
		return
	}
	if err := h.Service.BanUser(c.Request.Context(), id, *req.IsBanned, req.BanReason); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BanUserForBlog toggles a ban on one blog of the current user
func (h *BanHandler) BanUserForBlog(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	var req request.BlogBanUser
	if !bindJSON(c, &req) {
		return
	}
	blogID, ok := req.ParsedBlogID()
	if !ok {
		respondError(c, &domain.FieldError{Field: "blogId", Message: "blogId is invalid"})
		return
	}
	if err := h.Service.BanUserForBlog(c.Request.Context(), uid, userID, blogID, *req.IsBanned, req.BanReason); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// FetchBlogBans lists the users banned on a blog of the current user
func (h *BanHandler) FetchBlogBans(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	blogID, ok := pathID(c, "blogId")
	if !ok {
		return
	}
	q, ok := listQuery(c)
	if !ok {
		return
	}
	page, err := h.Service.FetchBlogBans(c.Request.Context(), uid, blogID, q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewPaginator(page, response.NewBannedUserFromDomain))
}
