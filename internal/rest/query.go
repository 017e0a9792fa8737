package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/internal/rest/middleware"
	"github.com/Guyuepp/bloggers-platform/internal/rest/request"
	"github.com/Guyuepp/bloggers-platform/internal/rest/response"
)

// listQuery reads the paging parameters of a listing.
func listQuery(c *gin.Context) (domain.Query, bool) {
	var req request.ListQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.NewAPIErrorResult(err))
		return domain.Query{}, false
	}
	q, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return domain.Query{}, false
	}
	return q, true
}

// currentUser returns the authenticated user id, answering 401 without one.
func currentUser(c *gin.Context) (int64, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: domain.ErrUnauthorized.Error()})
	}
	return id, ok
}
