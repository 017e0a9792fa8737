package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// getStatusCode maps the domain errors to HTTP status codes
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDataUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with its status. Bad input is reported in the
// errorsMessages shape.
func respondError(c *gin.Context, err error) {
	code := getStatusCode(err)
	switch {
	case code == http.StatusBadRequest:
		c.JSON(code, response.NewAPIErrorResult(err))
	case code >= http.StatusInternalServerError:
		logrus.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(code, ResponseError{Message: http.StatusText(code)})
	default:
		c.JSON(code, ResponseError{Message: err.Error()})
	}
}

// bindJSON binds the body into req and answers 400 when it is invalid.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, response.NewAPIErrorResult(err))
		return false
	}
	return true
}

// pathID parses a numeric path parameter; malformed ids can not exist, so
// they answer 404.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return 0, false
	}
	return id, true
}
