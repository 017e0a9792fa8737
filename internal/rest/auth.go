package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/bloggers-platform/domain"
	"github.com/Guyuepp/bloggers-platform/internal/rest/middleware"
	"github.com/Guyuepp/bloggers-platform/internal/rest/request"
	"github.com/Guyuepp/bloggers-platform/internal/rest/response"
)

type AuthHandler struct {
	Service    domain.AuthUsecase
	refreshTTL time.Duration
}

func NewAuthHandler(svc domain.AuthUsecase, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		Service:    svc,
		refreshTTL: refreshTTL,
	}
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.RefreshTokenCookie, token, maxAge, "/", "", true, true)
}

func (h *AuthHandler) respondTokens(c *gin.Context, pair domain.TokenPair) {
	h.setRefreshCookie(c, pair.RefreshToken, int(h.refreshTTL.Seconds()))
	c.JSON(http.StatusOK, response.AccessToken{AccessToken: pair.AccessToken})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req request.User
	if !bindJSON(c, &req) {
		return
	}
	if err := h.Service.Register(c.Request.Context(), req.Login, req.Email, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req request.Login
	if !bindJSON(c, &req) {
		return
	}
	title := c.GetHeader("User-Agent")
	if title == "" {
		title = "unknown device"
	}
	pair, err := h.Service.Login(c.Request.Context(), req.LoginOrEmail, req.Password, c.ClientIP(), title)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondTokens(c, pair)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	token, err := c.Cookie(middleware.RefreshTokenCookie)
	if err != nil {
		respondError(c, domain.ErrUnauthorized)
		return
	}
	pair, err := h.Service.Refresh(c.Request.Context(), token, c.ClientIP())
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondTokens(c, pair)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(middleware.RefreshTokenCookie)
	if err != nil {
		respondError(c, domain.ErrUnauthorized)
		return
	}
	if err := h.Service.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}
	h.setRefreshCookie(c, "", -1)
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	u, err := h.Service.Me(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewMeFromDomain(&u))
}
