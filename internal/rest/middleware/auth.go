package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/bloggers-platform/domain"
)

// Context keys set by the auth middlewares
const (
	ContextUserID  = "user_id"
	ContextLogin   = "login"
	ContextSession = "device_session"

	RefreshTokenCookie = "refreshToken"
)

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

// AuthMiddleware rejects requests without a valid access token.
func AuthMiddleware(tokens domain.TokenProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}
		claims, err := tokens.ParseAccess(token)
		if err != nil {
			logrus.Debugf("access token rejected: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid or expired token"})
			return
		}
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextLogin, claims.Login)
		c.Next()
	}
}

// OptionalAuth identifies the viewer when a valid access token is sent and
// lets anonymous requests through otherwise.
func OptionalAuth(tokens domain.TokenProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := tokens.ParseAccess(token); err == nil {
				c.Set(ContextUserID, claims.UserID)
				c.Set(ContextLogin, claims.Login)
			}
		}
		c.Next()
	}
}

// RefreshSession requires a live refresh token cookie and stores its session.
func RefreshSession(auth domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(RefreshTokenCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing refresh token"})
			return
		}
		sess, err := auth.Session(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid refresh token"})
			return
		}
		c.Set(ContextUserID, sess.UserID)
		c.Set(ContextSession, sess)
		c.Next()
	}
}

// UserID returns the authenticated user, false for anonymous requests.
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// ViewerID is UserID as the pointer the read usecases take.
func ViewerID(c *gin.Context) *int64 {
	if id, ok := UserID(c); ok {
		return &id
	}
	return nil
}

// Session returns the device session stored by RefreshSession.
func Session(c *gin.Context) (domain.DeviceSession, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return domain.DeviceSession{}, false
	}
	sess, ok := v.(domain.DeviceSession)
	return sess, ok
}
