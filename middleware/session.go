// File: middleware/session.go
package middleware

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"aspcare/models"
	"aspcare/services/remote"
	"aspcare/services/session"
	"aspcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionKey = "session"

// SessionLoader is the part of the session store the middleware needs.
type SessionLoader interface {
	Get(ctx context.Context, id string) (*models.Session, error)
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Insufficient authorization",
		"code":  0,
	})
}

// SessionAuth validates the bearer session token and loads its session into the context.
func SessionAuth(store SessionLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c)
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if tokenString == "" {
			unauthorized(c)
			return
		}

		sessionID, err := utils.ExtractSessionID(tokenString)
		if err != nil || sessionID == "" {
			unauthorized(c)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		sess, err := store.Get(ctx, sessionID)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				utils.GetLogger().Error("Failed to load session", zap.String("sessionID", sessionID), zap.Error(err))
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
					"error": "Session store unavailable",
					"code":  1,
				})
				return
			}
			unauthorized(c)
			return
		}

		// A token minted for an earlier login of the same session id no longer counts.
		if subtle.ConstantTimeCompare([]byte(sess.TokenHash), []byte(utils.HashToken(tokenString))) != 1 {
			unauthorized(c)
			return
		}

		c.Set(sessionKey, sess)
		c.Request = c.Request.WithContext(remote.WithSessionID(c.Request.Context(), sess.ID))
		c.Next()
	}
}

// CurrentSession returns the session set by SessionAuth.
func CurrentSession(c *gin.Context) (*models.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*models.Session)
	return sess, ok && sess != nil
}
