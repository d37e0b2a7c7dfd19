// middleware/auth.go
package middleware

import (
	"net/http"

	"cardoctor/models"
	"cardoctor/services/session"
	"cardoctor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	IdentityKey = "identity"
	EmailKey    = "email"
)

// SessionAuthMiddleware admits requests whose token cookie holds a valid,
// unexpired session token, and stores the decoded identity in the context.
func SessionAuthMiddleware(sessions session.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(session.CookieName)
		if err != nil || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: utils.ErrUnauthorized.Error()})
			return
		}

		identity, err := sessions.Verify(tokenString)
		if err != nil {
			RequestLogger(c).Debug("session token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: utils.ErrUnauthorized.Error()})
			return
		}

		c.Set(IdentityKey, identity)
		c.Set(EmailKey, identity.Email())
		c.Next()
	}
}

// IdentityFrom returns the identity stored by SessionAuthMiddleware.
func IdentityFrom(c *gin.Context) (models.Identity, bool) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(models.Identity)
	return identity, ok
}
