package handlers

import (
	"net/http"

	"cardoctor/models"
	"cardoctor/services/session"
	"cardoctor/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionHandler issues and clears session cookies.
type SessionHandler struct {
	Sessions session.SessionService
}

func NewSessionHandler(sessions session.SessionService) *SessionHandler {
	return &SessionHandler{Sessions: sessions}
}

// IssueTokenHandler handles POST /jwt. Every field of the submitted identity
// is signed into the token.
func (h *SessionHandler) IssueTokenHandler(c *gin.Context) {
	logger := getLogger(c)

	var identity models.Identity
	if err := c.ShouldBindJSON(&identity); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	token, err := h.Sessions.Issue(identity)
	if err != nil {
		logger.Error("IssueTokenHandler: failed to issue token", zap.Error(err))
		utils.WriteError(c, err)
		return
	}

	setSessionCookie(c, token, int(h.Sessions.TTL().Seconds()))
	c.JSON(http.StatusOK, gin.H{"checkingtoken": token})
}

// LogoutHandler handles POST /logout. It always succeeds, session or not.
func (h *SessionHandler) LogoutHandler(c *gin.Context) {
	setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// setSessionCookie writes the token cookie with the cross-site policy the
// web client needs. A negative maxAge expires the cookie immediately.
func setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(session.CookieName, value, maxAge, "/", "", true, true)
}
