package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cardoctor/services/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestSessionHandler_IssueToken(t *testing.T) {
	sessions := session.NewSessionService("test-secret", time.Hour)
	handler := NewSessionHandler(sessions)
	c, w := newSessionContext(http.MethodPost, "/jwt", `{"email":"a@x.com","displayName":"Ada"}`)

	handler.IssueTokenHandler(c)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		CheckingToken string `json:"checkingtoken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.CheckingToken)

	identity, err := sessions.Verify(body.CheckingToken)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", identity.Email())
	assert.Equal(t, "Ada", identity["displayName"])

	ck := findCookie(t, w, session.CookieName)
	assert.Equal(t, body.CheckingToken, ck.Value)
	assert.True(t, ck.HttpOnly)
	assert.True(t, ck.Secure)
	assert.Equal(t, http.SameSiteNoneMode, ck.SameSite)
	assert.Equal(t, 3600, ck.MaxAge)
}

func TestSessionHandler_IssueTokenRejectsBadPayload(t *testing.T) {
	handler := NewSessionHandler(session.NewSessionService("test-secret", time.Hour))

	for name, body := range map[string]string{
		"not json":      `email=a@x.com`,
		"not an object": `["a@x.com"]`,
		"no email":      `{"name":"Ada"}`,
	} {
		t.Run(name, func(t *testing.T) {
			c, w := newSessionContext(http.MethodPost, "/jwt", body)

			handler.IssueTokenHandler(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, w.Result().Cookies())
		})
	}
}

func TestSessionHandler_Logout(t *testing.T) {
	handler := NewSessionHandler(session.NewSessionService("test-secret", time.Hour))
	c, w := newSessionContext(http.MethodPost, "/logout", "")

	handler.LogoutHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	ck := findCookie(t, w, session.CookieName)
	assert.Empty(t, ck.Value)
	assert.Equal(t, -1, ck.MaxAge)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}
