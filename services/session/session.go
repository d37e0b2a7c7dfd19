package session

import (
	"fmt"
	"time"

	"cardoctor/models"
	"cardoctor/utils"
)

// CookieName is the cookie that carries the session token.
const CookieName = "token"

// SessionService issues and verifies signed session tokens. Sessions are not
// stored server-side: a token is valid while its signature checks out and it
// has not expired.
type SessionService interface {
	Issue(identity models.Identity) (string, error)
	Verify(token string) (models.Identity, error)
	TTL() time.Duration
}

// DefaultSessionService signs tokens with a shared HMAC secret.
type DefaultSessionService struct {
	Secret   []byte
	Lifetime time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

func NewSessionService(secret string, lifetime time.Duration) *DefaultSessionService {
	return &DefaultSessionService{Secret: []byte(secret), Lifetime: lifetime, Now: time.Now}
}

func (s *DefaultSessionService) TTL() time.Duration {
	return s.Lifetime
}

// Issue signs every field of identity into a token that expires after the
// session lifetime. The identity must carry an email.
func (s *DefaultSessionService) Issue(identity models.Identity) (string, error) {
	if identity.Email() == "" {
		return "", fmt.Errorf("%w: identity must include an email", utils.ErrBadRequest)
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return utils.GenerateToken(identity, s.Secret, now(), s.Lifetime)
}

// Verify checks the token signature and expiry and returns the identity it
// carries.
func (s *DefaultSessionService) Verify(token string) (models.Identity, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: missing token", utils.ErrUnauthorized)
	}
	claims, err := utils.ValidateToken(token, s.Secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrUnauthorized, err)
	}
	identity := models.Identity(claims)
	if identity.Email() == "" {
		return nil, fmt.Errorf("%w: token has no email claim", utils.ErrUnauthorized)
	}
	return identity, nil
}
