// Package session issues, verifies, and expires the signed stateless
// credential carried in the session cookie. There is a single token
// mechanism: an HS256 JWT whose subject is the principal id, with one
// configurable TTL (24h by default). Nothing is stored server-side, so a
// signed-but-expired token is the only terminal state.
package session

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// CookieName is the cookie the session token travels in.
const CookieName = "session"

const defaultTTL = 24 * time.Hour

// ErrInvalidToken covers every verification failure: missing, malformed,
// wrong algorithm, bad signature, or expired. Callers cannot distinguish
// them; all collapse to "not authenticated".
var ErrInvalidToken = errors.New("invalid session token")

// Claims is the verified content of a session token.
type Claims struct {
	UserID    int64
	ExpiresAt time.Time
}

// Manager signs and verifies session tokens and owns the cookie policy.
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

// NewManager builds a Manager. secure controls the cookie Secure flag and
// should be false only in local development.
func NewManager(secret string, ttl time.Duration, secure bool) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl, secure: secure}
}

// TTL returns the configured token lifetime.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue mints a signed token for the given principal id, expiring after
// the configured TTL.
func (m *Manager) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify parses and checks raw. It fails closed: every failure path returns
// ErrInvalidToken and nothing else.
func (m *Manager) Verify(raw string) (Claims, error) {
	if raw == "" {
		return Claims{}, ErrInvalidToken
	}
	parsed, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	rc, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || rc.ExpiresAt == nil {
		return Claims{}, ErrInvalidToken
	}
	id, err := strconv.ParseInt(rc.Subject, 10, 64)
	if err != nil || id <= 0 {
		return Claims{}, ErrInvalidToken
	}
	return Claims{UserID: id, ExpiresAt: rc.ExpiresAt.Time}, nil
}

// SetCookie issues a token for userID and attaches it to the response as
// the session cookie.
func (m *Manager) SetCookie(c echo.Context, userID int64) error {
	token, err := m.Issue(userID)
	if err != nil {
		return err
	}
	ck := m.cookie(token)
	ck.MaxAge = int(m.ttl / time.Second)
	c.SetCookie(ck)
	return nil
}

// ClearCookie expires the session cookie on the client. There is no
// server-side state to invalidate.
func (m *Manager) ClearCookie(c echo.Context) {
	ck := m.cookie("")
	ck.MaxAge = -1
	ck.Expires = time.Unix(0, 0)
	c.SetCookie(ck)
}

func (m *Manager) cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// FromRequest extracts the raw token from the request: the session cookie
// first, then a bearer Authorization header for cookie-less API clients.
// Both carry the same token; there is no second signing scheme.
func FromRequest(c echo.Context) string {
	if ck, err := c.Cookie(CookieName); err == nil && ck.Value != "" {
		return ck.Value
	}
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
