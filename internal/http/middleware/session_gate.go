package middleware

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arifrizal16/sahasrara/domain"
)

// Context keys set by the gate for downstream handlers.
const (
	CtxUserID   = "user_id"
	CtxUserName = "user_name"
	CtxUserRole = "user_role"
)

// SessionGate guards every route behind the session cookie. Only the login
// page, the login API and the session-check API pass through unauthenticated;
// the check endpoint has to answer 401 itself to drive the client countdown.
type SessionGate struct {
	codec domain.SessionCodec
	now   func() time.Time
}

// NewSessionGate creates the auth gate middleware
func NewSessionGate(codec domain.SessionCodec) *SessionGate {
	return &SessionGate{codec: codec, now: time.Now}
}

var exemptPaths = map[string]bool{
	"/api/auth/login": true,
	"/api/auth/check": true,
	"/healthz":        true,
}

// Handle returns the gin middleware enforcing the gate.
func (g *SessionGate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if path == "/login" {
			// A still-valid session bounces straight back to the dashboard.
			if session, ok := g.validSession(c); ok && session.Authenticated {
				c.Redirect(http.StatusFound, "/")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		if exemptPaths[path] {
			c.Next()
			return
		}

		cookie, err := c.Cookie(domain.SessionCookieName)
		if err != nil || cookie == "" {
			g.deny(c, false)
			return
		}

		session, err := g.codec.Decode(cookie)
		if err != nil || !session.Authenticated {
			g.deny(c, false)
			return
		}

		if session.Expired(g.now()) {
			g.deny(c, true)
			return
		}

		c.Set(CtxUserID, session.UserID)
		c.Set(CtxUserName, session.UserName)
		c.Set(CtxUserRole, session.UserRole)
		c.Next()
	}
}

func (g *SessionGate) validSession(c *gin.Context) (*domain.Session, bool) {
	cookie, err := c.Cookie(domain.SessionCookieName)
	if err != nil || cookie == "" {
		return nil, false
	}
	session, err := g.codec.Decode(cookie)
	if err != nil || !session.Authenticated || session.Expired(g.now()) {
		return nil, false
	}
	return session, true
}

// deny rejects the request: API callers get a 401 JSON body, page requests a
// redirect to the login page with the original path preserved.
func (g *SessionGate) deny(c *gin.Context, expired bool) {
	path := c.Request.URL.Path

	if strings.HasPrefix(path, "/api/") {
		msg := "Not authenticated"
		if expired {
			msg = "Session expired"
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": msg})
		return
	}

	q := url.Values{}
	q.Set("redirect", path)
	if expired {
		q.Set("expired", "true")
	}
	c.Redirect(http.StatusFound, "/login?"+q.Encode())
	c.Abort()
}
