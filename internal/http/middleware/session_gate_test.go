package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arifrizal16/sahasrara/domain"
	"github.com/arifrizal16/sahasrara/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var gateNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

// testCodec maps fixed tokens to sessions so the gate can be exercised
// without real signing.
func testCodec() *mocks.MockSessionCodec {
	codec := mocks.NewMockSessionCodec()
	codec.DecodeFunc = func(token string) (*domain.Session, error) {
		switch token {
		case "valid":
			return &domain.Session{
				Authenticated: true,
				UserID:        1,
				UserName:      "Admin",
				UserRole:      domain.RoleAdmin,
				ExpiresAt:     gateNow.Add(time.Hour),
			}, nil
		case "expired":
			return &domain.Session{
				Authenticated: true,
				UserID:        1,
				ExpiresAt:     gateNow.Add(-time.Minute),
			}, nil
		case "unauthenticated":
			return &domain.Session{ExpiresAt: gateNow.Add(time.Hour)}, nil
		default:
			return nil, domain.ErrSessionMalformed
		}
	}
	return codec
}

func newGatedRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gate := &SessionGate{codec: testCodec(), now: func() time.Time { return gateNow }}

	r := gin.New()
	r.Use(gate.Handle())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "dashboard") })
	r.GET("/login", func(c *gin.Context) { c.String(http.StatusOK, "login page") })
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.POST("/api/auth/login", func(c *gin.Context) { c.String(http.StatusOK, "login api") })
	r.GET("/api/auth/check", func(c *gin.Context) { c.String(http.StatusOK, "check api") })
	r.GET("/api/transactions", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":   c.GetUint(CtxUserID),
			"userName": c.GetString(CtxUserName),
			"userRole": c.GetString(CtxUserRole),
		})
	})
	return r
}

func doGated(r *gin.Engine, method, path, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: domain.SessionCookieName, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionGate_ExemptPaths(t *testing.T) {
	r := newGatedRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/login"},
		{http.MethodGet, "/healthz"},
		{http.MethodPost, "/api/auth/login"},
		{http.MethodGet, "/api/auth/check"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := doGated(r, tt.method, tt.path, "")
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestSessionGate_PageRedirects(t *testing.T) {
	r := newGatedRouter(t)

	tests := []struct {
		name     string
		cookie   string
		location string
	}{
		{"no cookie", "", "/login?redirect=%2F"},
		{"malformed cookie", "garbage", "/login?redirect=%2F"},
		{"unauthenticated session", "unauthenticated", "/login?redirect=%2F"},
		{"expired session", "expired", "/login?expired=true&redirect=%2F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGated(r, http.MethodGet, "/", tt.cookie)
			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, tt.location, w.Header().Get("Location"))
		})
	}
}

func TestSessionGate_APIDenied(t *testing.T) {
	r := newGatedRouter(t)

	tests := []struct {
		name    string
		cookie  string
		message string
	}{
		{"no cookie", "", "Not authenticated"},
		{"malformed cookie", "garbage", "Not authenticated"},
		{"expired session", "expired", "Session expired"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGated(r, http.MethodGet, "/api/transactions", tt.cookie)
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.message, body["error"])
		})
	}
}

func TestSessionGate_ValidSessionSetsContext(t *testing.T) {
	r := newGatedRouter(t)

	w := doGated(r, http.MethodGet, "/api/transactions", "valid")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(1), body["userID"])
	assert.Equal(t, "Admin", body["userName"])
	assert.Equal(t, "ADMIN", body["userRole"])
}

func TestSessionGate_LoginBounceWhenAuthenticated(t *testing.T) {
	r := newGatedRouter(t)

	w := doGated(r, http.MethodGet, "/login", "valid")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// Expired sessions still land on the login page.
	w = doGated(r, http.MethodGet, "/login", "expired")
	assert.Equal(t, http.StatusOK, w.Code)
}
