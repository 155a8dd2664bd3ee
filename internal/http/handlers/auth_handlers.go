package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arifrizal16/sahasrara/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc      domain.AuthService
	accountRepo  domain.AccountRepository
	cookieSecure bool
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, accountRepo domain.AccountRepository, cookieSecure bool) *AuthHandlers {
	return &AuthHandlers{
		authSvc:      authSvc,
		accountRepo:  accountRepo,
		cookieSecure: cookieSecure,
	}
}

// LoginRequest represents the login request
type LoginRequest struct {
	PIN        string `json:"pin"`
	RememberMe bool   `json:"rememberMe"`
}

// ChangePINRequest represents the PIN rotation request
type ChangePINRequest struct {
	CurrentPIN string `json:"currentPin"`
	NewPIN     string `json:"newPin"`
}

// Login handles PIN login and mints the session cookie
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PIN == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "PIN diperlukan"})
		return
	}

	if len(req.PIN) != 4 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "PIN harus 4 digit"})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.PIN, req.RememberMe, c.ClientIP())
	if err != nil {
		switch err {
		case domain.ErrInvalidCredentials:
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "PIN salah"})
		case domain.ErrTooManyAttempts:
			c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "error": "Terlalu banyak percobaan login, coba lagi nanti"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		}
		return
	}

	maxAge := int(result.Session.ExpiresAt.Sub(result.Session.IssuedAt).Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(domain.SessionCookieName, result.Token, maxAge, "/", "", h.cookieSecure, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login berhasil",
		"user": gin.H{
			"id":    result.Account.ID,
			"name":  result.Account.Name,
			"email": result.Account.Email,
			"role":  result.Account.Role,
		},
		"session": gin.H{
			"expiresAt":  result.Session.ExpiresAt.UnixMilli(),
			"rememberMe": result.Session.RememberMe,
		},
	})
}

// Logout clears the session cookie. Idempotent: there is nothing server-side
// to revoke.
func (h *AuthHandlers) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(domain.SessionCookieName, "", -1, "/", "", h.cookieSecure, true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logout berhasil",
	})
}

// Check reports session validity for the dashboard countdown
func (h *AuthHandlers) Check(c *gin.Context) {
	cookie, err := c.Cookie(domain.SessionCookieName)
	if err != nil || cookie == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "No session found"})
		return
	}

	session, err := h.authSvc.CheckSession(cookie)
	if err != nil {
		switch err {
		case domain.ErrSessionMalformed:
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid session format"})
		case domain.ErrSessionInvalid:
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Not authenticated"})
		case domain.ErrSessionExpired:
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Session expired"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"session": gin.H{
			"authenticated": true,
			"expiresAt":     session.ExpiresAt.UnixMilli(),
			"rememberMe":    session.RememberMe,
		},
	})
}

// ChangePIN rotates the credential of the account matching the current PIN
func (h *AuthHandlers) ChangePIN(c *gin.Context) {
	var req ChangePINRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CurrentPIN == "" || req.NewPIN == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "PIN saat ini dan PIN baru diperlukan"})
		return
	}

	account, maskedPIN, err := h.authSvc.ChangePIN(c.Request.Context(), req.CurrentPIN, req.NewPIN)
	if err != nil {
		switch err {
		case domain.ErrPINFormat:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "PIN harus 4 digit angka"})
		case domain.ErrPINUnchanged:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "PIN baru tidak boleh sama dengan PIN saat ini"})
		case domain.ErrInvalidCredentials:
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "PIN saat ini salah"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "PIN berhasil diubah",
		"data": gin.H{
			"userName": account.Name,
			"newPin":   maskedPIN,
		},
	})
}

// Accounts lists all staff accounts without credential data
func (h *AuthHandlers) Accounts(c *gin.Context) {
	accounts, err := h.accountRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}

	data := make([]gin.H, 0, len(accounts))
	for _, account := range accounts {
		data = append(data, gin.H{
			"id":        account.ID,
			"name":      account.Name,
			"email":     account.Email,
			"role":      account.Role,
			"isActive":  account.IsActive,
			"createdAt": account.CreatedAt,
			"updatedAt": account.UpdatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Daftar User",
		"data":    data,
	})
}
