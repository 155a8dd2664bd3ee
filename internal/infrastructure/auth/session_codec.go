package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/arifrizal16/sahasrara/domain"
)

// SessionCodecImpl implements domain.SessionCodec with HS256-signed tokens.
// The cookie is opaque and tamper-evident; its lifetime is still enforced by
// callers so an expired token stays distinguishable from a forged one.
type SessionCodecImpl struct {
	secretKey []byte
	issuer    string
}

// NewSessionCodec creates a new session codec
func NewSessionCodec(secretKey, issuer string) domain.SessionCodec {
	return &SessionCodecImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
	}
}

// Encode implements domain.SessionCodec
func (c *SessionCodecImpl) Encode(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"authenticated": session.Authenticated,
		"user_id":       session.UserID,
		"user_name":     session.UserName,
		"user_role":     session.UserRole,
		"remember_me":   session.RememberMe,
		"iss":           c.issuer,
		"iat":           session.IssuedAt.Unix(),
		"exp":           session.ExpiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secretKey)
}

// Decode implements domain.SessionCodec
func (c *SessionCodecImpl) Decode(tokenString string) (*domain.Session, error) {
	// Expiry is checked by callers, not here, so parse without claim
	// validation; only the signature decides malformed vs. not.
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrSessionMalformed
		}
		return c.secretKey, nil
	}, jwt.WithoutClaimsValidation())

	if err != nil || !token.Valid {
		return nil, domain.ErrSessionMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrSessionMalformed
	}

	authenticated, ok := claims["authenticated"].(bool)
	if !ok {
		return nil, domain.ErrSessionMalformed
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, domain.ErrSessionMalformed
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrSessionMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrSessionMalformed
	}

	session := &domain.Session{
		Authenticated: authenticated,
		UserID:        uint(userID),
		IssuedAt:      time.Unix(int64(iat), 0),
		ExpiresAt:     time.Unix(int64(exp), 0),
	}

	if name, ok := claims["user_name"].(string); ok {
		session.UserName = name
	}
	if role, ok := claims["user_role"].(string); ok {
		session.UserRole = role
	}
	if remember, ok := claims["remember_me"].(bool); ok {
		session.RememberMe = remember
	}

	return session, nil
}
