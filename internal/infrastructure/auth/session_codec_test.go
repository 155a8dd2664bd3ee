package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arifrizal16/sahasrara/domain"
)

func newTestCodec() domain.SessionCodec {
	return NewSessionCodec("test-secret", "sahasrara-test")
}

func TestSessionCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec()
	now := time.Now().Truncate(time.Second)

	session := &domain.Session{
		Authenticated: true,
		UserID:        7,
		UserName:      "Admin User",
		UserRole:      domain.RoleAdmin,
		IssuedAt:      now,
		ExpiresAt:     now.Add(30 * time.Minute),
		RememberMe:    true,
	}

	token, err := codec.Encode(session)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := codec.Decode(token)
	require.NoError(t, err)

	assert.True(t, decoded.Authenticated)
	assert.Equal(t, uint(7), decoded.UserID)
	assert.Equal(t, "Admin User", decoded.UserName)
	assert.Equal(t, domain.RoleAdmin, decoded.UserRole)
	assert.True(t, decoded.RememberMe)
	assert.Equal(t, now.Unix(), decoded.IssuedAt.Unix())
	assert.Equal(t, now.Add(30*time.Minute).Unix(), decoded.ExpiresAt.Unix())
}

func TestSessionCodec_Decode_Malformed(t *testing.T) {
	codec := newTestCodec()

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"raw json", `{"authenticated":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(tt.token)
			assert.ErrorIs(t, err, domain.ErrSessionMalformed)
		})
	}
}

func TestSessionCodec_Decode_Tampered(t *testing.T) {
	codec := newTestCodec()
	now := time.Now()

	token, err := codec.Encode(&domain.Session{
		Authenticated: true,
		UserID:        1,
		IssuedAt:      now,
		ExpiresAt:     now.Add(30 * time.Minute),
	})
	require.NoError(t, err)

	// Flip a character in the payload; the signature no longer matches.
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'a' {
		tampered[mid] = 'b'
	} else {
		tampered[mid] = 'a'
	}

	_, err = codec.Decode(string(tampered))
	assert.ErrorIs(t, err, domain.ErrSessionMalformed)
}

func TestSessionCodec_Decode_WrongKey(t *testing.T) {
	codec := newTestCodec()
	other := NewSessionCodec("other-secret", "sahasrara-test")
	now := time.Now()

	token, err := other.Encode(&domain.Session{
		Authenticated: true,
		IssuedAt:      now,
		ExpiresAt:     now.Add(time.Minute),
	})
	require.NoError(t, err)

	_, err = codec.Decode(token)
	assert.ErrorIs(t, err, domain.ErrSessionMalformed)
}

func TestSessionCodec_Decode_ExpiredStillDecodes(t *testing.T) {
	// An expired token is not malformed; callers decide how to report it.
	codec := newTestCodec()
	now := time.Now()

	token, err := codec.Encode(&domain.Session{
		Authenticated: true,
		UserID:        3,
		IssuedAt:      now.Add(-time.Hour),
		ExpiresAt:     now.Add(-30 * time.Minute),
	})
	require.NoError(t, err)

	decoded, err := codec.Decode(token)
	require.NoError(t, err)
	assert.True(t, decoded.Expired(now))
}
