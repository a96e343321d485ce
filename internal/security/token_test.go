package security

import (
	"testing"
	"time"

	"fleetdesk-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_RoundTrip(t *testing.T) {
	mgr := NewTokenManager(testSecret, 15*time.Minute, 7*24*time.Hour)

	token, err := mgr.GenerateAccessToken(7, 1, "owner@example.com", domain.RoleAdmin)
	assert.NoError(t, err)

	claims, err := mgr.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int32(7), claims.UserID)
	assert.Equal(t, int32(1), claims.OrgID)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.Type)
}

func TestTokenManager_RefreshTokenType(t *testing.T) {
	mgr := NewTokenManager(testSecret, 15*time.Minute, 7*24*time.Hour)

	token, err := mgr.GenerateRefreshToken(7, 1, "owner@example.com")
	assert.NoError(t, err)

	claims, err := mgr.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
}

func TestTokenManager_RejectsBadTokens(t *testing.T) {
	mgr := NewTokenManager(testSecret, 15*time.Minute, 7*24*time.Hour)

	t.Run("Garbage", func(t *testing.T) {
		_, err := mgr.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewTokenManager("ffffffffffffffffffffffffffffffff", 15*time.Minute, time.Hour)
		token, err := other.GenerateAccessToken(7, 1, "owner@example.com", domain.RoleAdmin)
		assert.NoError(t, err)

		_, err = mgr.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := NewTokenManager(testSecret, -time.Minute, time.Hour)
		token, err := expired.GenerateAccessToken(7, 1, "owner@example.com", domain.RoleAdmin)
		assert.NoError(t, err)

		_, err = mgr.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
