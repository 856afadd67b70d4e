package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rewear/exchange/internal/auth"
)

func TestToken_RoundTrip(t *testing.T) {
	token, err := auth.GenerateToken(42, true, "secret", time.Hour)
	assert.NoError(t, err)

	claims, err := auth.ParseToken(token, "secret")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.True(t, claims.IsAdmin)
}

func TestToken_WrongSecret(t *testing.T) {
	token, err := auth.GenerateToken(42, false, "secret", time.Hour)
	assert.NoError(t, err)

	_, err = auth.ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestToken_Expired(t *testing.T) {
	token, err := auth.GenerateToken(42, false, "secret", -time.Minute)
	assert.NoError(t, err)

	_, err = auth.ParseToken(token, "secret")
	assert.Error(t, err)
}
