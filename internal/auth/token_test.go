package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"STOREHUB_BACK-END/internal/config"
)

func TestTokenRoundTrip(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", TokenTTL: time.Hour}
	userID := uuid.New()

	token, err := GenerateToken(userID, "ada@example.com", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(token, cfg)
	require.NoError(t, err)
	require.Equal(t, userID, claims.UserID)
	require.Equal(t, "ada@example.com", claims.Email)
}

func TestTokenWrongSecret(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", TokenTTL: time.Hour}

	token, err := GenerateToken(uuid.New(), "ada@example.com", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, &config.JWTConfig{Secret: "other-secret"})
	require.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", TokenTTL: -time.Minute}

	token, err := GenerateToken(uuid.New(), "ada@example.com", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, cfg)
	require.Error(t, err)
}

func TestTokenMalformed(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret", TokenTTL: time.Hour}

	_, err := ValidateToken("not.a.token", cfg)
	require.Error(t, err)
}
