package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBcryptCost(t *testing.T) {
	t.Setenv("BCRYPT_COST", "")
	require.Equal(t, DefaultBcryptCost, getBcryptCost("BCRYPT_COST"))

	t.Setenv("BCRYPT_COST", "12")
	require.Equal(t, 12, getBcryptCost("BCRYPT_COST"))

	// Misconfigured values fall back instead of reaching bcrypt.
	t.Setenv("BCRYPT_COST", "banana")
	require.Equal(t, DefaultBcryptCost, getBcryptCost("BCRYPT_COST"))

	t.Setenv("BCRYPT_COST", "-3")
	require.Equal(t, DefaultBcryptCost, getBcryptCost("BCRYPT_COST"))

	t.Setenv("BCRYPT_COST", "0")
	require.Equal(t, DefaultBcryptCost, getBcryptCost("BCRYPT_COST"))
}

func TestValidateRequiresJWTSecret(t *testing.T) {
	cfg := &Config{}
	require.Error(t, cfg.Validate())

	cfg.JWT.Secret = "test-secret"
	require.NoError(t, cfg.Validate())
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "postgres"
	cfg.Database.Password = "pw"
	cfg.Database.Name = "storehub"
	cfg.Database.SSLMode = "disable"
	cfg.Database.ConnTimeout = 10e9

	require.Equal(t,
		"postgres://postgres:pw@localhost:5432/storehub?sslmode=disable&connect_timeout=10",
		cfg.GetDSN())
}
