package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "meetfind",
		},
		"secretKey": map[string]any{
			"hs256": "",
		},
	}

	tests := []struct {
		name   string
		rawKey string
		want   string
	}{
		{"aligns with camelCase yaml keys", "POSTGRES_SSLMODE", "postgres.sslMode"},
		{"nested secret key", "SECRETKEY_HS256", "secretKey.hs256"},
		{"unknown segments pass through lowercased", "POSTGRES_PASSWORD", "postgres.password"},
		{"fully unknown key", "HTTP_PORT", "http.port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.rawKey, existing))
		})
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "meetfind",
		Password: "secret",
		DBName:   "meetfind",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestAuthConfig_EffectiveSaltLength(t *testing.T) {
	var cfg *AuthConfig
	assert.Equal(t, 32, cfg.EffectiveSaltLength())

	cfg = &AuthConfig{SaltLength: 16}
	assert.Equal(t, 16, cfg.EffectiveSaltLength())
}
