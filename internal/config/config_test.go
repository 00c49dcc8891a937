package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "50051", cfg.GRPC.Port)
	assert.Equal(t, false, cfg.GRPC.EnableHTTPS)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "HS256", cfg.JWT.Algorithm)
	assert.Equal(t, 60*time.Minute, cfg.JWT.TTL())
	assert.Equal(t, 14*24*time.Hour, cfg.JWT.RefreshTTL())
	assert.Equal(t, []string{"iss", "aud", "iat", "exp", "sub", "user_id", "email", "session_id"}, cfg.JWT.RequiredClaims)
	assert.True(t, cfg.JWT.BlacklistEnabled)
	assert.Equal(t, 24*time.Hour, cfg.Auth.VerificationTTL)
	assert.Equal(t, time.Hour, cfg.Auth.ResetTTL)
	assert.Equal(t, 3, cfg.Auth.ResetMaxAttempts)
	assert.Equal(t, time.Minute, cfg.Auth.ResetCooldown)
	assert.Equal(t, 3*time.Hour, cfg.Auth.ResetWindow)
	assert.Equal(t, 2, cfg.Auth.ResetWindowLimit)
	assert.False(t, cfg.Auth.RevokeAllOnRefreshReuse)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "log level override",
			envVars: map[string]string{
				"LOG_LEVEL": "-4",
				"LOG_JSON":  "true",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, -4, cfg.LogLevel)
				assert.True(t, cfg.LogJSON)
			},
		},
		{
			name: "grpc config override",
			envVars: map[string]string{
				"GRPC_PORT":                  "8080",
				"GRPC_ENABLE_HTTPS":          "true",
				"GRPC_CERT_FILE_NAME":        "custom.pem",
				"GRPC_PRIVATE_KEY_FILE_NAME": "custom-key.pem",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "8080", cfg.GRPC.Port)
				assert.Equal(t, true, cfg.GRPC.EnableHTTPS)
				assert.Equal(t, "custom.pem", cfg.GRPC.CertFileName)
				assert.Equal(t, "custom-key.pem", cfg.GRPC.PrivateKeyFileName)
			},
		},
		{
			name: "memory driver",
			envVars: map[string]string{
				"DATABASE_DRIVER": "memory",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "memory", cfg.Database.Driver)
			},
		},
		{
			name: "jwt config override",
			envVars: map[string]string{
				"JWT_SECRET":            "0123456789abcdef0123456789abcdef-custom",
				"JWT_ALGORITHM":         "HS512",
				"JWT_TTL":               "15",
				"JWT_REFRESH_TTL":       "1440",
				"JWT_REQUIRED_CLAIMS":   "sub,session_id",
				"JWT_BLACKLIST_ENABLED": "false",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "HS512", cfg.JWT.Algorithm)
				assert.Equal(t, 15*time.Minute, cfg.JWT.TTL())
				assert.Equal(t, 24*time.Hour, cfg.JWT.RefreshTTL())
				assert.Equal(t, []string{"sub", "session_id"}, cfg.JWT.RequiredClaims)
				assert.False(t, cfg.JWT.BlacklistEnabled)
			},
		},
		{
			name: "auth config override",
			envVars: map[string]string{
				"AUTH_RESET_MAX_ATTEMPTS":          "5",
				"AUTH_RESET_TTL":                   "30m",
				"AUTH_REVOKE_ALL_ON_REFRESH_REUSE": "true",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, 5, cfg.Auth.ResetMaxAttempts)
				assert.Equal(t, 30*time.Minute, cfg.Auth.ResetTTL)
				assert.True(t, cfg.Auth.RevokeAllOnRefreshReuse)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)
			tt.expected(cfg)
		})
	}
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{name: "short secret", envVars: map[string]string{"JWT_SECRET": "short"}},
		{name: "unknown algorithm", envVars: map[string]string{"JWT_ALGORITHM": "RS256"}},
		{name: "zero ttl", envVars: map[string]string{"JWT_TTL": "0"}},
		{name: "unknown driver", envVars: map[string]string{"DATABASE_DRIVER": "mysql"}},
		{name: "bad duration", envVars: map[string]string{"AUTH_RESET_TTL": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}
