package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "product-pricing-app", cfg.JWTIssuer)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, "5-M", cfg.LoginRateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 100000, cfg.RevokedTokenCapacity)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("PORT", "9000")
	v.Set("STORAGE_DRIVER", "MEMORY")
	v.Set("JWT_EXPIRY_DURATION", "15m")
	v.Set("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	v.Set("IS_PRODUCTION", "true")
	v.Set("REVOKED_TOKEN_CAPACITY", "500")

	cfg := fromViper(v)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiryDuration)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 500, cfg.RevokedTokenCapacity)
}

func TestFromViper_InvalidValuesFallBack(t *testing.T) {
	v := viper.New()
	v.Set("STORAGE_DRIVER", "sqlite")
	v.Set("JWT_EXPIRY_DURATION", "soon")
	v.Set("REVOKED_TOKEN_CAPACITY", "-1")

	cfg := fromViper(v)

	assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 100000, cfg.RevokedTokenCapacity)
}
