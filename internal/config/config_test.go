package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidateProduction(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:       "8080",
			Env:        "production",
			JWTSecret:  "secure-secret-at-least-32-chars-long",
			DBPassword: "secure-password",
			DBSSLMode:  "require",
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("default JWT secret rejected", func(t *testing.T) {
		c := base()
		c.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, c.Validate())
	})

	t.Run("short JWT secret rejected", func(t *testing.T) {
		c := base()
		c.JWTSecret = "short"
		assert.Error(t, c.Validate())
	})

	t.Run("default DB password rejected", func(t *testing.T) {
		c := base()
		c.DBPassword = "password"
		assert.Error(t, c.Validate())
	})

	t.Run("missing port rejected", func(t *testing.T) {
		c := base()
		c.Port = ""
		assert.Error(t, c.Validate())
	})
}

func TestConfigValidateDevelopmentIsLenient(t *testing.T) {
	c := &Config{
		Port:      "8080",
		Env:       "development",
		JWTSecret: "dev-secret",
	}
	assert.NoError(t, c.Validate())
}

func TestIsProduction(t *testing.T) {
	assert.True(t, (&Config{Env: "production"}).IsProduction())
	assert.True(t, (&Config{Env: "prod"}).IsProduction())
	assert.False(t, (&Config{Env: "development"}).IsProduction())
	assert.False(t, (&Config{Env: "test"}).IsProduction())
}
