package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_OverridesFields(t *testing.T) {
	t.Setenv("WEBMANAGER_ADDRESS", ":4000")
	t.Setenv("WEBMANAGER_DATABASE_DSN", "postgres://env")
	t.Setenv("WEBMANAGER_SECRET_KEY", "env-secret")
	t.Setenv("WEBMANAGER_TOKEN_TTL", "2h")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":4000", c.EndpointAddr)
	assert.Equal(t, "postgres://env", c.DatabaseDSN)
	assert.Equal(t, "env-secret", c.SecretKey)
	assert.Equal(t, 2*time.Hour, c.TokenValidityDuration)
}

func TestParseEnv_IgnoresUnsetAndInvalid(t *testing.T) {
	t.Setenv("WEBMANAGER_TOKEN_TTL", "not-a-duration")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":3000", c.EndpointAddr)
	assert.Equal(t, 1*time.Hour, c.TokenValidityDuration, "invalid TTL must keep the default")
}
