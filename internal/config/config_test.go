package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("APP_PORT", "8080")
		t.Setenv("APP_ENV", "test")
		t.Setenv("ORDER_MISSING_PRODUCT_POLICY", "")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, MissingProductDegrade, cfg.MissingProductPolicy)
	})

	t.Run("Strict missing product policy", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("ORDER_MISSING_PRODUCT_POLICY", "strict")

		cfg := LoadConfig()
		assert.Equal(t, MissingProductStrict, cfg.MissingProductPolicy)
	})
}

func TestParseMissingProductPolicy(t *testing.T) {
	assert.Equal(t, MissingProductDegrade, parseMissingProductPolicy(""))
	assert.Equal(t, MissingProductDegrade, parseMissingProductPolicy("bogus"))
	assert.Equal(t, MissingProductStrict, parseMissingProductPolicy("strict"))
}
