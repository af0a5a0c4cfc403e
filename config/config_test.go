package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryConfig() *Config {
	cfg := &Config{}
	cfg.Storage.Driver = StorageDriverMemory
	cfg.SecretKey.Session = "0123456789abcdef0123"

	return cfg
}

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, PasswordSchemeSalted, cfg.Auth.PasswordScheme)
	assert.Equal(t, defaultSaltLength, cfg.Auth.SaltLength)
	assert.Equal(t, "user_id", cfg.Cookie.Name)
	assert.Equal(t, 10, cfg.Blog.PageSize)
}

func TestValidate(t *testing.T) {
	t.Run("memory driver with secret is valid", func(t *testing.T) {
		cfg := newMemoryConfig()
		cfg.ApplyDefaults()
		require.NoError(t, cfg.Validate())
	})

	t.Run("short session secret is rejected", func(t *testing.T) {
		cfg := newMemoryConfig()
		cfg.SecretKey.Session = "short"
		cfg.ApplyDefaults()
		assert.ErrorContains(t, cfg.Validate(), "secretKey.session")
	})

	t.Run("postgres driver requires a host", func(t *testing.T) {
		cfg := newMemoryConfig()
		cfg.Storage.Driver = StorageDriverPostgres
		cfg.ApplyDefaults()
		assert.ErrorContains(t, cfg.Validate(), "postgres.master.host")
	})

	t.Run("unknown password scheme is rejected", func(t *testing.T) {
		cfg := newMemoryConfig()
		cfg.ApplyDefaults()
		cfg.Auth.PasswordScheme = "md5"
		assert.ErrorContains(t, cfg.Validate(), "unknown password scheme")
	})
}

func TestPostgresConfig_DSN(t *testing.T) {
	pg := &PostgresConfig{Database: "blog"}
	dsn := pg.DSN(ConnectionConfig{Host: "db", Port: "5432", UserName: "u", Password: "p@ss"})

	assert.Equal(t, "postgres://u:p%40ss@db:5432/blog?sslmode=disable", dsn)
}
