package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/shared/access"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "local", cfg.Blob.Driver)
	assert.Equal(t, 5*time.Minute, cfg.Database.MaxConnLifetime)
	assert.Equal(t, access.DefaultPolicy(), cfg.Access.Policy)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[app]
port = "9090"
base_path = "/blog"

[database]
host = "db.internal"
retry_delay = "3s"

[redis]
enabled = false

[access]
rules = "category.create=public"
`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DB_HOST", "db.override")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "/blog", cfg.App.BasePath)
	assert.Equal(t, "db.override", cfg.Database.Host)
	assert.Equal(t, 3*time.Second, cfg.Database.RetryDelay)
	assert.False(t, cfg.Redis.Enabled)
	assert.True(t, cfg.Access.Policy.Rule(access.OpCategoryCreate).IsPublic())
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("DB_PORT", "not-a-port")
	t.Setenv("DB_RETRY_DELAY", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PORT")
	assert.Contains(t, err.Error(), "DB_RETRY_DELAY")
}

func TestLoad_InvalidAccessRules(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("ACCESS_RULES", "post.publish=public")

	_, err := Load()
	assert.ErrorContains(t, err, "ACCESS_RULES")
}

func TestValidate_Production(t *testing.T) {
	cfg := Defaults()
	cfg.App.Environment = "production"

	assert.ErrorContains(t, cfg.Validate(), "JWT_SECRET")

	cfg.JWT.Secret = "s3cr3t"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_BlobDriver(t *testing.T) {
	cfg := Defaults()
	cfg.Blob.Driver = "s3"
	assert.Error(t, cfg.Validate())
}

func TestValidate_AdminNeedsPassword(t *testing.T) {
	cfg := Defaults()
	cfg.Admin.Email = "admin@example.com"
	assert.ErrorContains(t, cfg.Validate(), "ADMIN_PASSWORD")
}

func TestDBConfig(t *testing.T) {
	cfg := Defaults()
	db := cfg.DBConfig()

	assert.Equal(t, "blog_dev", db.DBName)
	assert.Equal(t, int32(25), db.MaxConns)
	assert.Equal(t, "disable", db.SSLMode)
}
