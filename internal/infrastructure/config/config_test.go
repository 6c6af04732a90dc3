package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinstack-blog-service/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, 5000, cfg.HTTPServer.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTPServer.ReadTimeout)
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, "posts.json", cfg.Storage.Path)
	assert.Equal(t, 0, cfg.GRPCServer.Port)
	assert.Equal(t, "blog:posts", cfg.Redis.Key)
	assert.Equal(t, "blog/posts", cfg.MQTT.TopicPrefix)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	body := []byte(`
env: prod
http_server:
  port: 8080
storage:
  driver: yaml-is-not-a-driver
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), body, 0o644))

	t.Run("InvalidDriverRejected", func(t *testing.T) {
		_, err := config.Load(dir)
		assert.ErrorContains(t, err, "invalid config")
	})

	t.Run("EnvOverridesFile", func(t *testing.T) {
		t.Setenv("BLOG_STORAGE_DRIVER", "memory")
		t.Setenv("BLOG_HTTP_SERVER_PORT", "9090")

		cfg, err := config.Load(dir)

		require.NoError(t, err)
		assert.Equal(t, "prod", cfg.Env)
		assert.Equal(t, "memory", cfg.Storage.Driver)
		assert.Equal(t, 9090, cfg.HTTPServer.Port)
	})
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("env: [unclosed"), 0o644))

	_, err := config.Load(dir)

	assert.ErrorContains(t, err, "failed to read config file")
}

func TestDatabase_DSN(t *testing.T) {
	db := config.Database{Username: "u", Password: "p", Host: "h", Port: "5432", DbName: "blog"}
	assert.Equal(t, "postgresql://u:p@h:5432/blog?sslmode=disable", db.DSN())
}

func TestMustLoad_ReadsGivenDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("storage:\n  driver: memory\n"), 0o644))

	cfg := config.MustLoad(dir)

	assert.Equal(t, "memory", cfg.Storage.Driver)
}
