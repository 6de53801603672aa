package appconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_SubstitutesEnvironment(t *testing.T) {
	t.Setenv("TEST_DATABASE_URL", "postgres://u:p&q@db:5432/socialize?sslmode=disable")

	path := writeConfig(t, `
host: socialize.example.com
basePath: /api/v1
docsPath: /api/v1/docs
database:
  source: "{{ .TEST_DATABASE_URL }}"
pulsar:
  url: pulsar://pulsar:6650
  topicProducer: persistent://public/default/group-events
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "socialize.example.com", cfg.Host)
	assert.Equal(t, "/api/v1", cfg.BasePath)
	assert.Equal(t, "/api/v1/docs", cfg.DocsPath)
	assert.Equal(t, "postgres://u:p&q@db:5432/socialize?sslmode=disable", cfg.Database.Source)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "socialize-services", cfg.Pulsar.Subscription)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "host: localhost\n"))
	require.NoError(t, err)

	assert.Equal(t, "/api", cfg.BasePath)
	assert.Equal(t, "/docs", cfg.DocsPath)
	assert.Empty(t, cfg.Pulsar.URL)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "database:\n  driver: mysql\n"))
	assert.ErrorContains(t, err, "unsupported database driver")

	_, err = LoadConfig(writeConfig(t, "pulsar:\n  url: pulsar://pulsar:6650\n"))
	assert.ErrorContains(t, err, "topicProducer")
}
