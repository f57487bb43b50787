package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidFile(t *testing.T) {
	path := writeTempConfig(t, `{"port": 9000, "verbose": true}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.Verbose)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfig_MalformedJSON(t *testing.T) {
	path := writeTempConfig(t, `{"port": `)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_PortRange(t *testing.T) {
	cfg := &Config{Port: 70000}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: -1}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Port: 8480}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingOverrideFile(t *testing.T) {
	cfg := &Config{RoleCatalog: filepath.Join(t.TempDir(), "roles.json")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "role_catalog")
}

func TestValidate_ExistingOverrideFile(t *testing.T) {
	path := writeTempConfig(t, `{"roles": []}`)
	cfg := &Config{RoleCatalog: path}
	assert.NoError(t, cfg.Validate())
}

func TestEffectivePort_Default(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, DefaultPort, cfg.EffectivePort())

	cfg.Port = 9999
	assert.Equal(t, 9999, cfg.EffectivePort())
}
