package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"envlinks/internal/config"
	"envlinks/internal/types"
	"envlinks/internal/validation"
)

func run(t *testing.T, cfg config.Config, args ...string) {
	root, err := New(cfg)
	require.NoError(t, err)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
}

func download(t *testing.T, cfg config.Config) types.Configuration {
	location := filepath.Join(t.TempDir(), "out.json")
	run(t, cfg, "settings", "download", "--location", location)

	raw, err := os.ReadFile(location)
	require.NoError(t, err)
	parsed, err := validation.Parse(raw)
	require.NoError(t, err)
	return parsed
}

func TestSettingsLifecycle(t *testing.T) {
	dir := t.TempDir()
	defaultPath := filepath.Join(dir, "urls.json")
	require.NoError(t, os.WriteFile(defaultPath,
		[]byte(`{"environments":[{"name":"Production","class":"p","urls":[{"name":"Web","url":"https://prod"}]}]}`), 0o600))
	customPath := filepath.Join(dir, "custom.json")
	require.NoError(t, os.WriteFile(customPath,
		[]byte(`{"environments":[{"name":"Dev","class":"x","urls":[{"name":"A","url":"http://a"}]}]}`), 0o600))
	invalidPath := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalidPath, []byte(`{"environments":[{"name":"X","class":"c"}]}`), 0o600))

	cfg := config.Default()
	cfg.DatabasePath = filepath.Join(dir, "db", "envlinks.db")
	cfg.DefaultConfigPath = defaultPath

	assert.Equal(t, "Production", download(t, cfg).Environments[0].Name)

	run(t, cfg, "settings", "load", "--file", customPath)
	assert.Equal(t, "Dev", download(t, cfg).Environments[0].Name)

	run(t, cfg, "settings", "load", "--file", invalidPath)
	assert.Equal(t, "Dev", download(t, cfg).Environments[0].Name)

	run(t, cfg, "settings", "reset", "--yes")
	assert.Equal(t, "Production", download(t, cfg).Environments[0].Name)
}

func TestMissingDefaultDownloadsEmpty(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.DatabasePath = filepath.Join(dir, "envlinks.db")
	cfg.DefaultConfigPath = filepath.Join(dir, "missing.json")

	assert.Equal(t, types.EmptyConfiguration(), download(t, cfg))
}
