package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `confirm_kill: true
dry_run: true
log_file: /tmp/portkiller.log
theme:
  highlight: "99"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	require.True(t, cfg.ConfirmKill)
	require.True(t, cfg.DryRun)
	require.Equal(t, "/tmp/portkiller.log", cfg.LogFile)
	require.Equal(t, "99", cfg.Theme.Highlight)
	require.Equal(t, Defaults().Theme.Subtle, cfg.Theme.Subtle)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("PORTKILLER_CONFIRM_KILL", "true")
	t.Setenv("PORTKILLER_THEME_ERROR", "9")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	require.True(t, cfg.ConfirmKill)
	require.Equal(t, "9", cfg.Theme.Error)
}
