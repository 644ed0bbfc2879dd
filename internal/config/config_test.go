package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LOCALEDEMO_CONFIG", "")
	t.Setenv("LOCALEDEMO_LOCALE", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	c, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, "auto", c.Locale)
	require.Equal(t, 0, c.UI.DefaultIndex)
	require.True(t, c.UI.AltScreen)
	require.True(t, c.History.Enabled)
	require.Equal(t, 20, c.History.Limit)
	require.Equal(t, filepath.Join(home, ".local", "share", "localedemo", "history.db"), c.Database.Path)
	require.Equal(t, "info", c.Log.Level)
}

func TestLoadFileEnvAndFlags(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	body := `
locale = "de"

[ui]
default_index = 1

[history]
limit = 5
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("LOCALEDEMO_CONFIG", path)

	c, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, "de", c.Locale)
	require.Equal(t, 1, c.UI.DefaultIndex)
	require.Equal(t, 5, c.History.Limit)

	t.Setenv("LOCALEDEMO_LOCALE", "zh")
	c, err = Load(nil)
	require.NoError(t, err)
	require.Equal(t, "zh", c.Locale)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	require.NoError(t, fs.Parse([]string{"--locale", "en", "--index", "2", "--no-history"}))
	c, err = Load(fs)
	require.NoError(t, err)
	require.Equal(t, "en", c.Locale)
	require.Equal(t, 2, c.UI.DefaultIndex)
	require.False(t, c.History.Enabled)
}

func TestLoadConfigFlagMustExist(t *testing.T) {
	isolate(t)
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	require.NoError(t, fs.Parse([]string{"--config", filepath.Join(t.TempDir(), "nope.toml")}))
	_, err := Load(fs)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Config{Log: LogConfig{Level: "warn"}}.Validate())
	require.Error(t, Config{UI: UIConfig{DefaultIndex: -1}}.Validate())
	require.Error(t, Config{History: HistoryConfig{Limit: -2}}.Validate())
	require.Error(t, Config{Log: LogConfig{Level: "loud"}}.Validate())
}
