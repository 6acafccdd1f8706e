package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c, err := Load(New())
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("info", c.Log.Level)
	assert.Equal("generic", c.Profile.Name)
	assert.Equal("8080", c.Server.Port)
	assert.Equal(300*time.Millisecond, c.Watch.Debounce)
	assert.Empty(c.Render.MutedStaves)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "articulex.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[log]
level = "debug"

[render]
workers = 4
muted_staves = [1, 3]

[watch]
debounce = "1s"
`), 0o644))

	v := New()
	require.NoError(t, ReadFile(v, path))
	c, err := Load(v)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal("debug", c.Log.Level)
	assert.Equal(4, c.Render.Workers)
	assert.Equal([]int{1, 3}, c.Render.MutedStaves)
	assert.Equal(time.Second, c.Watch.Debounce)
}

func TestReadFileMissing(t *testing.T) {
	assert.Error(t, ReadFile(New(), filepath.Join(t.TempDir(), "nope.toml")))

	// the implicit search tolerates a missing file
	t.Chdir(t.TempDir())
	assert.NoError(t, ReadFile(New(), ""))
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("ARTICULEX_SERVER_PORT", "9999")
	t.Setenv("ARTICULEX_PROFILE_TABLE", "profiles")

	c, err := Load(New())
	require.NoError(t, err)
	assert.Equal(t, "9999", c.Server.Port)
	assert.Equal(t, "profiles", c.Profile.Table)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("ARTICULEX_LOG_LEVEL", "warn")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	flags.Int("workers", 0, "")
	require.NoError(t, flags.Parse([]string{"--log-level", "error"}))

	v := New()
	require.NoError(t, BindFlags(v, flags))
	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "error", c.Log.Level)
	// an unset flag does not shadow the default
	assert.Equal(t, 0, c.Render.Workers)
}

func TestLoadRejectsNegativeWorkers(t *testing.T) {
	v := New()
	v.Set("render.workers", -1)
	_, err := Load(v)
	assert.Error(t, err)
}
