package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/vitals/internal/config"
	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_NonInteractive(t *testing.T) {
	t.Chdir(t.TempDir())

	err := Init(InitOptions{
		Interval:       "5s",
		NoBridge:       true,
		NonInteractive: true,
	})
	require.NoError(t, err)

	// The generated file must load back through the config package.
	cfg, err := config.Load(filepath.Join(".", config.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.RefreshInterval)
	assert.False(t, cfg.Bridge.Enabled)
	assert.Equal(t, config.DefaultBridgeListen, cfg.Bridge.Listen)
}

func TestInit_DefaultsWhenFlagsOmitted(t *testing.T) {
	t.Chdir(t.TempDir())

	err := Init(InitOptions{NonInteractive: true})
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(".", config.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultRefreshInterval, cfg.RefreshInterval)
	assert.True(t, cfg.Bridge.Enabled)
}

func TestInit_ExistingConfigWithoutForce(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(config.ConfigFileName, []byte("version: 1\n"), 0644))

	err := Init(InitOptions{NonInteractive: true})

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "already exists")
}

func TestInit_ForceOverwrites(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(config.ConfigFileName, []byte("version: 1\n"), 0644))

	err := Init(InitOptions{
		Interval:       "3s",
		Overwrite:      true,
		NonInteractive: true,
	})
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(".", config.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.RefreshInterval)
}

func TestInit_RejectsBadValues(t *testing.T) {
	t.Chdir(t.TempDir())

	err := Init(InitOptions{Interval: "soon", NonInteractive: true})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	err = Init(InitOptions{Interval: "10ms", NonInteractive: true})
	require.Error(t, err, "below the minimum refresh interval")

	err = Init(InitOptions{Listen: "no-port", NonInteractive: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}
