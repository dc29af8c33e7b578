package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ant-colony/config"
)

func TestFlagOverrides(t *testing.T) {
	o, err := parseFlags([]string{"-seed", "42", "-speed", "2", "-colonies", "3", "-mute"})
	require.NoError(t, err)

	cfg, err := o.settings()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Sim.Seed)
	assert.Equal(t, 2, cfg.Sim.Speed)
	assert.Equal(t, 3, cfg.Sim.Colonies)
	assert.False(t, cfg.Sim.Sound)
}

func TestFlagDefaultsKeepSettings(t *testing.T) {
	o, err := parseFlags(nil)
	require.NoError(t, err)

	cfg, err := o.settings()
	require.NoError(t, err)
	def := config.Default()
	assert.Equal(t, def.Sim.Seed, cfg.Sim.Seed)
	assert.Equal(t, def.Sim.Speed, cfg.Sim.Speed)
}

func TestFlagBadSpeedRejected(t *testing.T) {
	o, err := parseFlags([]string{"-speed", "3"})
	require.NoError(t, err)
	_, err = o.settings()
	assert.Error(t, err)
}

func TestConfigFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colony.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sim]\nseed = 7\ncolonies = 2\n"), 0o644))

	o, err := parseFlags([]string{"-config", path, "-colonies", "4"})
	require.NoError(t, err)
	cfg, err := o.settings()
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Sim.Seed)
	assert.Equal(t, 4, cfg.Sim.Colonies)
}
