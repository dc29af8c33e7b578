package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ant-colony/parameter"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	require.NoError(t, s.Validate())
	assert.Equal(t, parameter.ScentDecayRate, s.Scent.DecayRate)
	assert.Equal(t, parameter.ScentMaintainInterval, s.Scent.MaintainInterval.Duration)
	assert.Equal(t, 1, s.Sim.Speed)
}

func TestDecodeOverridesDefaults(t *testing.T) {
	s, err := Decode(`
[sim]
seed = 99
speed = 4

[scent]
decay_rate = 1.0
maintain_interval = "1s"
`)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), s.Sim.Seed)
	assert.Equal(t, 4, s.Sim.Speed)
	assert.Equal(t, 1.0, s.Scent.DecayRate)
	assert.Equal(t, time.Second, s.Scent.MaintainInterval.Duration)
	// Untouched keys keep defaults
	assert.Equal(t, parameter.ScentMaxStrength, s.Scent.MaxStrength)
}

func TestDecodeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"speed", "[sim]\nspeed = 3\n"},
		{"negative decay", "[scent]\ndecay_rate = -1.0\n"},
		{"zero speed", "[ant]\nmax_speed = 0.0\n"},
		{"bad duration", "[scent]\nemit_interval = \"soon\"\n"},
		{"food range", "[food]\nmin_dist = 700.0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.doc)
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "colony.toml")
	require.NoError(t, os.WriteFile(path, []byte("[colony]\nant_capacity = 40\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40, s.Colony.AntCapacity)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("[colony]\nant_capacty = 40\n"), 0644))
	_, err = Load(path)
	assert.Error(t, err, "misspelled key should be rejected")
}

func TestEncodeRoundTripsDefaults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Encode(&buf))

	s, err := Decode(buf.String())
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}
