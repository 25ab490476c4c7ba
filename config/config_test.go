package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const sample = `
target: 127.0.0.1:9000
address: /spat/source
rate_hz: 60
coordinate_system: AED
index_base: 1
group: 4
reference:
  position: [0, 1.5, 0]
  yaw: 90
self:
  position: {x: 1, y: 0, z: 0}
positions:
  - [1, 2, 3]
  - {x: -1, y: 0, z: 4}
logging:
  level: debug
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Target)
	assert.Equal(t, "/spat/source", cfg.Address)
	assert.Equal(t, 60, cfg.RateHz)
	assert.Equal(t, "aed", cfg.CoordinateSystem)
	assert.Equal(t, 1, cfg.IndexBase)
	require.NotNil(t, cfg.Group)
	assert.Equal(t, 4, *cfg.Group)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, []r3.Vec{{X: 1, Y: 2, Z: 3}, {X: -1, Y: 0, Z: 4}}, cfg.PositionVecs())

	ref := cfg.ReferenceFrame()
	require.NotNil(t, ref)
	assert.Equal(t, r3.Vec{Y: 1.5}, ref.Position)
	assert.Equal(t, r3.Vec{X: 1}, cfg.Self.Frame().Position)
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse([]byte("target: localhost:9000\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAddress, cfg.Address)
	assert.Equal(t, DefaultRateHz, cfg.RateHz)
	assert.Equal(t, "xyz", cfg.CoordinateSystem)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Nil(t, cfg.ReferenceFrame())
	assert.Nil(t, cfg.Group)
	assert.Empty(t, cfg.PositionVecs())
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing_target", "address: /a\n"},
		{"bad_address", "target: h:1\naddress: nope\n"},
		{"negative_rate", "target: h:1\nrate_hz: -5\n"},
		{"rate_too_high", "target: h:1\nrate_hz: 600000000\n"},
		{"bad_system", "target: h:1\ncoordinate_system: polar\n"},
		{"short_position", "target: h:1\npositions:\n  - [1, 2]\n"},
		{"scalar_position", "target: h:1\npositions:\n  - 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Positions, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseMaxRate(t *testing.T) {
	cfg, err := Parse([]byte("target: h:1\nrate_hz: 1000\n"))
	require.NoError(t, err)
	assert.Equal(t, MaxRateHz, cfg.RateHz)
}
