package parameter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/spacegame/asset"
	"github.com/lixenwraith/spacegame/core"
)

const yamlSettings = `
settings:
  cannon_shooting_frequency: 2
  cannon_shooting_velocity: 30
  spaceship_forward_velocity: 5
  asteroids_angular_velocity_range: 20
  engine_thrust: 50
  spaceship_mass: 5
  asteroids_appearance_frequency: 1
  asteroids_appearance_increase: 0.1
kinds:
  asteroid_fragment: {scale: 0.5, collision_radius: 0.5, points: 40}
  asteroid_small: {scale: 1, collision_radius: 1, points: 30}
  asteroid_medium: {scale: 2, collision_radius: 2, points: 20}
  asteroid_big: {scale: 3, collision_radius: 3, points: 10}
  laser_beam: {scale: 0.2, collision_radius: 0.3}
  player: {scale: 1, collision_radius: 1.5}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReferenceSettings(t *testing.T) {
	cfg := Reference()

	assert.Equal(t, float32(4), cfg.Settings.CannonShootingFrequency)
	assert.InDelta(t, 0.25, cfg.Settings.CannonPeriod(), 1e-9)
	assert.InDelta(t, 12, cfg.Settings.StrafeSpeed(), 1e-6)
	assert.Equal(t, 10, cfg.Kinds.Points[core.KindAsteroidBig])
	assert.Equal(t, 0, cfg.Kinds.Points[core.KindPlayer])
	for k := core.Kind(0); k < core.KindCount; k++ {
		assert.Greater(t, cfg.Kinds.Scale[k], float32(0), "scale for %s", k)
	}
}

func TestLoadTOMLFile(t *testing.T) {
	path := writeFile(t, "settings.toml", string(asset.SettingsTOML))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, *Reference(), *cfg)
}

func TestLoadYAMLFile(t *testing.T) {
	path := writeFile(t, "settings.yml", yamlSettings)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, float32(2), cfg.Settings.CannonShootingFrequency)
	assert.Equal(t, float32(3), cfg.Kinds.CollisionRadius[core.KindAsteroidBig])
	assert.Equal(t, 40, cfg.Kinds.Points[core.KindAsteroidFragment])
}

func TestParseMissingFields(t *testing.T) {
	data := strings.Replace(string(asset.SettingsTOML), "cannon_shooting_velocity = 40.0", "", 1)
	data = strings.Replace(data, "[kinds.laser_beam]\nscale = 0.3\ncollision_radius = 0.4\n", "", 1)

	_, err := Parse([]byte(data), FormatTOML)
	require.ErrorIs(t, err, ErrConfigMissing)
	assert.Contains(t, err.Error(), "settings.cannon_shooting_velocity")
	assert.Contains(t, err.Error(), "kinds.laser_beam")
}

func TestParseMissingAsteroidPoints(t *testing.T) {
	data := strings.Replace(yamlSettings, ", points: 20", "", 1)
	_, err := Parse([]byte(data), FormatYAML)
	require.ErrorIs(t, err, ErrConfigMissing)
	assert.Contains(t, err.Error(), "kinds.asteroid_medium.points")
}

func TestParseEmptyYAML(t *testing.T) {
	_, err := Parse(nil, FormatYAML)
	require.ErrorIs(t, err, ErrConfigMissing)
}

func TestParseInvalidValues(t *testing.T) {
	data := strings.Replace(string(asset.SettingsTOML), "spaceship_mass = 10.0", "spaceship_mass = 0.0", 1)
	_, err := Parse([]byte(data), FormatTOML)
	require.ErrorIs(t, err, ErrConfigInvalid)
	assert.Contains(t, err.Error(), "spaceship_mass")
}

func TestParseUnknownKeys(t *testing.T) {
	data := string(asset.SettingsTOML) + "\n[kinds.box]\nscale = 1.0\ncollision_radius = 1.0\n"
	_, err := Parse([]byte(data), FormatTOML)
	require.ErrorIs(t, err, ErrConfigInvalid)
	assert.Contains(t, err.Error(), "kinds.box")

	data = strings.Replace(string(asset.SettingsTOML), "[settings]", "[settings]\nwarp_drive = true", 1)
	_, err = Parse([]byte(data), FormatTOML)
	require.ErrorIs(t, err, ErrConfigInvalid)

	_, err = Parse([]byte(yamlSettings+"extra: 1\n"), FormatYAML)
	require.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("a/b/settings.YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = FormatFromPath("settings.json")
	assert.ErrorIs(t, err, ErrConfigFormat)

	_, err = Load("settings.ini")
	assert.ErrorIs(t, err, ErrConfigFormat)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
