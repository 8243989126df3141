package parameter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/spacegame/core"
)

var (
	// ErrConfigMissing reports required keys absent from the settings source, no defaults are substituted
	ErrConfigMissing = errors.New("config field missing")
	// ErrConfigInvalid reports present but unusable values or unknown keys
	ErrConfigInvalid = errors.New("config field invalid")
	// ErrConfigFormat reports an unsupported file extension
	ErrConfigFormat = errors.New("unsupported config format")
)

// Format selects the settings decoder
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath resolves the decoder from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrConfigFormat, filepath.Ext(path))
	}
}

type rawSettings struct {
	CannonShootingFrequency       *float32 `toml:"cannon_shooting_frequency" yaml:"cannon_shooting_frequency"`
	CannonShootingVelocity        *float32 `toml:"cannon_shooting_velocity" yaml:"cannon_shooting_velocity"`
	SpaceshipForwardVelocity      *float32 `toml:"spaceship_forward_velocity" yaml:"spaceship_forward_velocity"`
	AsteroidsAngularVelocityRange *float32 `toml:"asteroids_angular_velocity_range" yaml:"asteroids_angular_velocity_range"`
	EngineThrust                  *float32 `toml:"engine_thrust" yaml:"engine_thrust"`
	SpaceshipMass                 *float32 `toml:"spaceship_mass" yaml:"spaceship_mass"`
	AsteroidsAppearanceFrequency  *float32 `toml:"asteroids_appearance_frequency" yaml:"asteroids_appearance_frequency"`
	AsteroidsAppearanceIncrease   *float32 `toml:"asteroids_appearance_increase" yaml:"asteroids_appearance_increase"`
}

type rawKind struct {
	Scale           *float32 `toml:"scale" yaml:"scale"`
	CollisionRadius *float32 `toml:"collision_radius" yaml:"collision_radius"`
	Points          *int     `toml:"points" yaml:"points"`
}

type rawConfig struct {
	Settings rawSettings        `toml:"settings" yaml:"settings"`
	Kinds    map[string]rawKind `toml:"kinds" yaml:"kinds"`
}

// Load reads and validates a settings file, format chosen by extension
func Load(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates settings from memory
func Parse(data []byte, format Format) (*Config, error) {
	var raw rawConfig

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &raw)
		if err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("%w: unknown keys %s", ErrConfigInvalid, strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to nothing and falls through to the missing-field report
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrConfigFormat, format)
	}

	return raw.build()
}

// collector accumulates missing and invalid keys so one pass reports all of them
type collector struct {
	missing []string
	invalid []string
}

func takeFloat(c *collector, key string, p *float32, positive bool) float32 {
	if p == nil {
		c.missing = append(c.missing, key)
		return 0
	}
	v := *p
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) || v < 0 || (positive && v == 0) {
		c.invalid = append(c.invalid, fmt.Sprintf("%s=%v", key, v))
	}
	return v
}

func takeInt(c *collector, key string, p *int) int {
	if p == nil {
		c.missing = append(c.missing, key)
		return 0
	}
	if *p < 0 {
		c.invalid = append(c.invalid, fmt.Sprintf("%s=%d", key, *p))
	}
	return *p
}

func (r *rawConfig) build() (*Config, error) {
	var c collector
	cfg := &Config{}

	s := &r.Settings
	cfg.Settings = Settings{
		CannonShootingFrequency:       takeFloat(&c, "settings.cannon_shooting_frequency", s.CannonShootingFrequency, true),
		CannonShootingVelocity:        takeFloat(&c, "settings.cannon_shooting_velocity", s.CannonShootingVelocity, false),
		SpaceshipForwardVelocity:      takeFloat(&c, "settings.spaceship_forward_velocity", s.SpaceshipForwardVelocity, false),
		AsteroidsAngularVelocityRange: takeFloat(&c, "settings.asteroids_angular_velocity_range", s.AsteroidsAngularVelocityRange, false),
		EngineThrust:                  takeFloat(&c, "settings.engine_thrust", s.EngineThrust, false),
		SpaceshipMass:                 takeFloat(&c, "settings.spaceship_mass", s.SpaceshipMass, true),
		AsteroidsAppearanceFrequency:  takeFloat(&c, "settings.asteroids_appearance_frequency", s.AsteroidsAppearanceFrequency, false),
		AsteroidsAppearanceIncrease:   takeFloat(&c, "settings.asteroids_appearance_increase", s.AsteroidsAppearanceIncrease, false),
	}

	// Unknown table names first, sorted for a stable message
	var unknown []string
	for name := range r.Kinds {
		if _, ok := core.ParseKind(name); !ok {
			unknown = append(unknown, "kinds."+name)
		}
	}
	sort.Strings(unknown)
	c.invalid = append(c.invalid, unknown...)

	for k := core.Kind(0); k < core.KindCount; k++ {
		prefix := "kinds." + k.String()
		rk, ok := r.Kinds[k.String()]
		if !ok {
			c.missing = append(c.missing, prefix)
			continue
		}
		cfg.Kinds.Scale[k] = takeFloat(&c, prefix+".scale", rk.Scale, true)
		cfg.Kinds.CollisionRadius[k] = takeFloat(&c, prefix+".collision_radius", rk.CollisionRadius, false)
		if k.IsAsteroid() {
			cfg.Kinds.Points[k] = takeInt(&c, prefix+".points", rk.Points)
		} else if rk.Points != nil {
			cfg.Kinds.Points[k] = *rk.Points
		}
	}

	if len(c.missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrConfigMissing, strings.Join(c.missing, ", "))
	}
	if len(c.invalid) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrConfigInvalid, strings.Join(c.invalid, ", "))
	}
	return cfg, nil
}
