// Package level loads static collider geometry and mover spawns from level files.
//
// Authoring values are decimals. They enter the fixed domain exactly once, here, through
// vmath.FromFloat; nothing downstream converts back.
package level

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/fixphys/physics"
	"github.com/lixenwraith/fixphys/vmath"
)

// Format selects the level file codec
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("level: unknown file format")

// Level is the on-disk level description
type Level struct {
	Name      string          `toml:"name" yaml:"name"`
	Colliders []ColliderEntry `toml:"colliders" yaml:"colliders"`
	Spawns    []Spawn         `toml:"spawns" yaml:"spawns"`
}

// ColliderEntry is one static collider. Box axes default to +x and +z (ground plane) when omitted.
type ColliderEntry struct {
	Shape    string     `toml:"shape" yaml:"shape"`
	Position [3]float64 `toml:"position" yaml:"position"`
	AxisU    [3]float64 `toml:"axis_u" yaml:"axis_u"`
	AxisV    [3]float64 `toml:"axis_v" yaml:"axis_v"`
	HalfU    float64    `toml:"half_u" yaml:"half_u"`
	HalfV    float64    `toml:"half_v" yaml:"half_v"`
	Radius   float64    `toml:"radius" yaml:"radius"`
}

// Spawn is a moving circle's initial state
type Spawn struct {
	Position [3]float64 `toml:"position" yaml:"position"`
	Radius   float64    `toml:"radius" yaml:"radius"`
	Velocity [3]float64 `toml:"velocity" yaml:"velocity"`
}

// FormatFromPath picks the codec by file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads and parses a level file
func Load(path string) (*Level, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading level: %w", err)
	}
	lvl, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parsing level %s: %w", path, err)
	}
	return lvl, nil
}

// Parse decodes level data, rejecting unknown keys
func Parse(data []byte, format Format) (*Level, error) {
	lvl := &Level{}
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(lvl); err != nil {
			return nil, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(lvl); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return lvl, nil
}

func vec(a [3]float64) vmath.Vec3 {
	return vmath.V3(vmath.FromFloat(a[0]), vmath.FromFloat(a[1]), vmath.FromFloat(a[2]))
}

// Descriptor converts the entry into engine data
func (s ColliderEntry) Descriptor() (physics.Descriptor, error) {
	d := physics.Descriptor{Position: vec(s.Position)}
	switch strings.ToLower(s.Shape) {
	case "box":
		d.Kind = physics.ShapeBox
		d.AxisU, d.AxisV = vec(s.AxisU), vec(s.AxisV)
		if d.AxisU.IsZero() && d.AxisV.IsZero() {
			d.AxisU = vmath.V3(vmath.One, 0, 0)
			d.AxisV = vmath.V3(0, 0, vmath.One)
		}
		d.HalfU, d.HalfV = vmath.FromFloat(s.HalfU), vmath.FromFloat(s.HalfV)
	case "circle":
		d.Kind = physics.ShapeCircle
		d.Radius = vmath.FromFloat(s.Radius)
	default:
		return d, fmt.Errorf("%w: shape %q", physics.ErrInvalidDescriptor, s.Shape)
	}
	return d, nil
}

// Descriptors converts every collider entry, naming the failing entry
func (l *Level) Descriptors() ([]physics.Descriptor, error) {
	out := make([]physics.Descriptor, 0, len(l.Colliders))
	for i, s := range l.Colliders {
		d, err := s.Descriptor()
		if err != nil {
			return nil, fmt.Errorf("collider %d: %w", i, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// Statics builds the static environment
func (l *Level) Statics() ([]*physics.Collider, error) {
	descs, err := l.Descriptors()
	if err != nil {
		return nil, err
	}
	out := make([]*physics.Collider, 0, len(descs))
	for i, d := range descs {
		c, err := physics.NewCollider(d)
		if err != nil {
			return nil, fmt.Errorf("collider %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

// SpawnState is a spawn converted into the fixed domain
type SpawnState struct {
	Position vmath.Vec3
	Radius   vmath.Fixed
	Velocity vmath.Vec3
}

// SpawnStates converts the spawn list, rejecting non-positive radii
func (l *Level) SpawnStates() ([]SpawnState, error) {
	out := make([]SpawnState, 0, len(l.Spawns))
	for i, s := range l.Spawns {
		r := vmath.FromFloat(s.Radius)
		if r <= 0 {
			return nil, fmt.Errorf("spawn %d: %w: radius must be positive", i, physics.ErrInvalidDescriptor)
		}
		out = append(out, SpawnState{Position: vec(s.Position), Radius: r, Velocity: vec(s.Velocity)})
	}
	return out, nil
}
