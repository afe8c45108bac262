package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file looked up in a project directory.
const FileName = "campus.yaml"

// Settings holds the engine tunables. All lengths are in grid units.
type Settings struct {
	GridSize         int     `yaml:"grid_size" json:"grid_size"`
	DoorLength       float64 `yaml:"door_length" json:"door_length"`
	BuildingStroke   float64 `yaml:"building_stroke" json:"building_stroke"`
	DoorStroke       float64 `yaml:"door_stroke" json:"door_stroke"`
	Tolerance        float64 `yaml:"tolerance" json:"tolerance"`
	ProbeOffset      float64 `yaml:"probe_offset" json:"probe_offset"`
	MergeGapRatio    float64 `yaml:"merge_gap_ratio" json:"merge_gap_ratio"`
	PolePrecision    float64 `yaml:"pole_precision" json:"pole_precision"`
	YAxisDown        *bool   `yaml:"y_axis_down" json:"y_axis_down"`
	DefaultDoorInset float64 `yaml:"default_door_inset" json:"default_door_inset"`
	RouteInset       float64 `yaml:"route_inset" json:"route_inset"`
}

// Default returns the settings used when no file or field overrides them.
func Default() Settings {
	down := true
	return Settings{
		GridSize:         5,
		DoorLength:       0.1,
		BuildingStroke:   0.02,
		DoorStroke:       0.01,
		Tolerance:        1e-4,
		ProbeOffset:      0.01,
		MergeGapRatio:    0.1,
		PolePrecision:    0.01,
		YAxisDown:        &down,
		DefaultDoorInset: 0.4,
		RouteInset:       0.05,
	}
}

// Load reads settings from a YAML file. Fields left out of the file keep
// their default values.
func Load(path string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading settings file: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings YAML: %w", err)
	}
	s.fillZero()
	return s, nil
}

// LoadProject loads campus.yaml from a project directory. A missing file
// yields the defaults.
func LoadProject(projectDir string) (Settings, error) {
	s, err := Load(filepath.Join(projectDir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return s, err
}

// YDown reports whether y grows downward.
func (s Settings) YDown() bool {
	return s.YAxisDown == nil || *s.YAxisDown
}

// InsetDistance is how far an effective wall is pulled back from each end
// of its outline wall.
func (s Settings) InsetDistance() float64 {
	return (s.DoorLength + s.BuildingStroke + s.DoorStroke) / 2
}

// Cells returns the number of grid cells.
func (s Settings) Cells() int {
	return s.GridSize * s.GridSize
}

func (s *Settings) fillZero() {
	d := Default()
	if s.GridSize == 0 {
		s.GridSize = d.GridSize
	}
	if s.DoorLength == 0 {
		s.DoorLength = d.DoorLength
	}
	if s.BuildingStroke == 0 {
		s.BuildingStroke = d.BuildingStroke
	}
	if s.DoorStroke == 0 {
		s.DoorStroke = d.DoorStroke
	}
	if s.Tolerance == 0 {
		s.Tolerance = d.Tolerance
	}
	if s.ProbeOffset == 0 {
		s.ProbeOffset = d.ProbeOffset
	}
	if s.MergeGapRatio == 0 {
		s.MergeGapRatio = d.MergeGapRatio
	}
	if s.PolePrecision == 0 {
		s.PolePrecision = d.PolePrecision
	}
	if s.YAxisDown == nil {
		s.YAxisDown = d.YAxisDown
	}
	if s.DefaultDoorInset == 0 {
		s.DefaultDoorInset = d.DefaultDoorInset
	}
	if s.RouteInset == 0 {
		s.RouteInset = d.RouteInset
	}
}
