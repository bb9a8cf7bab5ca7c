// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	EndX        float64     `yaml:"end_x"`
	Spawns      []YAMLSpawn `yaml:"spawns"`
}

// YAMLSpawn represents one spawn group in YAML format.
type YAMLSpawn struct {
	Kind  string `yaml:"kind"`
	Count int    `yaml:"count,omitempty"`
	X     Range  `yaml:"x"`
	Y     Range  `yaml:"y"`
	Speed Range  `yaml:"speed,omitempty"`
}

// Range is a closed interval. A scalar in YAML yields a fixed value,
// a two element sequence or a {min, max} mapping yields a random range.
type Range struct {
	Min float64
	Max float64
}

// Fixed reports whether the range collapses to a single value.
func (r Range) Fixed() bool {
	return r.Min == r.Max
}

// UnmarshalYAML accepts `5`, `[1, 9]` and `{min: 1, max: 9}`.
func (r *Range) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("range value: %w", err)
		}
		r.Min, r.Max = v, v
		return nil
	case yaml.SequenceNode:
		var vs []float64
		if err := node.Decode(&vs); err != nil {
			return fmt.Errorf("range sequence: %w", err)
		}
		if len(vs) != 2 {
			return fmt.Errorf("line %d: range sequence needs 2 values, got %d", node.Line, len(vs))
		}
		r.Min, r.Max = vs[0], vs[1]
		return nil
	case yaml.MappingNode:
		var m struct {
			Min float64 `yaml:"min"`
			Max float64 `yaml:"max"`
		}
		if err := node.Decode(&m); err != nil {
			return fmt.Errorf("range mapping: %w", err)
		}
		r.Min, r.Max = m.Min, m.Max
		return nil
	default:
		return fmt.Errorf("line %d: unsupported range node", node.Line)
	}
}

// Level represents a parsed level ready for validation.
type Level struct {
	ID          string
	Name        string
	Description string
	EndX        float64
	Spawns      []Spawn
}

// Spawn is a parsed spawn group.
type Spawn struct {
	Kind  string
	Count int
	X     Range
	Y     Range
	Speed Range
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := Level{
		ID:          yl.ID,
		Name:        yl.Name,
		Description: yl.Description,
		EndX:        yl.EndX,
		Spawns:      make([]Spawn, 0, len(yl.Spawns)),
	}

	for _, s := range yl.Spawns {
		count := s.Count
		if count == 0 {
			count = 1 // Omitted count means a single entity
		}
		level.Spawns = append(level.Spawns, Spawn{
			Kind:  s.Kind,
			Count: count,
			X:     s.X,
			Y:     s.Y,
			Speed: s.Speed,
		})
	}

	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
