package config

import "sort"

// Presets tune the field section only.
var Presets = map[string]FieldConfig{
	"calm": {
		NodeCount: 30, InfluenceRadius: 150, Repulsion: 0.02, SpeedRange: 0.3,
		MinRadius: 1, MaxRadius: 3, MaxEdgeOpacity: 0.2,
	},
	"default": {
		NodeCount: 50, InfluenceRadius: 150, Repulsion: 0.03, SpeedRange: 0.5,
		MinRadius: 1, MaxRadius: 3, MaxEdgeOpacity: 0.3,
	},
	"dense": {
		NodeCount: 120, InfluenceRadius: 120, Repulsion: 0.03, SpeedRange: 0.5,
		MinRadius: 1, MaxRadius: 2.5, MaxEdgeOpacity: 0.25,
	},
	"storm": {
		NodeCount: 80, InfluenceRadius: 180, Repulsion: 0.08, SpeedRange: 2.0,
		MinRadius: 1, MaxRadius: 4, MaxEdgeOpacity: 0.4,
	},
	"sparse": {
		NodeCount: 15, InfluenceRadius: 300, Repulsion: 0.03, SpeedRange: 0.4,
		MinRadius: 2, MaxRadius: 5, MaxEdgeOpacity: 0.5,
	},
}

// GetPreset returns a copy of the named preset.
func GetPreset(name string) (FieldConfig, bool) {
	p, ok := Presets[name]
	return p, ok
}

// ApplyPreset overwrites the field section with the named preset.
func (c *Config) ApplyPreset(name string) bool {
	p, ok := Presets[name]
	if ok {
		c.Field = p
	}
	return ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
