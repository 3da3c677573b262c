package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/mycodecay/internal/strain"
)

var Presets = map[string]*Config{
	"quick": {
		Strain: strain.Default, Days: 30, InitialFibers: DefaultInitialFibers,
	},
	"standard": {
		Strain: strain.Default, Days: DefaultDays, InitialFibers: DefaultInitialFibers,
	},
	"extended": {
		Strain: strain.Default, Days: 365, InitialFibers: DefaultInitialFibers,
	},
}

// GetPreset returns a copy of the named preset.
func GetPreset(name string) (*Config, error) {
	cfg, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	c := *cfg
	return &c, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
