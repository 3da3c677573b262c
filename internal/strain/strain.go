// Package strain holds the fixed registry of fungal strains the simulator
// knows how to model.
package strain

import (
	"log/slog"
	"sort"
)

const (
	AspergillusNiger       = "Aspergillus_niger"
	PenicilliumChrysogenum = "Penicillium_chrysogenum"

	// Default is substituted for any strain name missing from the registry.
	Default = AspergillusNiger
)

// Profile describes the degradation characteristics of one strain.
type Profile struct {
	ID string
	// DecayRate is the fraction of fiber mass removed per day.
	DecayRate float64
	// ToxinReduction is the maximum toxin-mobility drop attributable to the strain, in [0,1].
	ToxinReduction float64
	// OptimalTemperature is in °C. Informational only.
	OptimalTemperature float64
	DisplayName        string
}

var registry = map[string]Profile{
	AspergillusNiger: {
		ID:                 AspergillusNiger,
		DecayRate:          0.045,
		ToxinReduction:     0.40,
		OptimalTemperature: 28,
		DisplayName:        "Aspergillus niger",
	},
	PenicilliumChrysogenum: {
		ID:                 PenicilliumChrysogenum,
		DecayRate:          0.035,
		ToxinReduction:     0.52,
		OptimalTemperature: 25,
		DisplayName:        "Penicillium chrysogenum",
	},
}

// Lookup returns the profile registered under id.
func Lookup(id string) (Profile, bool) {
	p, ok := registry[id]
	return p, ok
}

// Resolve returns the profile for id, falling back to Default with a
// warning when id is unknown. It never fails.
func Resolve(id string, logger *slog.Logger) Profile {
	if p, ok := registry[id]; ok {
		return p
	}
	if logger != nil {
		logger.Warn("strain not found, using default", "strain", id, "default", Default)
	}
	return registry[Default]
}

// Names returns the registered strain ids in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered profile ordered by id.
func All() []Profile {
	names := Names()
	profiles := make([]Profile, 0, len(names))
	for _, name := range names {
		profiles = append(profiles, registry[name])
	}
	return profiles
}
