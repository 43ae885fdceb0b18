package config

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed presets.yaml
var presetsYAML []byte

// Preset is a named shorthand for a set of deploy options.
type Preset struct {
	Name        string         `yaml:"-"`
	Description string         `yaml:"description"`
	DeployerEnv string         `yaml:"deployer-env"` // Environment variable holding the deployer, used as a default
	Defaults    map[string]any `yaml:"defaults"`     // Used when no flag or environment variable is set
	Forced      map[string]any `yaml:"forced"`       // Always applied, flags included
}

// Presets holds the network presets keyed by name.
type Presets map[string]Preset

// LoadPresets decodes the embedded network presets.
func LoadPresets() (Presets, error) {
	return ParsePresets(presetsYAML)
}

// ParsePresets decodes network presets from YAML.
func ParsePresets(b []byte) (Presets, error) {
	presets := Presets{}
	if err := yaml.Unmarshal(b, &presets); err != nil {
		return nil, fmt.Errorf("failed to decode presets: %w", err)
	}
	for name, p := range presets {
		p.Name = name
		presets[name] = p
	}

	return presets, nil
}

// Get returns the named preset.
func (p Presets) Get(name string) (Preset, error) {
	preset, ok := p[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}

	return preset, nil
}

// Names returns the preset names in alphabetical order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// defaults returns the preset defaults with the deployer resolved from
// DeployerEnv when the preset names one and it is set.
func (p Preset) defaults() map[string]any {
	out := make(map[string]any, len(p.Defaults)+1)
	for k, v := range p.Defaults {
		out[k] = v
	}
	if p.DeployerEnv != "" {
		if deployer := os.Getenv(p.DeployerEnv); deployer != "" {
			out["deployer"] = deployer
		}
	}

	return out
}
