// Where: internal/config/file.go
// What: Optional tagsmith.yml loading.
// Why: Let users override compiled-in defaults and paths without flags.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config path probed when no --config flag is given.
const DefaultConfigFile = "tagsmith.yml"

// FileConfig is the shape of tagsmith.yml.
type FileConfig struct {
	Defaults map[string]float64 `yaml:"defaults,omitempty"`
	Paths    PathsConfig        `yaml:"paths,omitempty"`
	Engine   EngineConfig       `yaml:"engine,omitempty"`
}

// PathsConfig overrides the input CSV and output directory locations.
type PathsConfig struct {
	CSV       string `yaml:"csv,omitempty"`
	OutputDir string `yaml:"output_dir,omitempty"`
}

// EngineConfig overrides OpenSCAD discovery and invocation settings.
type EngineConfig struct {
	Path           string  `yaml:"path,omitempty"`
	TimeoutSeconds float64 `yaml:"timeout_seconds,omitempty"`
}

// Load reads and validates a config file. The content is schema-validated
// before decoding so typos and out-of-range values fail with a clear message.
func Load(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, err
	}
	if err := validateConfig(data); err != nil {
		return FileConfig{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional loads path if it exists. A missing file is not an error;
// the second return reports whether a file was loaded.
func LoadOptional(path string) (FileConfig, bool, error) {
	cfg, err := Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, false, nil
		}
		return FileConfig{}, false, err
	}
	return cfg, true, nil
}

// MergedDefaults applies the config file's defaults section on top of the
// compiled-in parameter defaults.
func (c FileConfig) MergedDefaults() ParameterSet {
	params := DefaultParameters()
	for key, value := range c.Defaults {
		if IsParameterKey(key) {
			params[key] = value
		}
	}
	return params
}
