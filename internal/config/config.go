// Package config loads converter settings from an optional YAML file.
package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

const (
	DefaultPath   = "negbmp.yml"
	DefaultOutput = "temp_file.bmp"

	TransformNegative   = "negative"    // per-channel complement
	TransformLegacyGray = "legacy-gray" // summed channels, old converter output
)

type Config struct {
	Output    string `yaml:"output"`    // Where the converted bitmap is written
	Transform string `yaml:"transform"` // negative | legacy-gray
	Verbose   bool   `yaml:"verbose"`   // Print header fields
	Preview   bool   `yaml:"preview"`   // Print the result as colored blocks
	Verify    bool   `yaml:"verify"`    // Re-read the output with an independent decoder
}

func Defaults() Config {
	return Config{Output: DefaultOutput, Transform: TransformNegative}
}

// Load reads the YAML file at path on top of Defaults. A missing file is not
// an error: the defaults are returned as they are. It is only logged when
// the caller asked for that file explicitly.
func Load(path string, explicit bool) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				log.Printf("Configuration file '%s' not found. Using defaults.", path)
			}
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read configuration file '%s': %w", path, err)
	}

	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse configuration file '%s': %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("configuration file '%s': %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output path must not be empty")
	}
	switch c.Transform {
	case TransformNegative, TransformLegacyGray:
		return nil
	default:
		return fmt.Errorf("unknown transform %q: use %q or %q", c.Transform, TransformNegative, TransformLegacyGray)
	}
}
