package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultHeader = `# mp configuration.
# Every key can be overridden with an MP_ environment variable,
# e.g. MP_MANIFEST_MAX_DEPTH=3 or MP_SCAN_EXTENSIONS=.js,.cjs
`

// ErrExists is returned by WriteDefault when the target file exists.
var ErrExists = errors.New("config file already exists")

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// WriteDefault writes the default configuration to path. An existing file
// is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
	}

	data, err := NewConfig().Marshal()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, append([]byte(defaultHeader), data...), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
