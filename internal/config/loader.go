// Package config provides configuration loading and management for mp.
package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigPath is the config file looked up in the working directory.
	DefaultConfigPath = ".mp.yaml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "MP"
)

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	// MP_MANIFEST_MAX_DEPTH overrides manifest.max_depth, and so on.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	return &Loader{v: v}
}

// setDefaults registers every key with viper so AutomaticEnv can override
// keys that are absent from the config file.
func setDefaults(v *viper.Viper) {
	d := NewConfig()
	v.SetDefault("scan.extensions", d.Scan.Extensions)
	v.SetDefault("scan.exclude_dirs", d.Scan.ExcludeDirs)
	v.SetDefault("manifest.filename", d.Manifest.Filename)
	v.SetDefault("manifest.max_depth", d.Manifest.MaxDepth)
	v.SetDefault("manifest.fields", d.Manifest.Fields)
	v.SetDefault("install.command", d.Install.Command)
	v.SetDefault("install.args", d.Install.Args)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.json", d.Log.JSON)
	v.SetDefault("log.file", d.Log.File)
}

// LoadConfig loads configuration from the specified path, merges environment
// variables, applies defaults, and validates the result.
// If path is empty, DefaultConfigPath is used and a missing file is not an
// error. An explicitly named file must exist.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath
	}

	if _, err := os.Stat(path); err == nil {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, &LoadError{
				Path:    path,
				Message: "failed to read config file",
				Err:     err,
			}
		}
	} else if explicit {
		return nil, &LoadError{
			Path:    path,
			Message: "config file not found",
			Err:     err,
		}
	}

	cfg := &Config{}
	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     err,
		}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// viperDecodeHook decodes by yaml tag so file keys and struct tags agree,
// and splits comma separated env values into slices.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.TagName = "yaml"
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
		trimSliceHookFunc(),
	)
}

// trimSliceHookFunc trims whitespace from string slice elements, so
// MP_SCAN_EXTENSIONS=".js, .mjs" works.
func trimSliceHookFunc() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.Slice || to.Kind() != reflect.Slice || to.Elem().Kind() != reflect.String {
			return data, nil
		}
		items, ok := data.([]string)
		if !ok {
			return data, nil
		}
		trimmed := make([]string, 0, len(items))
		for _, item := range items {
			if s := strings.TrimSpace(item); s != "" {
				trimmed = append(trimmed, s)
			}
		}
		return trimmed, nil
	}
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether the load failed validation rather than
// reading or parsing.
func (e *LoadError) IsValidation() bool {
	_, ok := e.Err.(ValidationErrors)
	return ok
}

// Load is a convenience function that creates a new Loader and loads configuration.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}
