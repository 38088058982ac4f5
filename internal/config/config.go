// Package config provides configuration data structures for mp.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Config represents the complete mp configuration loaded from .mp.yaml.
type Config struct {
	Scan     ScanConfig     `yaml:"scan"     json:"scan"`
	Manifest ManifestConfig `yaml:"manifest" json:"manifest"`
	Install  InstallConfig  `yaml:"install"  json:"install"`
	Log      LogConfig      `yaml:"log"      json:"log"`
}

// ScanConfig configures which files the walker reads.
type ScanConfig struct {
	// Extensions are the source-file suffixes to scan (default: [".js"]).
	Extensions []string `yaml:"extensions" json:"extensions"`
	// ExcludeDirs are directory names never descended into (default: ["node_modules"]).
	ExcludeDirs []string `yaml:"exclude_dirs" json:"exclude_dirs"`
}

// ManifestConfig configures the upward manifest search.
type ManifestConfig struct {
	// Filename is the manifest file name (default: package.json).
	Filename string `yaml:"filename" json:"filename"`
	// MaxDepth is the number of directories tried, cwd included (default: 5).
	MaxDepth int `yaml:"max_depth" json:"max_depth"`
	// Fields are the manifest objects whose keys count as declared (default: ["dependencies"]).
	Fields []string `yaml:"fields" json:"fields"`
}

// InstallConfig configures the package manager invocation.
type InstallConfig struct {
	// Command is the package manager executable (default: npm).
	Command string `yaml:"command" json:"command"`
	// Args precede the package names (default: ["install"]).
	Args []string `yaml:"args" json:"args"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default: warn).
	Level string `yaml:"level" json:"level"`
	// JSON switches the log handler to JSON output.
	JSON bool `yaml:"json" json:"json"`
	// File, when set, also appends logs to this path.
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// Default values.
const (
	DefaultManifestFilename = "package.json"
	DefaultManifestField    = "dependencies"
	DefaultCacheDir         = "node_modules"
	DefaultExtension        = ".js"
	DefaultInstallCommand   = "npm"
	DefaultLogLevel         = "warn"

	// MaxManifestDepth is the hard bound on the upward manifest search.
	MaxManifestDepth = 5
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			Extensions:  []string{DefaultExtension},
			ExcludeDirs: []string{DefaultCacheDir},
		},
		Manifest: ManifestConfig{
			Filename: DefaultManifestFilename,
			MaxDepth: MaxManifestDepth,
			Fields:   []string{DefaultManifestField},
		},
		Install: InstallConfig{
			Command: DefaultInstallCommand,
			Args:    []string{"install"},
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// ApplyDefaults applies default values to any unset fields.
// This is used after loading config from file to fill in missing values.
func (c *Config) ApplyDefaults() {
	defaults := NewConfig()

	if len(c.Scan.Extensions) == 0 {
		c.Scan.Extensions = defaults.Scan.Extensions
	}
	// An explicit empty exclude list is allowed; nil means unset.
	if c.Scan.ExcludeDirs == nil {
		c.Scan.ExcludeDirs = defaults.Scan.ExcludeDirs
	}

	if c.Manifest.Filename == "" {
		c.Manifest.Filename = defaults.Manifest.Filename
	}
	if c.Manifest.MaxDepth == 0 {
		c.Manifest.MaxDepth = defaults.Manifest.MaxDepth
	}
	if len(c.Manifest.Fields) == 0 {
		c.Manifest.Fields = defaults.Manifest.Fields
	}

	if c.Install.Command == "" {
		c.Install.Command = defaults.Install.Command
	}
	if c.Install.Args == nil {
		c.Install.Args = defaults.Install.Args
	}

	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}
	msg := "multiple validation errors:"
	for _, err := range e {
		msg += "\n  - " + err.Error()
	}
	return msg
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidationErrors

	for i, ext := range c.Scan.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			errs = append(errs, &ValidationError{
				Field:   fmt.Sprintf("scan.extensions[%d]", i),
				Message: "must start with '.' (e.g. \".js\")",
			})
		}
	}
	for i, dir := range c.Scan.ExcludeDirs {
		if dir == "" || strings.ContainsRune(dir, filepath.Separator) || strings.Contains(dir, "/") {
			errs = append(errs, &ValidationError{
				Field:   fmt.Sprintf("scan.exclude_dirs[%d]", i),
				Message: "must be a bare directory name",
			})
		}
	}

	if strings.ContainsRune(c.Manifest.Filename, filepath.Separator) || strings.Contains(c.Manifest.Filename, "/") {
		errs = append(errs, &ValidationError{Field: "manifest.filename", Message: "must be a file name, not a path"})
	}
	if c.Manifest.MaxDepth < 1 || c.Manifest.MaxDepth > MaxManifestDepth {
		errs = append(errs, &ValidationError{
			Field:   "manifest.max_depth",
			Message: fmt.Sprintf("must be between 1 and %d", MaxManifestDepth),
		})
	}
	for i, field := range c.Manifest.Fields {
		if strings.TrimSpace(field) == "" {
			errs = append(errs, &ValidationError{
				Field:   fmt.Sprintf("manifest.fields[%d]", i),
				Message: "must not be empty",
			})
		}
	}

	if strings.TrimSpace(c.Install.Command) == "" {
		errs = append(errs, &ValidationError{Field: "install.command", Message: "must not be empty"})
	}

	if c.Log.Level != "" {
		switch strings.ToLower(c.Log.Level) {
		case "debug", "info", "warn", "warning", "error":
			// valid
		default:
			errs = append(errs, &ValidationError{
				Field:   "log.level",
				Message: "must be 'debug', 'info', 'warn', or 'error'",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
