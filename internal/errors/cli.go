package errors

import (
	"fmt"
	"io"
	"strings"
)

// Misuse creates an error for a command line that does not match a
// recognised form. No scan is performed.
func Misuse(usage string) *MPError {
	return &MPError{
		Kind:       ErrUsage,
		Message:    "invalid usage",
		Suggestion: "Usage:\n" + strings.TrimRight(usage, "\n"),
	}
}

// ConfigParseError creates an error for a config file viper could not read.
func ConfigParseError(configPath string, parseErr error) *MPError {
	return &MPError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check your .mp.yaml for syntax errors:
  1. Ensure proper YAML indentation (use spaces, not tabs)
  2. Lists need a '- ' prefix
  3. Regenerate defaults with: mp init --force`,
	}
}

// ConfigValidationError creates an error for invalid configuration values.
func ConfigValidationError(configPath string, cause error) *MPError {
	return &MPError{
		Kind:    ErrConfig,
		Message: "invalid configuration",
		Cause:   cause,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: "Fix the listed fields in .mp.yaml or the matching MP_* environment variables.",
	}
}

// InstallFailed creates an error when the package manager exits non-zero.
func InstallFailed(command string, exitCode int, output string, cause error) *MPError {
	err := &MPError{
		Kind:    ErrInstall,
		Message: fmt.Sprintf("install command failed: %s", command),
		Cause:   cause,
		Details: map[string]string{
			"command":   command,
			"exit_code": fmt.Sprintf("%d", exitCode),
		},
		Suggestion: `Run the command yourself to see the full output, or change
install.command / install.args in .mp.yaml.`,
	}
	if output != "" {
		err.Details["output"] = output
	}
	return err
}

// NoAnswer creates an error for prompt input that ends before the user
// answered the question about name.
func NoAnswer(name string) *MPError {
	return WithSuggestion(ErrUsage,
		fmt.Sprintf("no answer for package %s: input ended", name),
		"Answer y or n for each package, or pass --yes to install every missing package.",
	).WithDetails("package", name).WithCause(io.EOF)
}

// ConfigExists creates an error when mp init would overwrite a file.
func ConfigExists(path string) *MPError {
	return WithSuggestion(ErrConfig,
		fmt.Sprintf("%s already exists", path),
		"Run mp init --force to overwrite it.",
	).WithDetails("path", path)
}
