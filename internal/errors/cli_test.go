package errors

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestMisuse(t *testing.T) {
	err := Misuse("  mp <path>\n  mp check <path>\n")

	if !errors.Is(err, ErrUsage) {
		t.Error("Misuse should return ErrUsage")
	}
	if !strings.Contains(err.Suggestion, "mp check <path>") {
		t.Errorf("Suggestion should carry usage text, got %q", err.Suggestion)
	}
	if strings.HasSuffix(err.Suggestion, "\n") {
		t.Error("Suggestion should not end with a newline")
	}
}

func TestConfigParseError(t *testing.T) {
	parseErr := errors.New("yaml: line 3: mapping values are not allowed")
	err := ConfigParseError(".mp.yaml", parseErr)

	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigParseError should return ErrConfig")
	}
	if !strings.Contains(err.Suggestion, "mp init --force") {
		t.Error("Suggestion should mention regenerating defaults")
	}
}

func TestConfigValidationError(t *testing.T) {
	err := ConfigValidationError(".mp.yaml", errors.New("manifest.max_depth: must be between 1 and 5"))

	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigValidationError should return ErrConfig")
	}
	if !strings.Contains(err.Error(), "max_depth") {
		t.Errorf("Error() should include the validation message, got %q", err.Error())
	}
}

func TestInstallFailed(t *testing.T) {
	err := InstallFailed("npm install left-pad", 1, "E404", errors.New("exit status 1"))

	if !errors.Is(err, ErrInstall) {
		t.Error("InstallFailed should return ErrInstall")
	}
	if err.Details["exit_code"] != "1" {
		t.Errorf("exit_code = %q, want 1", err.Details["exit_code"])
	}
	if err.Details["output"] != "E404" {
		t.Errorf("output = %q, want E404", err.Details["output"])
	}

	noOutput := InstallFailed("npm install", 2, "", nil)
	if _, ok := noOutput.Details["output"]; ok {
		t.Error("empty output should not be recorded")
	}
}

func TestNoAnswer(t *testing.T) {
	err := NoAnswer("left-pad")

	if !errors.Is(err, ErrUsage) {
		t.Error("NoAnswer should return ErrUsage")
	}
	if !errors.Is(err, io.EOF) {
		t.Error("NoAnswer should wrap io.EOF")
	}
	if err.Details["package"] != "left-pad" {
		t.Errorf("package detail = %q, want left-pad", err.Details["package"])
	}
	if !strings.Contains(err.Suggestion, "--yes") {
		t.Errorf("Suggestion should mention --yes, got %q", err.Suggestion)
	}
}

func TestConfigExists(t *testing.T) {
	err := ConfigExists(".mp.yaml")

	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigExists should return ErrConfig")
	}
	if !strings.Contains(err.Error(), ".mp.yaml already exists") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !strings.Contains(err.Suggestion, "--force") {
		t.Errorf("Suggestion should mention --force, got %q", err.Suggestion)
	}
}
