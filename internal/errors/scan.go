package errors

import (
	"fmt"
)

// Scan pipeline error constructors.

// PathNotFound creates an error for a scan root that does not exist.
func PathNotFound(path string) *MPError {
	return &MPError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("path not found: %s", path),
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check the path is spelled correctly and is relative to the current directory.",
	}
}

// ManifestNotFound creates an error when no manifest is found within the
// upward search bound.
func ManifestNotFound(filename, startDir string, attempts int) *MPError {
	where := "in the current directory only"
	switch {
	case attempts == 2:
		where = "in the current directory and its parent"
	case attempts > 2:
		where = fmt.Sprintf("in the current directory and up to %d levels above it", attempts-1)
	}
	return &MPError{
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("no %s found", filename),
		Details: map[string]string{
			"searched_from": startDir,
			"attempts":      fmt.Sprintf("%d", attempts),
		},
		Suggestion: fmt.Sprintf(`Run mp from inside your project, or create a manifest:
    npm init -y

mp looks for %s %s.`, filename, where),
	}
}

// ManifestParseError creates an error for a manifest that exists but is not
// valid JSON.
func ManifestParseError(path string, cause error) *MPError {
	return &MPError{
		Kind:    ErrParse,
		Message: fmt.Sprintf("failed to parse manifest: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `Check the manifest for JSON syntax errors:
  - trailing commas are not allowed
  - keys and strings need double quotes`,
	}
}

// ReadError creates an error for a file or directory that could not be read
// while walking. The walk is aborted and no partial result is reported.
func ReadError(path string, cause error) *MPError {
	return &MPError{
		Kind:    ErrRead,
		Message: fmt.Sprintf("failed to read %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check file permissions, or exclude the directory with scan.exclude_dirs in .mp.yaml.",
	}
}
