// Package extract finds the module names a JavaScript source references
// through require calls.
//
// Extraction is a regular expression scan, not a parse: names built at
// runtime, relative paths, scoped packages and ES import statements are not
// reported.
package extract

import (
	"os"
	"regexp"

	mperrors "github.com/dbmrq/mp/internal/errors"
)

// requirePattern matches require("name") or require('name') where name is
// letters, digits, underscore or hyphen. Matching is case-insensitive.
var requirePattern = regexp.MustCompile(`(?i)require\(["']([A-Za-z0-9_-]+)['"]\)`)

// Extract returns the module names referenced in text, in order of
// appearance. Repeated references are kept; callers deduplicate.
func Extract(text string) []string {
	return Bytes([]byte(text))
}

// Bytes is Extract for raw file content. Content that is not valid UTF-8 is
// scanned as-is.
func Bytes(content []byte) []string {
	matches := requirePattern.FindAllSubmatch(content, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, string(m[1]))
	}
	return names
}

// File reads path and extracts its module names. Read failures are
// returned as ErrRead errors.
func File(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, mperrors.ReadError(path, err)
	}
	return Bytes(content), nil
}
