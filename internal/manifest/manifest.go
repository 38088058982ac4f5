// Package manifest locates and parses the dependency manifest
// (package.json) that declares a project's dependencies.
package manifest

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	mperrors "github.com/dbmrq/mp/internal/errors"
	"github.com/dbmrq/mp/internal/modset"
)

// Manifest is a parsed dependency manifest. It is not modified after Parse.
type Manifest struct {
	// Path is the file the manifest was read from.
	Path string
	// Dependencies maps each declared module name to its version string.
	Dependencies map[string]string

	order []string
}

// Names returns the declared module names in document order.
func (m *Manifest) Names() *modset.Set {
	return modset.New(m.order...)
}

// Parse decodes manifest content. The declared set is the union of the keys
// of each object named in fields; a missing field contributes nothing.
// Content that is not a JSON object, or a field that is not an object,
// yields an ErrParse error.
func Parse(path string, data []byte, fields []string) (*Manifest, error) {
	if !gjson.ValidBytes(data) {
		return nil, mperrors.ManifestParseError(path, errors.New("invalid JSON"))
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, mperrors.ManifestParseError(path, errors.New("top level value is not an object"))
	}

	m := &Manifest{
		Path:         path,
		Dependencies: make(map[string]string),
	}

	// Map lookups avoid gjson path syntax, so field names are taken literally.
	top := root.Map()
	for _, field := range fields {
		value, ok := top[field]
		if !ok || value.Type == gjson.Null {
			continue
		}
		if !value.IsObject() {
			return nil, mperrors.ManifestParseError(path, fmt.Errorf("%q is not an object", field))
		}
		value.ForEach(func(key, version gjson.Result) bool {
			name := key.String()
			if _, seen := m.Dependencies[name]; !seen {
				m.order = append(m.order, name)
			}
			m.Dependencies[name] = version.String()
			return true
		})
	}

	return m, nil
}
