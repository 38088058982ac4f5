// Package scan walks a file or directory tree and collects the module names
// referenced by its source files.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	mperrors "github.com/dbmrq/mp/internal/errors"
	"github.com/dbmrq/mp/internal/extract"
	"github.com/dbmrq/mp/internal/logging"
	"github.com/dbmrq/mp/internal/modset"
)

// Options configures a Walker.
type Options struct {
	// Extensions are the file-name suffixes treated as source files.
	Extensions []string
	// ExcludeDirs are directory names that are never descended into.
	ExcludeDirs []string
}

// DefaultOptions scans .js files and skips node_modules.
func DefaultOptions() Options {
	return Options{
		Extensions:  []string{".js"},
		ExcludeDirs: []string{"node_modules"},
	}
}

// Walker collects referenced module names from a tree.
//
// Entries are classified without following symlinks, so a symlinked
// directory is never descended into and the walk cannot cycle.
type Walker struct {
	opts   Options
	logger *logging.Logger
}

// NewWalker creates a Walker. Empty extensions or nil exclude dirs take
// the defaults; a nil logger uses the global logger.
func NewWalker(opts Options, logger *logging.Logger) *Walker {
	defaults := DefaultOptions()
	if len(opts.Extensions) == 0 {
		opts.Extensions = defaults.Extensions
	}
	if opts.ExcludeDirs == nil {
		opts.ExcludeDirs = defaults.ExcludeDirs
	}
	if logger == nil {
		logger = logging.Global()
	}
	return &Walker{
		opts:   opts,
		logger: logger.With("component", "walker"),
	}
}

// Walk returns the deduplicated module names referenced under root.
//
// A regular file root is extracted regardless of its name. A directory root
// is walked recursively. A missing root yields an ErrNotFound error; any
// read failure aborts the walk with an ErrRead error and no partial result.
func (w *Walker) Walk(ctx context.Context, root string) (*modset.Set, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, mperrors.PathNotFound(root)
		}
		return nil, mperrors.ReadError(root, err)
	}

	var refs *modset.Set
	switch {
	case info.IsDir():
		refs, err = w.walkDir(ctx, root)
	case info.Mode().IsRegular():
		refs, err = w.scanFile(root)
	default:
		err = mperrors.ReadError(root, fmt.Errorf("not a regular file or directory (%s)", info.Mode().Type()))
	}
	if err != nil {
		return nil, err
	}

	w.logger.Debug("walk complete", "root", root, "modules", refs.Len())
	return refs, nil
}

// walkDir collects the names referenced under dir. Each subdirectory's set
// is merged in at the point the subdirectory is visited.
func (w *Walker) walkDir(ctx context.Context, dir string) (*modset.Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, mperrors.ReadError(dir, err)
	}

	refs := modset.New()
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		var sub *modset.Set
		switch {
		case entry.IsDir() && w.isExcluded(name):
			w.logger.Debug("skipping excluded directory", "path", path)
			continue
		case entry.IsDir():
			sub, err = w.walkDir(ctx, path)
		case w.isSource(name):
			sub, err = w.scanFile(path)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		refs.Merge(sub)
	}

	return refs, nil
}

func (w *Walker) scanFile(path string) (*modset.Set, error) {
	names, err := extract.File(path)
	if err != nil {
		return nil, err
	}
	w.logger.Debug("scanned file", "path", path, "references", len(names))
	return modset.New(names...), nil
}

func (w *Walker) isExcluded(name string) bool {
	return slices.Contains(w.opts.ExcludeDirs, name)
}

func (w *Walker) isSource(name string) bool {
	for _, ext := range w.opts.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
