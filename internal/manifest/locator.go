package manifest

import (
	"os"
	"path/filepath"

	mperrors "github.com/dbmrq/mp/internal/errors"
	"github.com/dbmrq/mp/internal/logging"
)

// MaxSearchDepth is the hard bound on directories tried, the start
// directory included.
const MaxSearchDepth = 5

// Options configures a Locator.
type Options struct {
	// Filename is the manifest file name (default: package.json).
	Filename string
	// MaxDepth is the number of directories tried, capped at MaxSearchDepth.
	MaxDepth int
	// Fields are the objects whose keys are declared (default: dependencies).
	Fields []string
	// Dir is the start directory (default: the working directory).
	Dir string
}

// Locator finds the nearest manifest by climbing from a start directory.
type Locator struct {
	opts   Options
	logger *logging.Logger
}

// NewLocator creates a Locator, filling unset options with defaults.
func NewLocator(opts Options, logger *logging.Logger) *Locator {
	if opts.Filename == "" {
		opts.Filename = "package.json"
	}
	if opts.MaxDepth <= 0 || opts.MaxDepth > MaxSearchDepth {
		opts.MaxDepth = MaxSearchDepth
	}
	if len(opts.Fields) == 0 {
		opts.Fields = []string{"dependencies"}
	}
	if logger == nil {
		logger = logging.Global()
	}
	return &Locator{
		opts:   opts,
		logger: logger.With("component", "manifest"),
	}
}

// Locate reads the first manifest found in the start directory or one of
// its parents, trying at most MaxDepth directories. Any read failure moves
// the search up one level. When nothing is found the error is ErrNotFound;
// a manifest that is found but malformed is an ErrParse error.
func (l *Locator) Locate() (*Manifest, error) {
	start := l.opts.Dir
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, mperrors.ReadError(".", err)
		}
		start = wd
	}
	start, err := filepath.Abs(start)
	if err != nil {
		return nil, mperrors.ReadError(start, err)
	}

	dir := start
	for attempt := 1; attempt <= l.opts.MaxDepth; attempt++ {
		path := filepath.Join(dir, l.opts.Filename)
		data, err := os.ReadFile(path)
		if err == nil {
			l.logger.Debug("manifest found", "path", path, "attempt", attempt)
			return Parse(path, data, l.opts.Fields)
		}
		l.logger.Debug("manifest not readable", "path", path, "error", err)

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, mperrors.ManifestNotFound(l.opts.Filename, start, l.opts.MaxDepth)
}
