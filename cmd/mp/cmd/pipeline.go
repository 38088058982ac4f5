package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dbmrq/mp/internal/config"
	mperrors "github.com/dbmrq/mp/internal/errors"
	"github.com/dbmrq/mp/internal/logging"
	"github.com/dbmrq/mp/internal/manifest"
	"github.com/dbmrq/mp/internal/reconcile"
	"github.com/dbmrq/mp/internal/scan"
)

// loadConfig reads --config, or .mp.yaml in the working directory when
// present, and maps load failures to ErrConfig errors.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}

	shown := path
	if shown == "" {
		shown = config.DefaultConfigPath
	}
	var loadErr *config.LoadError
	if errors.As(err, &loadErr) && loadErr.IsValidation() {
		return nil, mperrors.ConfigValidationError(shown, loadErr.Err)
	}
	return nil, mperrors.ConfigParseError(shown, err)
}

// initLogging sets up the global logger on stderr. It returns a logger
// scoped to the command and a closer.
func initLogging(cmd *cobra.Command, cfg *config.Config) (*logging.Logger, func(), error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logJSON, _ := cmd.Flags().GetBool("log-json")

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, mperrors.ConfigValidationError(config.DefaultConfigPath, err)
	}
	if verbose {
		level = logging.LevelDebug
	}

	logConfig := &logging.Config{
		Level:      level,
		File:       cfg.Log.File,
		Console:    true,
		Output:     cmd.ErrOrStderr(),
		JSONFormat: cfg.Log.JSON || logJSON,
	}
	if err := logging.InitGlobal(logConfig); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	logging.Debug("mp starting", "version", Version)

	return logging.With("command", cmd.Name()), func() { _ = logging.CloseGlobal() }, nil
}

// findMissing runs the pipeline shared by check and install: locate the
// manifest from the working directory, walk path, and reconcile.
func findMissing(ctx context.Context, cfg *config.Config, path string, log *logging.Logger) (*manifest.Manifest, []string, error) {
	locator := manifest.NewLocator(manifest.Options{
		Filename: cfg.Manifest.Filename,
		MaxDepth: cfg.Manifest.MaxDepth,
		Fields:   cfg.Manifest.Fields,
	}, log)
	m, err := locator.Locate()
	if err != nil {
		return nil, nil, err
	}

	root := path
	if !filepath.IsAbs(root) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, nil, mperrors.Wrap(err, mperrors.ErrRead, "failed to get working directory")
		}
		root = filepath.Join(wd, root)
	}

	walker := scan.NewWalker(scan.Options{
		Extensions:  cfg.Scan.Extensions,
		ExcludeDirs: cfg.Scan.ExcludeDirs,
	}, log)
	refs, err := walker.Walk(ctx, root)
	if err != nil {
		return nil, nil, err
	}

	missing := reconcile.Missing(refs, m.Names())
	log.Debug("reconciled",
		"manifest", m.Path,
		"referenced", refs.Len(),
		"declared", len(m.Dependencies),
		"missing", len(missing))

	return m, missing, nil
}
