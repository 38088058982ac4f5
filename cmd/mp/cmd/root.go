// Package cmd provides the CLI commands for mp.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mperrors "github.com/dbmrq/mp/internal/errors"
)

// Version information - set via ldflags at build time in main.go.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command. With a path argument it behaves
// like "mp install <path>".
var rootCmd = &cobra.Command{
	Use:   "mp <path>",
	Short: "Find and install the npm packages your code requires",
	Long: `mp scans JavaScript sources for require("name") calls, compares the
referenced modules with the dependencies declared in the nearest
package.json, and offers to install the ones that are missing.

Examples:
  mp src                # Same as "mp install src"
  mp check src          # Only list missing packages
  mp install -y src     # Install without asking
  mp i --dry-run src    # Print the npm command instead of running it`,
	Args:          pathArg,
	RunE:          runInstall,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	addGlobalFlags(rootCmd)
	addInstallFlags(rootCmd)
	rootCmd.SetFlagErrorFunc(flagError)
}

// addGlobalFlags registers the flags every command inherits.
func addGlobalFlags(c *cobra.Command) {
	c.PersistentFlags().String("config", "", "Config file (default: ./.mp.yaml)")
	c.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")
	c.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
}

// pathArg accepts exactly one path.
func pathArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return mperrors.Misuse(cmd.UsageString())
	}
	return nil
}

func flagError(cmd *cobra.Command, err error) error {
	return mperrors.Misuse(cmd.UsageString()).WithCause(err)
}

// Execute runs the root command and exits non-zero on any error.
// This is called by main.main().
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("mp {{.Version}}\n")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprint(os.Stderr, mperrors.Format(err))
		os.Exit(1)
	}
}
