package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dbmrq/mp/internal/action"
	"github.com/dbmrq/mp/internal/install"
	"github.com/dbmrq/mp/internal/logging"
	"github.com/dbmrq/mp/internal/prompt"
)

// installCmd represents the install command.
var installCmd = &cobra.Command{
	Use:     "install <path>",
	Aliases: []string{"i"},
	Short:   "Install the missing packages referenced under a path",
	Long: `Scan a file or directory for required modules and ask, one package at
a time, whether to install each one missing from package.json. The
confirmed packages are installed with a single npm call run next to
the package.json that was found.

Examples:
  mp install src            # Ask for each missing package
  mp install --yes src      # Install all missing packages
  mp install --dry-run src  # Print the install command only`,
	Args: pathArg,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
	addInstallFlags(installCmd)
}

func addInstallFlags(c *cobra.Command) {
	c.Flags().BoolP("yes", "y", false, "Install every missing package without asking")
	c.Flags().Bool("dry-run", false, "Print the install command instead of running it")
}

// runInstall is the entry point for "mp <path>" and "mp install <path>".
func runInstall(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := initLogging(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := cmd.Context()
	m, missing, err := findMissing(ctx, cfg, args[0], log)
	if err != nil {
		return err
	}

	var p action.Prompter = &prompt.Terminal{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
	if yes {
		p = &prompt.Auto{Out: cmd.OutOrStdout()}
	}
	runner := install.New(install.Options{
		Command: cfg.Install.Command,
		Args:    cfg.Install.Args,
	}, log)

	logging.Info("install", "missing", len(missing), "yes", yes, "dry_run", dryRun)
	acts := action.New(cmd.OutOrStdout(), p, runner, log)
	return acts.Install(ctx, filepath.Dir(m.Path), missing, action.InstallOptions{
		AssumeYes: yes,
		DryRun:    dryRun,
	})
}
