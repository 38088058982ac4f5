package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/mp/internal/action"
)

// checkCmd represents the check command.
var checkCmd = &cobra.Command{
	Use:     "check <path>",
	Aliases: []string{"c"},
	Short:   "List the packages referenced under a path but not declared",
	Long: `Scan a file or directory for required modules and print the ones
missing from the nearest package.json. Nothing is installed.

Examples:
  mp check src        # List missing packages under src
  mp c index.js       # Check a single file`,
	Args: pathArg,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// runCheck is the entry point for the check command.
func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := initLogging(cmd, cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	_, missing, err := findMissing(cmd.Context(), cfg, args[0], log)
	if err != nil {
		return err
	}

	action.New(cmd.OutOrStdout(), nil, nil, log).Check(missing)
	return nil
}
