package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/dbmrq/mp/internal/config"
	mperrors "github.com/dbmrq/mp/internal/errors"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .mp.yaml in the current directory",
	Long: `Write a .mp.yaml holding the default settings, ready to edit.

Use --force to overwrite an existing file.

Examples:
  mp init          # Create .mp.yaml
  mp init --force  # Replace an existing .mp.yaml`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing configuration file")
}

// runInit is the entry point for the init command.
func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath
	}

	if err := config.WriteDefault(path, force); err != nil {
		if errors.Is(err, config.ErrExists) {
			return mperrors.ConfigExists(path)
		}
		return mperrors.Wrap(err, mperrors.ErrConfig, "failed to write configuration")
	}

	cmd.Printf("Created %s\n", path)
	return nil
}
