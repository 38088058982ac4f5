package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dbmrq/mp/internal/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Show the version, commit hash, build date and Go/platform
information of this mp binary.

Examples:
  mp version         # Human-readable
  mp version --json  # Machine-readable`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("json", false, "Print version information as JSON")
}

// runVersion handles the version command.
func runVersion(cmd *cobra.Command, args []string) error {
	info := version.NewInfo(Version, Commit, Date)

	asJSON, _ := cmd.Flags().GetBool("json")
	if !asJSON {
		cmd.Println(info.FullString())
		return nil
	}

	out, err := info.JSON()
	if err != nil {
		return err
	}
	cmd.Println(out)
	return nil
}
