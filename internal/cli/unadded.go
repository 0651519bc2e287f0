package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var unaddedCmd = &cobra.Command{
	Use:   "unadded",
	Short: "List explicitly installed packages no set declares",
	Long: `List every package the system considers explicitly installed that appears
in no set, installed or not. Useful when bootstrapping a sets directory on
an existing system.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, release, err := newEngine()
		if err != nil {
			return err
		}
		defer release()

		result, err := eng.Unadded(context.Background())
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if len(result.Packages) == 0 {
			PrintEmptyState("Every explicitly installed package is in a set")
			return nil
		}
		for _, pkg := range result.Packages {
			PrintInfo(pkg)
		}
		return nil
	},
}
