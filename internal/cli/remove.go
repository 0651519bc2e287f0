package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkgset-dev/pkgset/internal/engine"
)

var removeCmd = &cobra.Command{
	Use:   "remove <set> <package>...",
	Short: "Remove packages from a set",
	Long: `Remove packages from a set's file. When the set is installed, packages no
other installed set needs are first marked as dependencies on the system.
Comment lines are never touched.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, release, err := newEngine()
		if err != nil {
			return err
		}
		defer release()

		result, err := eng.Remove(context.Background(), &engine.RemoveRequest{
			Set:      args[0],
			Packages: args[1:],
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(fmt.Sprintf("Removed %s from %s",
			PrintCount(len(result.Packages), "package", "packages"), result.Set))
		if len(result.Demoted) > 0 {
			PrintInfo(fmt.Sprintf("Marked as dependency: %s",
				PrintCount(len(result.Demoted), "package", "packages")))
		}
		return nil
	},
}
