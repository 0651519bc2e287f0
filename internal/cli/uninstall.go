package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkgset-dev/pkgset/internal/engine"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <set>...",
	Short: "Uninstall sets, keeping their files",
	Long: `Remove the installed markers of the named sets and mark their packages as
dependencies, except packages another installed set still needs. Set files
are never modified. Sets that are not installed are reported and skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, release, err := newEngine()
		if err != nil {
			return err
		}
		defer release()

		result, err := eng.Uninstall(context.Background(), &engine.UninstallRequest{
			Sets: args,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		for _, name := range result.Skipped {
			PrintWarning(fmt.Sprintf("Set %s is not installed, skipping", name))
		}
		if len(result.Sets) > 0 {
			PrintSuccess(fmt.Sprintf("Uninstalled %s, marked %s as dependencies",
				PrintCount(len(result.Sets), "set", "sets"),
				PrintCount(len(result.Demoted), "package", "packages")))
		}
		return nil
	},
}
