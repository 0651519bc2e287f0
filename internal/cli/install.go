package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkgset-dev/pkgset/internal/engine"
)

var installCmd = &cobra.Command{
	Use:   "install <set>...",
	Short: "Install sets and mark them installed",
	Long: `Install the accumulated packages of the named sets on the system, then
mark every named set installed. The live install happens first, so a
failure never records a set as installed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, release, err := newEngine()
		if err != nil {
			return err
		}
		defer release()

		result, err := eng.Install(context.Background(), &engine.InstallRequest{
			Sets: args,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(fmt.Sprintf("Installed %s covering %s",
			PrintCount(len(result.Sets), "set", "sets"),
			PrintCount(len(result.Packages), "package", "packages")))
		return nil
	},
}
