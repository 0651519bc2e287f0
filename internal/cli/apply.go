package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkgset-dev/pkgset/internal/engine"
)

var applyDryRun bool

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Reconcile the system with the installed sets",
	Long: `Diff the accumulated packages of all installed sets against the system's
explicitly installed packages. Packages no installed set declares are
marked as dependencies, then missing packages are installed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, release, err := newEngine()
		if err != nil {
			return err
		}
		defer release()

		result, err := eng.Apply(context.Background(), &engine.ApplyRequest{
			DryRun: applyDryRun,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if len(result.Demote) == 0 && len(result.Install) == 0 {
			PrintSuccess("System already matches the installed sets")
			return nil
		}

		if result.DryRun {
			PrintInfo(fmt.Sprintf("Would mark %s as dependencies:",
				PrintCount(len(result.Demote), "package", "packages")))
			PrintList(result.Demote, 1)
			PrintInfo(fmt.Sprintf("Would install %s:",
				PrintCount(len(result.Install), "package", "packages")))
			PrintList(result.Install, 1)
			return nil
		}

		PrintSuccess(fmt.Sprintf("Reconciled: %s demoted, %s installed",
			PrintCount(len(result.Demote), "package", "packages"),
			PrintCount(len(result.Install), "package", "packages")))
		return nil
	},
}

func init() {
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Show the delta without applying it")
}
