package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkgset-dev/pkgset/internal/engine"
)

var (
	addNew       bool
	addInstalled bool
	addMove      bool
)

var addCmd = &cobra.Command{
	Use:   "add <set> <package>...",
	Short: "Add packages to a set",
	Long: `Merge packages into a set's file. Packages already listed - including
commented-out lines - are left alone.

With --new the set is created if missing; adding --installed marks the new
set installed and installs its packages. With --move the packages are
relocated out of every other set that lists them.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, release, err := newEngine()
		if err != nil {
			return err
		}
		defer release()

		result, err := eng.Add(context.Background(), &engine.AddRequest{
			Set:       args[0],
			Packages:  args[1:],
			New:       addNew,
			Installed: addInstalled,
			Move:      addMove,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if result.Created {
			PrintSuccess(fmt.Sprintf("Created set %s", result.Set))
		}
		PrintSuccess(fmt.Sprintf("Added %s to %s",
			PrintCount(len(result.Added), "package", "packages"), result.Set))
		if len(result.Moved) > 0 {
			PrintInfo(fmt.Sprintf("Moved from other sets: %s",
				PrintCount(len(result.Moved), "package", "packages")))
			PrintList(result.Moved, 1)
		}
		return nil
	},
}

func init() {
	addCmd.Flags().BoolVarP(&addNew, "new", "n", false, "Create the set if it does not exist")
	addCmd.Flags().BoolVarP(&addInstalled, "installed", "i", false, "Mark a newly created set installed")
	addCmd.Flags().BoolVarP(&addMove, "move", "m", false, "Move the packages out of every other set")
}
