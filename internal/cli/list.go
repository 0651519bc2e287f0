package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkgset-dev/pkgset/internal/engine"
)

var listTree bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sets",
	Long:  `Display every set and whether it is installed.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, release, err := newEngine()
		if err != nil {
			return err
		}
		defer release()

		infos, err := eng.List(context.Background(), &engine.ListRequest{
			Members: listTree,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(infos)
		}

		if len(infos) == 0 {
			PrintEmptyState("No sets found")
			return nil
		}

		for _, info := range infos {
			state := "uninstalled"
			if info.Installed {
				state = "installed"
			}
			PrintInfo(fmt.Sprintf("%s (%s)", info.Name, state))
			if listTree {
				PrintList(info.Members, 1)
			}
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVarP(&listTree, "tree", "t", false, "Show each set's packages")
}
