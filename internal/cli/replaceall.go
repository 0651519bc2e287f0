package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pkgset-dev/pkgset/internal/engine"
)

var replaceAllCmd = &cobra.Command{
	Use:   "replace-all <old> <new>",
	Short: "Rename a package across every set",
	Long: `Rewrite every line that exactly matches the old package name to the new
one, in every set. Comments and lines where the old name only appears as a
substring are untouched. The live system is not consulted.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, release, err := newEngine()
		if err != nil {
			return err
		}
		defer release()

		result, err := eng.ReplaceAll(context.Background(), &engine.ReplaceAllRequest{
			Old: args[0],
			New: args[1],
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		if len(result.Changed) == 0 {
			PrintEmptyState(fmt.Sprintf("No set lists %s", args[0]))
			return nil
		}
		PrintSuccess(fmt.Sprintf("Replaced %s with %s in %s",
			args[0], args[1], PrintCount(len(result.Changed), "set", "sets")))
		PrintList(result.Changed, 1)
		return nil
	},
}
