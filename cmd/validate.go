package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/conceptsort/internal/activity"
)

var validateCmd = &cobra.Command{
	Use:   "validate <files...>",
	Short: "Check activity files against the activity schema",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		failed := 0
		for _, path := range args {
			a, err := activity.FileSource{Path: path}.Fetch(ctx)
			if err != nil {
				failed++
				fmt.Fprintf(out, "✗ %s\n    %v\n", path, err)
				continue
			}
			fmt.Fprintf(out, "✓ %s  %q  %s (%d) / %s (%d)\n",
				path, a.Title,
				a.Groups.GroupA.Name, len(a.Groups.GroupA.CorrectConcepts),
				a.Groups.GroupB.Name, len(a.Groups.GroupB.CorrectConcepts))
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d files invalid", failed, len(args))
		}
		return nil
	},
}
