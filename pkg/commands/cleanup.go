package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/notepad/pkg/commands/options"
	"tableflip.dev/notepad/pkg/runner/edit"
)

func addCleanup(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "trim trailing empty lines from the document",
		Example: `
notepad cleanup
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runEdit(&edit.Edit{
				Action: edit.CleanUp,
				ShowID: io.ShowID,
			})
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
