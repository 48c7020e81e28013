package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/notepad/pkg/commands/options"
	"tableflip.dev/notepad/pkg/runner/edit"
)

func addAdd(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	to := &options.TextOptions{}

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "add a line at the end of the document",
		Example: `
notepad add buy milk
notepad add
`,
		Args: func(_ *cobra.Command, args []string) error {
			to.Text = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runEdit(&edit.Edit{
				Action: edit.Add,
				Text:   to.Text,
				ShowID: io.ShowID,
			})
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
