package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/notepad/pkg/commands/options"
	"tableflip.dev/notepad/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	to := &options.TextOptions{}

	cmd := &cobra.Command{
		Use:     "edit",
		Aliases: []string{"text", "set"},
		Short:   "replace the text of a line",
		Example: `
notepad edit <line id> pick up the dry cleaning
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a line id")
			}
			io.ID = args[0]
			to.Text = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runEdit(&edit.Edit{
				Action: edit.SetText,
				ID:     io.ID,
				Text:   to.Text,
				ShowID: io.ShowID,
			})
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
