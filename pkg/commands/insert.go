package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/notepad/pkg/commands/options"
	"tableflip.dev/notepad/pkg/runner/edit"
)

func addInsert(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	to := &options.TextOptions{}
	po := &options.PositionOptions{}

	cmd := &cobra.Command{
		Use:   "insert",
		Short: "insert a line next to an existing one",
		Example: `
notepad insert <line id> water the plants
notepad insert <line id> --before
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
			action := edit.InsertAfter
			if po.Before {
				action = edit.InsertBefore
			}
			return runEdit(&edit.Edit{
				Action: action,
				ID:     io.ID,
				Text:   to.Text,
				ShowID: io.ShowID,
			})
		},
	}

	options.AddBeforeArg(cmd, po)
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
