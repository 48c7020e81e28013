package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/notepad/pkg/commands/options"
	"tableflip.dev/notepad/pkg/runner/edit"
)

func addSplit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	to := &options.TextOptions{}

	cmd := &cobra.Command{
		Use:   "split",
		Short: "split a line in two at a rune position",
		Example: `
notepad split <line id> --at 5
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a line id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runEdit(&edit.Edit{
				Action: edit.Split,
				ID:     io.ID,
				At:     to.At,
				ShowID: io.ShowID,
			})
		},
	}

	options.AddAtArg(cmd, to)
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
