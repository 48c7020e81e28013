package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/notepad/pkg/commands/options"
	"tableflip.dev/notepad/pkg/runner/edit"
)

func addMove(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	direction := ""

	cmd := &cobra.Command{
		Use:       "move",
		Short:     "move a line up or down one position",
		ValidArgs: []string{"up", "down"},
		Example: `
notepad move <line id> up
notepad move <line id> down
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a line id and a direction (up or down)")
			}
			io.ID = args[0]
			direction = args[1]
			if direction != "up" && direction != "down" {
				return errors.New("direction must be up or down")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			action := edit.MoveUp
			if direction == "down" {
				action = edit.MoveDown
			}
			return runEdit(&edit.Edit{
				Action: action,
				ID:     io.ID,
				ShowID: io.ShowID,
			})
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
