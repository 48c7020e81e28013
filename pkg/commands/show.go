package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/notepad/pkg/commands/options"
	"tableflip.dev/notepad/pkg/runner/show"
	"tableflip.dev/notepad/pkg/session"
	"tableflip.dev/notepad/pkg/store"
)

func addShow(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	sections := false

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"show", "list"},
		Short:   "show the current document",
		Example: `
notepad get
notepad get --sections
notepad get --show-id
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := session.New(p)
			defer s.Close()

			r := show.Show{
				ShowID:   io.ShowID,
				Sections: sections,
				Session:  s,
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().BoolVar(&sections, "sections", false,
		"Show the derived section ranges below the document.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
