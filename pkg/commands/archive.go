package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/notepad/pkg/commands/options"
	"tableflip.dev/notepad/pkg/runner/archives"
	"tableflip.dev/notepad/pkg/session"
	"tableflip.dev/notepad/pkg/store"
)

func addArchive(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "archive",
		Aliases: []string{"archives"},
		Short:   "list the archived sections, most recent first",
		Example: `
notepad archive
notepad archive --show-id
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runArchives(&archives.Archives{ShowID: io.ShowID})
		},
	}

	options.AddShowIDArgs(cmd, io)

	addArchiveRestore(cmd)
	addArchiveDelete(cmd)
	addArchiveClear(cmd)

	topLevel.AddCommand(cmd)
}

func addArchiveRestore(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "append an archived section back onto the document",
		Example: `
notepad archive restore <archive id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an archive id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runArchives(&archives.Archives{Restore: io.ID, ShowID: io.ShowID})
		},
	}

	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addArchiveDelete(parent *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm"},
		Short:   "delete one archived section permanently",
		Example: `
notepad archive delete <archive id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an archive id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runArchives(&archives.Archives{Delete: io.ID, ShowID: io.ShowID})
		},
	}

	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addArchiveClear(parent *cobra.Command) {
	io := &options.IDOptions{}
	yes := false

	cmd := &cobra.Command{
		Use:     "clear",
		Aliases: []string{"nuke"},
		Short:   "delete every archived section permanently",
		Example: `
notepad archive clear --yes
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to clear all archives without --yes")
			}
			return runArchives(&archives.Archives{Clear: true, ShowID: io.ShowID})
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false,
		"Confirm deleting every archived section.")
	parent.AddCommand(cmd)
}

func runArchives(a *archives.Archives) error {
	p, err := store.Load(nil)
	if err != nil {
		return err
	}
	s := session.New(p)
	defer s.Close()
	a.Session = s
	return oo.HandleError(a.Do(context.Background()))
}
