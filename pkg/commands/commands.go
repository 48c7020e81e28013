package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/notepad/pkg/commands/options"
	"tableflip.dev/notepad/pkg/runner/edit"
	"tableflip.dev/notepad/pkg/session"
	"tableflip.dev/notepad/pkg/store"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "notepad",
		Short: base.Wrap80("A persistent line-oriented to-do notepad on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	options.AddOutputArg(cmd, oo)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addShow(topLevel)
	addAdd(topLevel)
	addToggle(topLevel)
	addEdit(topLevel)
	addInsert(topLevel)
	addSplit(topLevel)
	addRm(topLevel)
	addMove(topLevel)
	addCleanup(topLevel)
	addArchive(topLevel)
	addSettings(topLevel)
	addVersion(topLevel)
}

// runEdit opens a session wired for archive resolution, runs one line
// mutation, and tears the session down. One-shot commands must not
// exit while a 350ms archive timer is still pending, so the runner
// registers its notify channel before the session exists.
func runEdit(e *edit.Edit) error {
	p, err := store.Load(nil)
	if err != nil {
		return err
	}
	s := session.New(p, session.WithNotify(e.NotifyChannel()))
	defer s.Close()
	e.Session = s
	return oo.HandleError(e.Do(context.Background()))
}
