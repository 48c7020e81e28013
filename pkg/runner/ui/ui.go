package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/notepad/pkg/session"
	"tableflip.dev/notepad/pkg/store"
	"tableflip.dev/notepad/pkg/tui"
)

// UI opens the full-screen editor. The session owns the archive timer,
// so the program stays up until the user quits and pending archives
// resolve through the relay.
type UI struct {
	Persistence store.Persistence
}

func (u *UI) Do(ctx context.Context) error {
	relay := tui.NewRelay()
	sess := session.New(u.Persistence, session.WithNotify(relay.Notify))
	defer sess.Close()

	sess.ExpireOldArchives()

	p := tea.NewProgram(tui.NewModel(sess, relay), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
