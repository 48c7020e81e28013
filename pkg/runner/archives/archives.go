package archives

import (
	"context"
	"errors"

	"tableflip.dev/notepad/pkg/i18n"
	"tableflip.dev/notepad/pkg/printers"
	"tableflip.dev/notepad/pkg/session"
)

// Archives lists or mutates the archived sections. Expired entries are
// dropped opportunistically on every invocation, mirroring the
// archive-view-load behavior of the UI.
type Archives struct {
	Restore string
	Delete  string
	Clear   bool

	ShowID bool

	Session *session.Session
}

func (a *Archives) Do(ctx context.Context) error {
	list := a.Session.ExpireOldArchives()
	tr := i18n.For(a.Session.Settings().Language)

	switch {
	case a.Restore != "":
		d, _ := a.Session.RestoreArchive(a.Restore)
		pp := printers.PrettyPrint{ShowID: a.ShowID}
		pp.Title("notepad")
		pp.Document(d)
		return nil
	case a.Delete != "":
		list = a.Session.DeleteArchive(a.Delete)
	case a.Clear:
		if len(list) == 0 {
			return errors.New("archives: nothing to clear")
		}
		list = a.Session.ClearAllArchives()
	}

	pp := printers.PrettyPrint{ShowID: a.ShowID}
	pp.Title("archive")
	pp.Archive(list, tr)
	return nil
}
