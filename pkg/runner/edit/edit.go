package edit

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/notepad/pkg/doc"
	"tableflip.dev/notepad/pkg/printers"
	"tableflip.dev/notepad/pkg/session"
)

// Action selects the document mutation to run.
type Action string

const (
	Toggle       Action = "toggle"
	SetText      Action = "text"
	Add          Action = "add"
	InsertAfter  Action = "insert-after"
	InsertBefore Action = "insert-before"
	Split        Action = "split"
	Delete       Action = "delete"
	MoveUp       Action = "move-up"
	MoveDown     Action = "move-down"
	CleanUp      Action = "cleanup"
)

// Edit runs one document mutation and prints the result. If the
// mutation completes a section, it waits for the archive workflow to
// resolve so a one-shot CLI invocation does not tear the engine down
// mid-flight.
type Edit struct {
	Action Action
	ID     string
	Text   string
	At     int

	ShowID bool

	Session  *session.Session
	resolved chan struct{}
}

// NotifyChannel returns the notify callback Edit needs registered on
// its session; wire it via session.WithNotify before creating the
// session.
func (e *Edit) NotifyChannel() func(session.Notification) {
	e.resolved = make(chan struct{}, 1)
	return func(n session.Notification) {
		if n.Kind == session.FocusLastLine {
			select {
			case e.resolved <- struct{}{}:
			default:
			}
		}
	}
}

func (e *Edit) Do(ctx context.Context) error {
	var d doc.Document
	switch e.Action {
	case Toggle:
		d = e.Session.ToggleLine(e.ID)
	case SetText:
		d = e.Session.UpdateLineText(e.ID, e.Text)
		// One-shot invocation: the debounce window outlives the process,
		// and Close drops the pending write. Persist it now.
		e.Session.Flush()
	case Add:
		d = e.Session.AddLine(e.Text)
	case InsertAfter:
		d = e.Session.InsertLineAfter(e.ID, e.Text)
	case InsertBefore:
		d = e.Session.InsertLineBefore(e.ID, e.Text)
	case Split:
		d = e.Session.SplitLine(e.ID, e.At)
	case Delete:
		d = e.Session.DeleteLine(e.ID)
	case MoveUp:
		d = e.Session.MoveLineUp(e.ID)
	case MoveDown:
		d = e.Session.MoveLineDown(e.ID)
	case CleanUp:
		d = e.Session.CleanUpEmptyLines()
	default:
		return errors.New("edit: unknown action")
	}

	if _, ok := e.Session.Archiving(); ok && e.resolved != nil {
		select {
		case <-e.resolved:
		case <-time.After(2 * time.Second):
		case <-ctx.Done():
			return ctx.Err()
		}
		d = e.Session.Document()
	}

	pp := printers.PrettyPrint{ShowID: e.ShowID}
	pp.Title("notepad")
	pp.Document(d)
	return nil
}
