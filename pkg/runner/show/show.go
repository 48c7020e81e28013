package show

import (
	"context"

	"tableflip.dev/notepad/pkg/printers"
	"tableflip.dev/notepad/pkg/section"
	"tableflip.dev/notepad/pkg/session"
)

// Show prints the current document, optionally with the derived
// section ranges.
type Show struct {
	ShowID   bool
	Sections bool

	Session *session.Session
}

func (s *Show) Do(ctx context.Context) error {
	d := s.Session.Document()

	pp := printers.PrettyPrint{ShowID: s.ShowID}
	pp.Title("notepad")
	pp.Document(d)

	if s.Sections {
		pp.Sections(d, section.Detect(d))
	}
	return nil
}
