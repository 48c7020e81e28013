// Package printers renders documents and archives for the CLI.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/notepad/pkg/archive"
	"tableflip.dev/notepad/pkg/doc"
	"tableflip.dev/notepad/pkg/i18n"
	"tableflip.dev/notepad/pkg/section"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Document prints every line with its state mark, separating sections
// the way the document does: by blank lines.
func (pp *PrettyPrint) Document(d doc.Document) {
	if len(d) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, l := range d {
		if pp.ShowID {
			id := shortID(l.ID)
			_, _ = y.Print(id)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(id)))
		}
		switch {
		case l.Empty():
			_, _ = t.Println("")
		case l.State == doc.Done:
			_, _ = done.Printf("[x] %s\n", l.Text)
		default:
			_, _ = t.Printf("[ ] %s\n", l.Text)
		}
	}
	_, _ = t.Println("")
}

// Sections prints the derived section ranges, marking complete ones.
func (pp *PrettyPrint) Sections(d doc.Document, sections []section.Section) {
	t := color.New()
	g := color.New(color.FgGreen)

	for i, s := range sections {
		label := fmt.Sprintf("section %d: lines %d-%d", i+1, s.Start+1, s.End)
		if s.Complete {
			_, _ = g.Printf("%s (complete)\n", label)
		} else {
			_, _ = t.Println(label)
		}
	}
	_, _ = t.Println("")
}

// Archive prints the archived sections, most recent first, with their
// relative timestamps in the configured language.
func (pp *PrettyPrint) Archive(l archive.List, tr i18n.Translations) {
	if len(l) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf(" %s\n\n", tr.ArchiveEmpty)
		return
	}

	now := time.Now()
	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true

	for _, s := range l {
		texts := make([]string, 0, len(s.Lines))
		for _, line := range s.Lines {
			if line.Empty() {
				continue
			}
			texts = append(texts, "✓ "+line.Text)
		}
		id := ""
		if pp.ShowID {
			id = shortID(s.ID)
		}
		table.AddRow(id, tr.FormatArchived(s.ArchivedAt, now), strings.Join(texts, "\n"))
	}
	fmt.Println(table)

	f := color.New(color.Faint)
	_, _ = f.Printf("\n%s\n", tr.ArchiveNotice)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
