// Package doc holds the ordered-line document model and the pure
// transformations over it. Every operation returns a new Document and
// leaves its input untouched; callers own deciding what to persist.
package doc

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// State marks a line as open or completed.
type State string

const (
	Todo State = "TODO"
	Done State = "DONE"
)

// Line is one editable unit of text. IDs are stable for the lifetime of
// the line and never reused.
type Line struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	State     State  `json:"state"`
	UpdatedAt int64  `json:"updatedAt"`
}

// Empty reports whether the line holds no visible text.
func (l Line) Empty() bool {
	return strings.TrimSpace(l.Text) == ""
}

// Document is the full ordered collection of lines. Order is meaningful:
// adjacency determines sections.
type Document []Line

var nowMillis = func() int64 {
	return time.Now().UnixMilli()
}

// NewLine creates a fresh TODO line.
func NewLine(text string) Line {
	return Line{
		ID:        uuid.NewString(),
		Text:      text,
		State:     Todo,
		UpdatedAt: nowMillis(),
	}
}

// Seed returns the minimal valid document: a single empty line.
func Seed() Document {
	return Document{NewLine("")}
}

// IndexOf returns the position of the line with the given id, or -1.
func (d Document) IndexOf(id string) int {
	for i := range d {
		if d[i].ID == id {
			return i
		}
	}
	return -1
}

// HasVisible reports whether any line carries visible text.
func (d Document) HasVisible() bool {
	for _, l := range d {
		if !l.Empty() {
			return true
		}
	}
	return false
}

// LastNonEmptyIndex returns the index of the last line with visible
// text, or -1 for an all-empty document.
func (d Document) LastNonEmptyIndex() int {
	for i := len(d) - 1; i >= 0; i-- {
		if !d[i].Empty() {
			return i
		}
	}
	return -1
}

func (d Document) clone() Document {
	out := make(Document, len(d))
	copy(out, d)
	return out
}

// Toggle flips TODO<->DONE for the line with the given id. Unknown ids
// are a no-op.
func (d Document) Toggle(id string) Document {
	i := d.IndexOf(id)
	if i < 0 {
		return d
	}
	out := d.clone()
	if out[i].State == Done {
		out[i].State = Todo
	} else {
		out[i].State = Done
	}
	out[i].UpdatedAt = nowMillis()
	return out
}

// SetText replaces the text of the line with the given id. Unknown ids
// are a no-op.
func (d Document) SetText(id, text string) Document {
	i := d.IndexOf(id)
	if i < 0 {
		return d
	}
	out := d.clone()
	out[i].Text = text
	out[i].UpdatedAt = nowMillis()
	return out
}

// Add appends a fresh line.
func (d Document) Add(text string) Document {
	out := d.clone()
	return append(out, NewLine(text))
}

// InsertAfter inserts a fresh line after the line with the given id.
// If the id is absent the line is appended.
func (d Document) InsertAfter(afterID, text string) Document {
	i := d.IndexOf(afterID)
	if i < 0 {
		return d.Add(text)
	}
	return d.insert(i+1, NewLine(text))
}

// InsertBefore inserts a fresh line before the line with the given id.
// If the id is absent the line is prepended.
func (d Document) InsertBefore(beforeID, text string) Document {
	i := d.IndexOf(beforeID)
	if i < 0 {
		i = 0
	}
	return d.insert(i, NewLine(text))
}

func (d Document) insert(at int, l Line) Document {
	out := make(Document, 0, len(d)+1)
	out = append(out, d[:at]...)
	out = append(out, l)
	out = append(out, d[at:]...)
	return out
}

// Split cuts the line with the given id at the rune offset splitAt
// (clamped to the text bounds). The original line keeps the prefix and
// its id/state; the suffix becomes a fresh TODO line directly below.
// Unknown ids are a no-op.
func (d Document) Split(id string, splitAt int) Document {
	i := d.IndexOf(id)
	if i < 0 {
		return d
	}
	runes := []rune(d[i].Text)
	if splitAt < 0 {
		splitAt = 0
	}
	if splitAt > len(runes) {
		splitAt = len(runes)
	}
	out := d.clone()
	out[i].Text = string(runes[:splitAt])
	out[i].UpdatedAt = nowMillis()
	return out.insert(i+1, NewLine(string(runes[splitAt:])))
}

// Delete removes the line with the given id. Unknown ids are a no-op.
// Deleting the last remaining line is legal here; the non-empty
// invariant is the session's job.
func (d Document) Delete(id string) Document {
	i := d.IndexOf(id)
	if i < 0 {
		return d
	}
	out := make(Document, 0, len(d)-1)
	out = append(out, d[:i]...)
	out = append(out, d[i+1:]...)
	return out
}

// MoveUp swaps the line with its predecessor. No-op at the top edge or
// for unknown ids.
func (d Document) MoveUp(id string) Document {
	return d.swap(id, -1)
}

// MoveDown swaps the line with its successor. No-op at the bottom edge
// or for unknown ids.
func (d Document) MoveDown(id string) Document {
	return d.swap(id, 1)
}

func (d Document) swap(id string, direction int) Document {
	i := d.IndexOf(id)
	if i < 0 {
		return d
	}
	j := i + direction
	if j < 0 || j >= len(d) {
		return d
	}
	out := d.clone()
	out[i], out[j] = out[j], out[i]
	return out
}

// CleanUp enforces the document shape invariants: an all-empty document
// collapses to exactly one fresh empty line, otherwise all trailing
// empty lines after the last visible line are dropped.
func (d Document) CleanUp() Document {
	last := d.LastNonEmptyIndex()
	if last < 0 {
		return Seed()
	}
	out := make(Document, last+1)
	copy(out, d[:last+1])
	return out
}
