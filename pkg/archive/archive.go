// Package archive maintains the list of completed sections that were
// moved out of the live document. The list is ordered most-recent-first
// and persisted as a whole on every mutation.
package archive

import (
	"time"

	"github.com/google/uuid"

	"tableflip.dev/notepad/pkg/doc"
)

// Retention is how long an archived section is kept before ExpireOld
// drops it.
const Retention = 7 * 24 * time.Hour

// Section is an immutable record of the lines a section held at the
// moment it completed.
type Section struct {
	ID         string     `json:"id"`
	Lines      []doc.Line `json:"lines"`
	ArchivedAt int64      `json:"archivedAt"`
}

// List is the ordered archive, most recent first.
type List []Section

var nowMillis = func() int64 {
	return time.Now().UnixMilli()
}

// Push prepends a new archived section holding the given lines exactly
// as they were in the document.
func (l List) Push(lines []doc.Line) List {
	kept := make([]doc.Line, len(lines))
	copy(kept, lines)
	s := Section{
		ID:         uuid.NewString(),
		Lines:      kept,
		ArchivedAt: nowMillis(),
	}
	out := make(List, 0, len(l)+1)
	out = append(out, s)
	return append(out, l...)
}

// Restore removes the section with the given id and returns its lines
// so the caller can append them back onto the live document. The second
// return is false when the id is unknown.
func (l List) Restore(id string) (List, []doc.Line, bool) {
	for i, s := range l {
		if s.ID == id {
			out := make(List, 0, len(l)-1)
			out = append(out, l[:i]...)
			out = append(out, l[i+1:]...)
			return out, s.Lines, true
		}
	}
	return l, nil, false
}

// Delete removes one section permanently. Unknown ids are a no-op.
func (l List) Delete(id string) (List, bool) {
	for i, s := range l {
		if s.ID == id {
			out := make(List, 0, len(l)-1)
			out = append(out, l[:i]...)
			out = append(out, l[i+1:]...)
			return out, true
		}
	}
	return l, false
}

// ExpireOld drops sections archived more than Retention ago. It is
// invoked opportunistically when the archive is viewed, not on a timer.
func (l List) ExpireOld(now time.Time) List {
	cutoff := now.Add(-Retention).UnixMilli()
	out := make(List, 0, len(l))
	for _, s := range l {
		if s.ArchivedAt >= cutoff {
			out = append(out, s)
		}
	}
	return out
}
