// Package section derives logical to-do blocks from a document. A
// section is a maximal contiguous run of lines bounded by empty lines
// (or the document edges) that contains at least one non-empty line.
// Sections carry no identity of their own; they are recomputed from
// scratch after every document change.
package section

import (
	"tableflip.dev/notepad/pkg/doc"
)

// Section is a half-open index range [Start, End) into the document.
// Complete is true iff every non-empty line in the range is DONE.
type Section struct {
	Start    int
	End      int
	Complete bool
}

// Detect scans the document once, left to right, emitting a section for
// every blank-delimited run that holds at least one visible line. Runs
// of only empty lines are skipped entirely.
func Detect(d doc.Document) []Section {
	var sections []Section

	start := -1
	sawVisible := false
	complete := true

	flush := func(end int) {
		if start >= 0 && sawVisible {
			sections = append(sections, Section{Start: start, End: end, Complete: complete})
		}
		start = -1
		sawVisible = false
		complete = true
	}

	for i, l := range d {
		if l.Empty() {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
		sawVisible = true
		if l.State != doc.Done {
			complete = false
		}
	}
	flush(len(d))

	return sections
}

// NewlyComplete returns the first section (in scan order) of cur whose
// Complete flag flipped from false to true relative to prev, matching
// sections by their (Start, End) pair. Sections absent from prev do not
// count: completion is a transition, not a state.
func NewlyComplete(prev, cur []Section) (Section, bool) {
	for _, s := range cur {
		if !s.Complete {
			continue
		}
		for _, p := range prev {
			if p.Start == s.Start && p.End == s.End && !p.Complete {
				return s, true
			}
		}
	}
	return Section{}, false
}
