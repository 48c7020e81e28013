package section

import (
	"testing"

	"tableflip.dev/notepad/pkg/doc"
)

func line(text string, state doc.State) doc.Line {
	l := doc.NewLine(text)
	l.State = state
	return l
}

func TestDetectTwoCompleteSections(t *testing.T) {
	d := doc.Document{
		line("a", doc.Done),
		line("", doc.Todo),
		line("b", doc.Done),
		line("c", doc.Done),
	}
	got := Detect(d)
	want := []Section{
		{Start: 0, End: 1, Complete: true},
		{Start: 2, End: 4, Complete: true},
	}
	if len(got) != len(want) {
		t.Fatalf("sections: got %d, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("section %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDetectIncompleteSection(t *testing.T) {
	d := doc.Document{
		line("a", doc.Done),
		line("b", doc.Todo),
		line("", doc.Todo),
	}
	got := Detect(d)
	if len(got) != 1 {
		t.Fatalf("sections: got %d, want 1", len(got))
	}
	if got[0] != (Section{Start: 0, End: 2, Complete: false}) {
		t.Fatalf("section: %+v", got[0])
	}
}

func TestDetectNoSeparatorsIsOneSection(t *testing.T) {
	d := doc.Document{
		line("a", doc.Todo),
		line("b", doc.Todo),
	}
	got := Detect(d)
	if len(got) != 1 || got[0].Start != 0 || got[0].End != 2 {
		t.Fatalf("sections: %v", got)
	}
}

func TestDetectFullyEmptyDocument(t *testing.T) {
	d := doc.Document{line("", doc.Todo), line("  ", doc.Todo)}
	if got := Detect(d); len(got) != 0 {
		t.Fatalf("sections: %v, want none", got)
	}
	if got := Detect(doc.Document{}); len(got) != 0 {
		t.Fatalf("sections of nil doc: %v", got)
	}
}

func TestDetectLeadingTrailingEmptyLines(t *testing.T) {
	d := doc.Document{
		line("", doc.Todo),
		line("a", doc.Todo),
		line("", doc.Todo),
		line("", doc.Todo),
	}
	got := Detect(d)
	if len(got) != 1 || got[0].Start != 1 || got[0].End != 2 {
		t.Fatalf("sections: %v", got)
	}
}

func TestDetectInteriorEmptyLineDoesNotAffectCompleteness(t *testing.T) {
	// Whitespace-only lines inside a run do not reset completeness; a
	// run is bounded by them, so this is two sections.
	d := doc.Document{
		line("a", doc.Done),
		line(" ", doc.Todo),
		line("b", doc.Done),
	}
	got := Detect(d)
	if len(got) != 2 || !got[0].Complete || !got[1].Complete {
		t.Fatalf("sections: %v", got)
	}
}

func TestNewlyCompleteTransition(t *testing.T) {
	prev := []Section{{Start: 0, End: 2, Complete: false}}
	cur := []Section{{Start: 0, End: 2, Complete: true}}
	s, ok := NewlyComplete(prev, cur)
	if !ok || s.Start != 0 || s.End != 2 {
		t.Fatalf("newly complete: %+v %v", s, ok)
	}
}

func TestNewlyCompleteRequiresPriorObservation(t *testing.T) {
	cur := []Section{{Start: 0, End: 2, Complete: true}}
	if _, ok := NewlyComplete(nil, cur); ok {
		t.Fatal("section with no prior observation must not trigger")
	}
}

func TestNewlyCompleteStableSectionsDoNotRetrigger(t *testing.T) {
	prev := []Section{{Start: 0, End: 2, Complete: true}}
	cur := []Section{{Start: 0, End: 2, Complete: true}}
	if _, ok := NewlyComplete(prev, cur); ok {
		t.Fatal("already-complete section retriggered")
	}
}

func TestNewlyCompletePicksFirstInScanOrder(t *testing.T) {
	prev := []Section{
		{Start: 0, End: 1, Complete: false},
		{Start: 2, End: 3, Complete: false},
	}
	cur := []Section{
		{Start: 0, End: 1, Complete: true},
		{Start: 2, End: 3, Complete: true},
	}
	s, ok := NewlyComplete(prev, cur)
	if !ok || s.Start != 0 {
		t.Fatalf("expected first section, got %+v %v", s, ok)
	}
}
