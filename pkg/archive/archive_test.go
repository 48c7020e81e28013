package archive

import (
	"testing"
	"time"

	"tableflip.dev/notepad/pkg/doc"
)

func done(text string) doc.Line {
	l := doc.NewLine(text)
	l.State = doc.Done
	return l
}

func TestPushPrependsAndPreservesLines(t *testing.T) {
	lines := []doc.Line{done("a"), done("b")}
	l := List{}.Push(lines)
	l = l.Push([]doc.Line{done("c")})

	if len(l) != 2 {
		t.Fatalf("len: got %d, want 2", len(l))
	}
	if l[0].Lines[0].Text != "c" {
		t.Fatal("newest section must be first")
	}
	if l[1].Lines[0].ID != lines[0].ID || l[1].Lines[1].Text != "b" {
		t.Fatal("archived lines must keep original id/text")
	}
	if l[0].ID == l[1].ID || l[0].ID == "" {
		t.Fatal("sections need fresh unique ids")
	}
}

func TestPushCopiesLines(t *testing.T) {
	lines := []doc.Line{done("a")}
	l := List{}.Push(lines)
	lines[0].Text = "mutated"
	if l[0].Lines[0].Text != "a" {
		t.Fatal("archive shares backing array with caller")
	}
}

func TestRestoreRemovesAndReturnsLines(t *testing.T) {
	l := List{}.Push([]doc.Line{done("a")}).Push([]doc.Line{done("b")})
	id := l[1].ID

	next, lines, ok := l.Restore(id)
	if !ok {
		t.Fatal("restore reported unknown id")
	}
	if len(next) != 1 || next[0].ID == id {
		t.Fatalf("restored section still present: %v", next)
	}
	if len(lines) != 1 || lines[0].Text != "a" {
		t.Fatalf("restored lines: %v", lines)
	}
}

func TestRestoreUnknownID(t *testing.T) {
	l := List{}.Push([]doc.Line{done("a")})
	next, lines, ok := l.Restore("nope")
	if ok || lines != nil || len(next) != 1 {
		t.Fatal("unknown id must be a no-op")
	}
}

func TestDelete(t *testing.T) {
	l := List{}.Push([]doc.Line{done("a")})
	next, ok := l.Delete(l[0].ID)
	if !ok || len(next) != 0 {
		t.Fatalf("delete: ok=%v len=%d", ok, len(next))
	}
	if _, ok := l.Delete("nope"); ok {
		t.Fatal("unknown id must report false")
	}
}

func TestExpireOldRetentionWindow(t *testing.T) {
	now := time.Now()
	old := Section{ID: "old", ArchivedAt: now.Add(-8 * 24 * time.Hour).UnixMilli()}
	fresh := Section{ID: "fresh", ArchivedAt: now.Add(-6 * 24 * time.Hour).UnixMilli()}
	l := List{fresh, old}

	next := l.ExpireOld(now)
	if len(next) != 1 || next[0].ID != "fresh" {
		t.Fatalf("expire: %v", next)
	}
}
