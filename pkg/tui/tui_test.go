package tui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/notepad/pkg/archive"
	"tableflip.dev/notepad/pkg/doc"
	"tableflip.dev/notepad/pkg/session"
	"tableflip.dev/notepad/pkg/settings"
	"tableflip.dev/notepad/pkg/store"
)

type fakePersistence struct {
	mu    sync.Mutex
	doc   doc.Document
	arch  archive.List
	prefs settings.Settings

	syncSaves int
}

func (f *fakePersistence) Document() doc.Document {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.doc
}

func (f *fakePersistence) SaveDocument(d doc.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.doc = d
	f.syncSaves++
	return nil
}

func (f *fakePersistence) SaveDocumentDebounced(d doc.Document) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.doc = d
}

func (f *fakePersistence) syncCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.syncSaves
}

func (f *fakePersistence) Archive() archive.List {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.arch
}

func (f *fakePersistence) SaveArchive(l archive.List) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.arch = l
	return nil
}

func (f *fakePersistence) Settings() settings.Settings {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prefs.Normalize()
}

func (f *fakePersistence) SaveSettings(s settings.Settings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prefs = s
	return nil
}

func (f *fakePersistence) Watch(context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

func (f *fakePersistence) Close() {}

func newTestModel(t *testing.T, initial doc.Document) (Model, *session.Session, *fakePersistence) {
	t.Helper()
	fp := &fakePersistence{doc: initial}
	sess := session.New(fp, session.WithArchiveDelay(time.Hour))
	t.Cleanup(sess.Close)
	return NewModel(sess, NewRelay()), sess, fp
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	case "ctrl+k":
		return tea.KeyMsg{Type: tea.KeyCtrlK}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func TestEditorViewRendersLines(t *testing.T) {
	d := doc.Document{
		doc.NewLine("buy milk"),
		doc.NewLine("walk dog"),
	}
	d[0].State = doc.Done

	m, _, _ := newTestModel(t, d)
	out := m.View()

	if !strings.Contains(out, "[x]") {
		t.Errorf("expected a done mark in view:\n%s", out)
	}
	if !strings.Contains(out, "[ ]") {
		t.Errorf("expected a todo mark in view:\n%s", out)
	}
	if !strings.Contains(out, "buy milk") {
		t.Errorf("expected line text in view:\n%s", out)
	}
}

func TestEnterOnEmptyLineInsertsBelow(t *testing.T) {
	m, sess, _ := newTestModel(t, doc.Seed())

	m = press(m, "enter")

	if got := len(sess.Document()); got != 2 {
		t.Fatalf("expected 2 lines after enter, got %d", got)
	}
	if m.cursor != 1 {
		t.Errorf("expected cursor on new line, got %d", m.cursor)
	}
}

func TestEnterMidTextSplitsLine(t *testing.T) {
	d := doc.Document{doc.NewLine("abcdef")}
	m, sess, _ := newTestModel(t, d)

	m.input.SetCursor(3)
	m = press(m, "enter")

	got := sess.Document()
	if len(got) != 2 {
		t.Fatalf("expected 2 lines after split, got %d", len(got))
	}
	if got[0].Text != "abc" || got[1].Text != "def" {
		t.Errorf("split produced %q / %q", got[0].Text, got[1].Text)
	}
	if m.cursor != 1 {
		t.Errorf("expected cursor on suffix line, got %d", m.cursor)
	}
}

func TestTabTogglesLineState(t *testing.T) {
	m, sess, _ := newTestModel(t, doc.Document{doc.NewLine("task")})

	m = press(m, "tab")
	if got := sess.Document()[0].State; got != doc.Done {
		t.Fatalf("expected DONE after toggle, got %q", got)
	}

	m = press(m, "tab")
	if got := sess.Document()[0].State; got != doc.Todo {
		t.Errorf("expected TODO after second toggle, got %q", got)
	}
}

func TestDeleteLineClampsCursor(t *testing.T) {
	d := doc.Document{doc.NewLine("one"), doc.NewLine("two")}
	m, sess, _ := newTestModel(t, d)

	m = press(m, "down", "ctrl+k")

	if got := len(sess.Document()); got != 1 {
		t.Fatalf("expected 1 line after delete, got %d", got)
	}
	if m.cursor != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", m.cursor)
	}
}

func TestArchiveViewRoundTrip(t *testing.T) {
	m, _, _ := newTestModel(t, doc.Seed())

	m = press(m, "ctrl+p")
	if m.view != viewArchive {
		t.Fatal("expected archive view after ctrl+p")
	}
	if out := m.View(); !strings.Contains(out, m.tr.ArchiveEmpty) {
		t.Errorf("expected empty-archive hint in view:\n%s", out)
	}

	m = press(m, "esc")
	if m.view != viewEditor {
		t.Error("expected editor view after esc")
	}
}

func TestNukeRequiresConfirmation(t *testing.T) {
	m, _, _ := newTestModel(t, doc.Seed())

	m.archives = archive.List{}.Push([]doc.Line{doc.NewLine("done item")})
	m.view = viewArchive

	m = press(m, "x")
	if !m.confirmNuke {
		t.Fatal("expected confirmation prompt after x")
	}
	if out := m.View(); !strings.Contains(out, m.tr.NukeConfirm) {
		t.Errorf("expected confirm text in view:\n%s", out)
	}

	m = press(m, "n")
	if m.confirmNuke {
		t.Error("expected n to cancel the confirmation")
	}
	if len(m.archives) != 1 {
		t.Errorf("expected archive untouched after cancel, got %d", len(m.archives))
	}

	m = press(m, "x", "y")
	if len(m.archives) != 0 {
		t.Errorf("expected archives cleared after confirm, got %d", len(m.archives))
	}
}

func TestQuitFlushesPendingEdit(t *testing.T) {
	m, sess, fp := newTestModel(t, doc.Document{doc.NewLine("task")})

	m = press(m, "!")
	before := fp.syncCount()
	m = press(m, "esc")

	if got := sess.Document()[0].Text; got != "task!" {
		t.Fatalf("expected committed text, got %q", got)
	}
	if fp.syncCount() != before+1 {
		t.Errorf("expected a synchronous save on quit, counts %d -> %d", before, fp.syncCount())
	}
	if got := fp.Document()[0].Text; got != "task!" {
		t.Errorf("persisted %q, want the final buffer", got)
	}
}

func TestNotificationRefocusesLastLine(t *testing.T) {
	d := doc.Document{doc.NewLine("one"), doc.NewLine("two")}
	m, _, _ := newTestModel(t, d)
	m.cursor = 0
	m.loadLine()

	next, _ := m.handleNotification(session.Notification{Kind: session.FocusLastLine})
	m = next.(Model)

	if m.cursor != 1 {
		t.Errorf("expected cursor on last line, got %d", m.cursor)
	}
}
