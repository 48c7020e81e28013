// Package tui renders the full-screen notepad editor on Bubble Tea.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/notepad/pkg/archive"
	"tableflip.dev/notepad/pkg/doc"
	"tableflip.dev/notepad/pkg/i18n"
	"tableflip.dev/notepad/pkg/section"
	"tableflip.dev/notepad/pkg/session"
	"tableflip.dev/notepad/pkg/settings"
)

// Relay forwards engine notifications into the running program. The
// engine fires them from timer goroutines, so delivery is buffered and
// never blocks the caller.
type Relay struct {
	ch chan session.Notification
}

func NewRelay() *Relay {
	return &Relay{ch: make(chan session.Notification, 8)}
}

// Notify is the callback to register on the session.
func (r *Relay) Notify(n session.Notification) {
	select {
	case r.ch <- n:
	default:
	}
}

type notificationMsg session.Notification

type view int

const (
	viewEditor view = iota
	viewArchive
)

// Model is the root Bubble Tea model. It edits the document through the
// session and re-reads engine state after every mutation, so completed
// sections fade and vanish while the user keeps typing.
type Model struct {
	sess  *session.Session
	relay *Relay

	view        view
	doc         doc.Document
	cursor      int
	input       textinput.Model
	dirty       bool
	archiving   *section.Section
	archives    archive.List
	archiveIdx  int
	confirmNuke bool

	prefs settings.Settings
	tr    i18n.Translations
	theme Theme

	width  int
	height int
}

// NewModel builds the editor bound to a session. The relay may be nil
// when no notifications are wired (tests).
func NewModel(sess *session.Session, relay *Relay) Model {
	prefs := sess.Settings()

	in := textinput.New()
	in.Prompt = ""
	in.Focus()

	m := Model{
		sess:  sess,
		relay: relay,
		doc:   sess.Document(),
		input: in,
		prefs: prefs,
		tr:    i18n.For(prefs.Language),
		theme: NewTheme(prefs.DarkMode),
	}
	m.cursor = m.clampCursor(len(m.doc) - 1)
	m.loadLine()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.nextNotification())
}

func (m Model) nextNotification() tea.Cmd {
	if m.relay == nil {
		return nil
	}
	ch := m.relay.ch
	return func() tea.Msg {
		return notificationMsg(<-ch)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(20, msg.Width-8)
		return m, nil

	case notificationMsg:
		return m.handleNotification(session.Notification(msg))

	case tea.KeyMsg:
		if m.view == viewArchive {
			return m.handleArchiveKey(msg)
		}
		return m.handleEditorKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleNotification(n session.Notification) (tea.Model, tea.Cmd) {
	switch n.Kind {
	case session.ArchiveStarted:
		s := section.Section{Start: n.Start, End: n.End, Complete: true}
		m.archiving = &s
		m.doc = m.sess.Document()
		m.cursor = m.clampCursor(m.cursor)
		m.loadLine()
	case session.FocusLastLine:
		m.archiving = nil
		m.doc = m.sess.Document()
		m.cursor = m.clampCursor(len(m.doc) - 1)
		m.loadLine()
		m.input.CursorEnd()
	}
	return m, m.nextNotification()
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.commitText()
		m.sess.Flush()
		return m, tea.Quit

	case "up":
		m.commitText()
		m.cursor = m.clampCursor(m.cursor - 1)
		m.loadLine()
		return m, nil

	case "down":
		m.commitText()
		m.cursor = m.clampCursor(m.cursor + 1)
		m.loadLine()
		return m, nil

	case "alt+up":
		m.commitText()
		id := m.currentID()
		m.doc = m.sess.MoveLineUp(id)
		m.cursor = m.clampCursor(m.doc.IndexOf(id))
		m.loadLine()
		return m, nil

	case "alt+down":
		m.commitText()
		id := m.currentID()
		m.doc = m.sess.MoveLineDown(id)
		m.cursor = m.clampCursor(m.doc.IndexOf(id))
		m.loadLine()
		return m, nil

	case "tab", "ctrl+t":
		m.commitText()
		m.doc = m.sess.ToggleLine(m.currentID())
		m.loadLine()
		return m, nil

	case "ctrl+k":
		m.commitText()
		m.doc = m.sess.DeleteLine(m.currentID())
		m.cursor = m.clampCursor(m.cursor)
		m.loadLine()
		return m, nil

	case "enter":
		return m.handleEnter()

	case "ctrl+d":
		next := settings.Dark
		if m.prefs.DarkMode == settings.Dark {
			next = settings.Light
		}
		m.prefs = m.sess.SetDarkMode(next)
		m.theme = NewTheme(m.prefs.DarkMode)
		return m, nil

	case "ctrl+p":
		m.commitText()
		m.archives = m.sess.ExpireOldArchives()
		m.archiveIdx = 0
		m.confirmNuke = false
		m.view = viewArchive
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.dirty = true
	return m, cmd
}

// handleEnter mirrors the caret rules of the editor: an empty line or a
// caret at the end opens a new line below, a caret at the start opens
// one above, and a caret mid-text splits the line in two.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	id := m.currentID()
	text := m.input.Value()
	pos := m.input.Position()

	m.commitText()

	switch {
	case text == "":
		m.doc = m.sess.InsertLineAfter(id, "")
		m.cursor = m.clampCursor(m.cursor + 1)
	case pos <= 0:
		m.doc = m.sess.InsertLineBefore(id, "")
		m.cursor = m.clampCursor(m.cursor + 1)
	case pos >= len([]rune(text)):
		m.doc = m.sess.InsertLineAfter(id, "")
		m.cursor = m.clampCursor(m.cursor + 1)
	default:
		m.doc = m.sess.SplitLine(id, pos)
		m.cursor = m.clampCursor(m.cursor + 1)
	}

	m.loadLine()
	m.input.SetCursor(0)
	return m, nil
}

func (m Model) handleArchiveKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmNuke {
		switch msg.String() {
		case "y", "enter":
			m.archives = m.sess.ClearAllArchives()
			m.confirmNuke = false
			m.archiveIdx = 0
		case "n", "esc":
			m.confirmNuke = false
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc", "ctrl+p", "q":
		m.view = viewEditor
		m.doc = m.sess.Document()
		m.cursor = m.clampCursor(m.cursor)
		m.loadLine()
		return m, nil

	case "up", "k":
		if m.archiveIdx > 0 {
			m.archiveIdx--
		}
		return m, nil

	case "down", "j":
		if m.archiveIdx < len(m.archives)-1 {
			m.archiveIdx++
		}
		return m, nil

	case "r", "enter":
		if m.archiveIdx < len(m.archives) {
			m.doc, m.archives = m.sess.RestoreArchive(m.archives[m.archiveIdx].ID)
			m.archiveIdx = m.clampArchive(m.archiveIdx)
		}
		return m, nil

	case "d":
		if m.archiveIdx < len(m.archives) {
			m.archives = m.sess.DeleteArchive(m.archives[m.archiveIdx].ID)
			m.archiveIdx = m.clampArchive(m.archiveIdx)
		}
		return m, nil

	case "x":
		if len(m.archives) > 0 {
			m.confirmNuke = true
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.view == viewArchive {
		return m.archiveView()
	}
	return m.editorView()
}

func (m Model) editorView() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("notepad"))
	b.WriteString("\n\n")

	for i, l := range m.doc {
		fading := m.archiving != nil && i >= m.archiving.Start && i < m.archiving.End

		mark := m.theme.CheckEmpty
		if l.State == doc.Done {
			mark = m.theme.CheckDone
		}

		prefix := "  "
		if i == m.cursor {
			prefix = m.theme.Cursor.Render("> ")
		}

		var body string
		switch {
		case i == m.cursor && !fading:
			body = m.input.View()
		case l.Empty():
			b.WriteString(prefix + "\n")
			continue
		default:
			body = l.Text
		}

		style := m.theme.Todo
		switch {
		case fading:
			style = m.theme.Archiving
		case l.State == doc.Done:
			style = m.theme.Done
		}
		if i == m.cursor && !fading {
			b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, mark, body))
		} else {
			b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, mark, style.Render(body)))
		}
	}

	b.WriteString("\n")
	help := "enter new line · tab done · ctrl+k delete · alt+↑/↓ move · ctrl+p archive · esc quit"
	b.WriteString(m.theme.Help.Render(m.wrap(help)))
	return b.String()
}

func (m Model) archiveView() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("archive"))
	b.WriteString("\n\n")

	if len(m.archives) == 0 {
		b.WriteString(m.theme.Notice.Render(m.tr.ArchiveEmpty))
		b.WriteString("\n\n")
	}

	now := time.Now()
	for i, s := range m.archives {
		prefix := "  "
		date := m.theme.Date.Render(m.tr.FormatArchived(s.ArchivedAt, now))
		if i == m.archiveIdx {
			prefix = m.theme.Selected.Render("> ")
		}
		b.WriteString(prefix + date + "\n")
		for _, l := range s.Lines {
			if l.Empty() {
				continue
			}
			b.WriteString("    " + m.theme.Done.Render("✓ "+l.Text) + "\n")
		}
		b.WriteString("\n")
	}

	if m.confirmNuke {
		b.WriteString(m.theme.Confirm.Render(m.wrap(m.tr.NukeConfirm)))
		b.WriteString("\n")
		b.WriteString(m.theme.Help.Render("y confirm · n cancel"))
		return b.String()
	}

	b.WriteString(m.theme.Notice.Render(m.wrap(m.tr.ArchiveNotice)))
	b.WriteString("\n\n")
	b.WriteString(m.theme.Help.Render("r restore · d delete · x clear all · esc back"))
	return b.String()
}

func (m Model) wrap(s string) string {
	if m.width <= 0 {
		return s
	}
	return wordwrap.String(s, m.width-2)
}

// commitText flushes the edit buffer into the engine when it changed.
// Text writes ride the debounce window, so rapid typing stays cheap.
func (m *Model) commitText() {
	if !m.dirty {
		return
	}
	m.dirty = false
	id := m.currentID()
	if id == "" {
		return
	}
	m.doc = m.sess.UpdateLineText(id, m.input.Value())
}

func (m *Model) loadLine() {
	m.dirty = false
	if m.cursor < 0 || m.cursor >= len(m.doc) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.doc[m.cursor].Text)
	m.input.CursorEnd()
}

func (m Model) currentID() string {
	if m.cursor < 0 || m.cursor >= len(m.doc) {
		return ""
	}
	return m.doc[m.cursor].ID
}

func (m Model) clampCursor(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(m.doc) {
		return len(m.doc) - 1
	}
	return i
}

func (m Model) clampArchive(i int) int {
	if len(m.archives) == 0 {
		return 0
	}
	if i >= len(m.archives) {
		return len(m.archives) - 1
	}
	return i
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
