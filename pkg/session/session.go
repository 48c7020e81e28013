// Package session owns the canonical document, archive and settings
// values and exposes the command surface that UIs drive. It wraps the
// pure transformations in pkg/doc with persistence and the
// section-completion workflow: after every document mutation the
// sections are re-derived, and a section whose completeness flips from
// false to true is archived once, after a short delay that gives the
// surface time to play an exit transition.
package session

import (
	"fmt"
	"os"
	"sync"
	"time"

	"tableflip.dev/notepad/pkg/archive"
	"tableflip.dev/notepad/pkg/doc"
	"tableflip.dev/notepad/pkg/section"
	"tableflip.dev/notepad/pkg/settings"
	"tableflip.dev/notepad/pkg/store"
)

// DefaultArchiveDelay is how long a newly complete section stays
// earmarked before its lines move to the archive. Long enough for a
// 300ms exit transition to finish.
const DefaultArchiveDelay = 350 * time.Millisecond

// Kind tags a Notification.
type Kind int

const (
	// ArchiveStarted earmarks the index range [Start, End); the surface
	// should play an exit transition for those lines.
	ArchiveStarted Kind = iota
	// FocusLastLine asks the surface to move focus to the document's
	// last line after an archive resolved.
	FocusLastLine
)

// Notification is the engine-to-surface signal channel payload.
type Notification struct {
	Kind  Kind
	Start int
	End   int
}

// Option configures a Session.
type Option func(*Session)

// WithArchiveDelay overrides the archive completion delay. Tests use
// short delays to keep the workflow observable without waiting.
func WithArchiveDelay(d time.Duration) Option {
	return func(s *Session) { s.delay = d }
}

// WithNotify registers the surface callback. The callback runs outside
// the session lock and may call back into the session.
func WithNotify(fn func(Notification)) Option {
	return func(s *Session) { s.notify = fn }
}

// Session is safe for use from one goroutine plus the engine's own
// timers; all state is guarded by one mutex.
type Session struct {
	mu    sync.Mutex
	store store.Persistence

	doc   doc.Document
	arch  archive.List
	prefs settings.Settings

	prev      []section.Section
	archiving *section.Section
	timer     *time.Timer
	delay     time.Duration
	closed    bool

	notify func(Notification)
}

// New loads the persisted state and returns a ready session. A missing
// or undecodable document record starts as a single empty line; the
// document is never held or persisted empty.
func New(p store.Persistence, opts ...Option) *Session {
	s := &Session{
		store:  p,
		delay:  DefaultArchiveDelay,
		notify: func(Notification) {},
	}
	for _, opt := range opts {
		opt(s)
	}

	d := p.Document()
	if len(d) == 0 {
		d = doc.Seed()
	}
	s.doc = d
	s.arch = p.Archive()
	s.prefs = p.Settings()
	s.prev = section.Detect(d)
	return s
}

// Close cancels the pending archive timer and any pending debounced
// write. An in-flight archive that has not fired yet is abandoned; the
// document still holds its lines.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.store.Close()
}

// Document returns the current document snapshot.
func (s *Session) Document() doc.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc
}

// Archive returns the current archive snapshot.
func (s *Session) Archive() archive.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.arch
}

// Settings returns the current settings snapshot.
func (s *Session) Settings() settings.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// Archiving reports the earmarked index range while the completion
// workflow is in flight.
func (s *Session) Archiving() (section.Section, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.archiving == nil {
		return section.Section{}, false
	}
	return *s.archiving, true
}

// apply runs one pure transformation, persists the result and checks
// for a newly complete section. Keystroke-grade edits go through the
// debounced write path; structural edits persist synchronously.
func (s *Session) apply(op func(doc.Document) doc.Document, debounced bool) doc.Document {
	s.mu.Lock()
	s.doc = op(s.doc)
	if debounced {
		s.store.SaveDocumentDebounced(s.doc)
	} else {
		s.saveDocumentLocked()
	}
	note, ok := s.checkCompletionLocked()
	d := s.doc
	s.mu.Unlock()

	if ok {
		s.notify(note)
	}
	return d
}

// Flush persists the current document synchronously, superseding any
// pending debounced write. Surfaces call it before teardown: Close
// drops pending debounced writes, so a final text edit only survives a
// one-shot process if it is flushed first.
func (s *Session) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.saveDocumentLocked()
}

// ToggleLine flips TODO<->DONE for a line.
func (s *Session) ToggleLine(id string) doc.Document {
	return s.apply(func(d doc.Document) doc.Document { return d.Toggle(id) }, false)
}

// UpdateLineText replaces a line's text. Writes are debounced: rapid
// keystrokes coalesce into one disk write while the in-memory value
// stays authoritative.
func (s *Session) UpdateLineText(id, text string) doc.Document {
	return s.apply(func(d doc.Document) doc.Document { return d.SetText(id, text) }, true)
}

// AddLine appends a fresh line.
func (s *Session) AddLine(text string) doc.Document {
	return s.apply(func(d doc.Document) doc.Document { return d.Add(text) }, false)
}

// InsertLineAfter inserts a fresh line after the given one.
func (s *Session) InsertLineAfter(afterID, text string) doc.Document {
	return s.apply(func(d doc.Document) doc.Document { return d.InsertAfter(afterID, text) }, false)
}

// InsertLineBefore inserts a fresh line before the given one.
func (s *Session) InsertLineBefore(beforeID, text string) doc.Document {
	return s.apply(func(d doc.Document) doc.Document { return d.InsertBefore(beforeID, text) }, false)
}

// SplitLine splits a line at the given rune offset.
func (s *Session) SplitLine(id string, splitAt int) doc.Document {
	return s.apply(func(d doc.Document) doc.Document { return d.Split(id, splitAt) }, false)
}

// DeleteLine removes a line, reseeding a single empty line if the
// document would end up empty.
func (s *Session) DeleteLine(id string) doc.Document {
	return s.apply(func(d doc.Document) doc.Document {
		next := d.Delete(id)
		if len(next) == 0 {
			next = doc.Seed()
		}
		return next
	}, false)
}

// MoveLineUp swaps a line with its predecessor.
func (s *Session) MoveLineUp(id string) doc.Document {
	return s.apply(func(d doc.Document) doc.Document { return d.MoveUp(id) }, false)
}

// MoveLineDown swaps a line with its successor.
func (s *Session) MoveLineDown(id string) doc.Document {
	return s.apply(func(d doc.Document) doc.Document { return d.MoveDown(id) }, false)
}

// CleanUpEmptyLines trims trailing noise, persisting synchronously so
// an immediate re-read sees the trimmed document.
func (s *Session) CleanUpEmptyLines() doc.Document {
	return s.apply(func(d doc.Document) doc.Document { return d.CleanUp() }, false)
}

// checkCompletionLocked compares current sections against the previous
// computation and starts the archive workflow for the first newly
// complete section. While a section is in flight the check is
// suppressed entirely, so one resolution cannot interleave with
// another.
func (s *Session) checkCompletionLocked() (Notification, bool) {
	if s.archiving != nil || s.closed {
		return Notification{}, false
	}

	cur := section.Detect(s.doc)
	sec, ok := section.NewlyComplete(s.prev, cur)
	s.prev = cur
	if !ok {
		return Notification{}, false
	}

	earmarked := sec
	s.archiving = &earmarked
	s.timer = time.AfterFunc(s.delay, s.finishArchive)
	return Notification{Kind: ArchiveStarted, Start: sec.Start, End: sec.End}, true
}

// finishArchive resolves ARCHIVING back to IDLE: it moves the earmarked
// lines into a new archived section, persists both records
// synchronously, undoes the single blank separator that terminated the
// section and guarantees the document stays non-empty.
func (s *Session) finishArchive() {
	s.mu.Lock()
	if s.archiving == nil || s.closed {
		s.mu.Unlock()
		return
	}
	rng := *s.archiving
	s.archiving = nil
	s.timer = nil

	start, end := rng.Start, rng.End
	if end > len(s.doc) {
		end = len(s.doc)
	}
	if start >= end {
		// Edits during the delay removed the range; nothing to move.
		s.prev = section.Detect(s.doc)
		s.mu.Unlock()
		return
	}

	lines := make([]doc.Line, end-start)
	copy(lines, s.doc[start:end])

	next := make(doc.Document, 0, len(s.doc)-(end-start))
	next = append(next, s.doc[:start]...)
	next = append(next, s.doc[end:]...)

	// The blank line that closed the section sits where the range
	// began; drop at most one.
	if start < len(next) && next[start].Empty() {
		next = append(next[:start], next[start+1:]...)
	}
	if len(next) == 0 {
		next = doc.Seed()
	}

	s.doc = next
	s.arch = s.arch.Push(lines)
	s.saveArchiveLocked()
	s.saveDocumentLocked()
	s.prev = section.Detect(s.doc)
	s.mu.Unlock()

	s.notify(Notification{Kind: FocusLastLine})
}

// RestoreArchive appends an archived section's lines back onto the end
// of the document. Lines keep their ids, text and state; updatedAt is
// refreshed.
func (s *Session) RestoreArchive(id string) (doc.Document, archive.List) {
	s.mu.Lock()
	rest, lines, ok := s.arch.Restore(id)
	if !ok {
		d, l := s.doc, s.arch
		s.mu.Unlock()
		return d, l
	}

	now := time.Now().UnixMilli()
	next := make(doc.Document, len(s.doc), len(s.doc)+len(lines))
	copy(next, s.doc)
	for _, l := range lines {
		l.UpdatedAt = now
		next = append(next, l)
	}

	s.doc = next
	s.arch = rest
	s.saveArchiveLocked()
	s.saveDocumentLocked()
	note, ok := s.checkCompletionLocked()
	d, l := s.doc, s.arch
	s.mu.Unlock()

	if ok {
		s.notify(note)
	}
	return d, l
}

// DeleteArchive removes one archived section permanently.
func (s *Session) DeleteArchive(id string) archive.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := s.arch.Delete(id)
	if !ok {
		return s.arch
	}
	s.arch = next
	s.saveArchiveLocked()
	return s.arch
}

// ClearAllArchives empties the archive permanently. Confirmation is the
// caller's responsibility.
func (s *Session) ClearAllArchives() archive.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.arch = archive.List{}
	s.saveArchiveLocked()
	return s.arch
}

// ExpireOldArchives drops sections past the retention window. Invoked
// opportunistically when the archive is viewed.
func (s *Session) ExpireOldArchives() archive.List {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.arch.ExpireOld(time.Now())
	if len(next) == len(s.arch) {
		return s.arch
	}
	s.arch = next
	s.saveArchiveLocked()
	return s.arch
}

// SetDarkMode persists the theme preference.
func (s *Session) SetDarkMode(mode settings.DarkMode) settings.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.DarkMode = mode
	s.saveSettingsLocked()
	return s.prefs
}

// SetTextSize persists the text size preference.
func (s *Session) SetTextSize(size settings.TextSize) settings.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.TextSize = size
	s.saveSettingsLocked()
	return s.prefs
}

// SetLanguage persists the language preference.
func (s *Session) SetLanguage(lang settings.Language) settings.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.Language = lang
	s.saveSettingsLocked()
	return s.prefs
}

func (s *Session) saveDocumentLocked() {
	if err := s.store.SaveDocument(s.doc); err != nil {
		fmt.Fprintf(os.Stderr, "session: save document: %v\n", err)
	}
}

func (s *Session) saveArchiveLocked() {
	if err := s.store.SaveArchive(s.arch); err != nil {
		fmt.Fprintf(os.Stderr, "session: save archive: %v\n", err)
	}
}

func (s *Session) saveSettingsLocked() {
	if err := s.store.SaveSettings(s.prefs); err != nil {
		fmt.Fprintf(os.Stderr, "session: save settings: %v\n", err)
	}
}
