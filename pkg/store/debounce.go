package store

import (
	"sync"
	"time"

	"tableflip.dev/notepad/pkg/doc"
)

// debouncer coalesces rapid document writes. Each Submit cancels any
// pending timer and reschedules, so only the last value submitted
// within a quiet window reaches disk. A Cancel invalidates whatever is
// pending: the generation check keeps a timer that already fired from
// writing a value the synchronous path has since superseded.
type debouncer struct {
	mu     sync.Mutex
	timer  *time.Timer
	window time.Duration
	write  func(doc.Document)

	pending doc.Document
	gen     uint64
}

func newDebouncer(window time.Duration, write func(doc.Document)) *debouncer {
	if window <= 0 {
		window = 500 * time.Millisecond
	}
	return &debouncer{window: window, write: write}
}

func (b *debouncer) Submit(d doc.Document) {
	b.mu.Lock()
	b.pending = d
	b.gen++
	gen := b.gen
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.window, func() { b.flush(gen) })
	b.mu.Unlock()
}

// flush holds the lock across the write so a concurrent Cancel cannot
// slip a newer synchronous write underneath a stale pending one.
func (b *debouncer) flush(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if gen != b.gen || b.pending == nil {
		return
	}
	d := b.pending
	b.pending = nil
	b.timer = nil
	b.write(d)
}

// Cancel discards any pending write. The caller is about to persist a
// newer value through the synchronous path; once Cancel returns, no
// previously submitted value can reach disk.
func (b *debouncer) Cancel() {
	b.mu.Lock()
	b.gen++
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.pending = nil
	b.mu.Unlock()
}

// Stop cancels any pending write without flushing it. Durability of the
// newest value is traded for a clean teardown; callers needing the
// write use the synchronous path.
func (b *debouncer) Stop() {
	b.Cancel()
}
