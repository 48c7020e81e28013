// Package store persists the document, archive and settings records as
// opaque encoded blobs in a diskv-backed key-value store. Missing or
// undecodable records never fail a caller: reads fall back to the
// domain's empty/default value and log to stderr.
package store

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/notepad/pkg/archive"
	"tableflip.dev/notepad/pkg/doc"
	"tableflip.dev/notepad/pkg/settings"
)

// Stable record keys. Each domain object is one logical record.
const (
	KeyDocument = "document"
	KeyArchive  = "archive"
	KeySettings = "settings"
)

// Persistence is the storage contract the engine works against.
// SaveDocument applies immediately and supersedes any pending debounced
// write; SaveDocumentDebounced coalesces rapid successive writes into
// one write after a quiet window, keeping only the last submitted
// value. Interleaved, the synchronous write always wins: a stale
// debounce timer never lands on top of it.
type Persistence interface {
	Document() doc.Document
	SaveDocument(d doc.Document) error
	SaveDocumentDebounced(d doc.Document)

	Archive() archive.List
	SaveArchive(l archive.List) error

	Settings() settings.Settings
	SaveSettings(s settings.Settings) error

	Watch(ctx context.Context) (<-chan Event, error)

	// Close cancels any pending debounced write. The in-memory value is
	// authoritative the moment it is submitted; only durability of the
	// newest debounced write is at stake, which is the accepted
	// worst-case failure mode.
	Close()
}

// Load creates a Persistence backed by diskv using the provided config,
// with records sealed by the config's secret. A nil config loads the
// default one.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	secret, err := LoadOrCreateSecret(cfg.SecretPath())
	if err != nil {
		return nil, err
	}
	codec, err := NewSealedCodec(secret)
	if err != nil {
		return nil, err
	}
	return New(cfg.BasePath(), codec, cfg.DebounceWindow()), nil
}

// New creates a Persistence rooted at basePath using the given codec
// and debounce quiet window.
func New(basePath string, codec Codec, window time.Duration) Persistence {
	p := &persistence{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    func(string) []string { return nil },
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
		codec:    codec,
	}
	p.debounce = newDebouncer(window, func(d doc.Document) {
		if err := p.write(KeyDocument, d); err != nil {
			fmt.Fprintf(os.Stderr, "store: debounced write: %v\n", err)
		}
	})
	return p
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	codec    Codec
	debounce *debouncer
}

// read decodes the record under key into v. Missing or undecodable
// records report false and leave v untouched beyond partial decoding.
func (p *persistence) read(key string, v any) bool {
	data, err := p.d.Read(key)
	if err != nil {
		// Missing record: first run or an externally cleared store.
		return false
	}
	if err := p.codec.Decode(data, v); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %v\n", key, err)
		return false
	}
	return true
}

func (p *persistence) write(key string, v any) error {
	data, err := p.codec.Encode(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Document() doc.Document {
	var d doc.Document
	if !p.read(KeyDocument, &d) {
		return doc.Document{}
	}
	return d
}

func (p *persistence) SaveDocument(d doc.Document) error {
	p.debounce.Cancel()
	return p.write(KeyDocument, d)
}

func (p *persistence) SaveDocumentDebounced(d doc.Document) {
	p.debounce.Submit(d)
}

func (p *persistence) Archive() archive.List {
	var l archive.List
	if !p.read(KeyArchive, &l) {
		return archive.List{}
	}
	return l
}

func (p *persistence) SaveArchive(l archive.List) error {
	return p.write(KeyArchive, l)
}

func (p *persistence) Settings() settings.Settings {
	var s settings.Settings
	p.read(KeySettings, &s)
	return s.Normalize()
}

func (p *persistence) SaveSettings(s settings.Settings) error {
	return p.write(KeySettings, s)
}

func (p *persistence) Close() {
	p.debounce.Stop()
}
