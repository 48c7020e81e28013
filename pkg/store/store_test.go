package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/notepad/pkg/doc"
	"tableflip.dev/notepad/pkg/settings"
)

func testPersistence(t *testing.T) Persistence {
	t.Helper()
	codec, err := NewSealedCodec([]byte("test-secret"))
	if err != nil {
		t.Fatalf("codec: %v", err)
	}
	p := New(t.TempDir(), codec, 10*time.Millisecond)
	t.Cleanup(p.Close)
	return p
}

func TestDocumentRoundTrip(t *testing.T) {
	p := testPersistence(t)

	d := doc.Document{doc.NewLine("milk"), doc.NewLine("")}
	if err := p.SaveDocument(d); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := p.Document()
	if len(got) != 2 || got[0].ID != d[0].ID || got[0].Text != "milk" {
		t.Fatalf("got %+v", got)
	}
}

func TestMissingRecordsYieldDefaults(t *testing.T) {
	p := testPersistence(t)

	if d := p.Document(); len(d) != 0 {
		t.Fatalf("document: %v, want empty", d)
	}
	if l := p.Archive(); len(l) != 0 {
		t.Fatalf("archive: %v, want empty", l)
	}
	if s := p.Settings(); s != settings.Default() {
		t.Fatalf("settings: %+v, want defaults", s)
	}
}

func TestCorruptRecordFallsBackToDefault(t *testing.T) {
	codec, _ := NewSealedCodec([]byte("test-secret"))
	base := t.TempDir()
	p := New(base, codec, time.Millisecond)
	defer p.Close()

	if err := os.WriteFile(filepath.Join(base, KeyDocument), []byte("garbage"), 0o644); err != nil {
		t.Fatalf("plant corrupt record: %v", err)
	}

	if d := p.Document(); len(d) != 0 {
		t.Fatalf("corrupt document must decode as empty, got %v", d)
	}
}

func TestWrongSecretReadsAsEmpty(t *testing.T) {
	base := t.TempDir()

	codecA, _ := NewSealedCodec([]byte("secret-a"))
	pa := New(base, codecA, time.Millisecond)
	if err := pa.SaveDocument(doc.Document{doc.NewLine("x")}); err != nil {
		t.Fatalf("save: %v", err)
	}
	pa.Close()

	codecB, _ := NewSealedCodec([]byte("secret-b"))
	pb := New(base, codecB, time.Millisecond)
	defer pb.Close()
	if d := pb.Document(); len(d) != 0 {
		t.Fatalf("foreign-key read must fall back to empty, got %v", d)
	}
}

func TestSettingsNormalizedOnLoad(t *testing.T) {
	p := testPersistence(t)
	if err := p.SaveSettings(settings.Settings{Language: settings.Chinese}); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := p.Settings()
	if got.Language != settings.Chinese || got.DarkMode != settings.Light || got.TextSize != settings.SizeNormal {
		t.Fatalf("got %+v", got)
	}
}

func TestDebouncedWriteKeepsLastValue(t *testing.T) {
	p := testPersistence(t)

	first := doc.Document{doc.NewLine("first")}
	second := doc.Document{doc.NewLine("second")}
	p.SaveDocumentDebounced(first)
	p.SaveDocumentDebounced(second)

	// Nothing may hit disk before the quiet window passes.
	if d := p.Document(); len(d) != 0 {
		t.Fatalf("premature write: %v", d)
	}

	deadline := time.After(2 * time.Second)
	for {
		if d := p.Document(); len(d) == 1 {
			if d[0].Text != "second" {
				t.Fatalf("persisted %q, want the last submitted value", d[0].Text)
			}
			return
		}
		select {
		case <-deadline:
			t.Fatal("debounced write never fired")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestSyncWriteSupersedesPendingDebounce(t *testing.T) {
	p := testPersistence(t)

	stale := doc.Document{doc.NewLine("stale")}
	newer := doc.Document{doc.NewLine("newer")}
	p.SaveDocumentDebounced(stale)
	if err := p.SaveDocument(newer); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Wait well past the quiet window: the cancelled timer must not
	// resurrect the older value.
	time.Sleep(100 * time.Millisecond)
	d := p.Document()
	if len(d) != 1 || d[0].Text != "newer" {
		t.Fatalf("persisted %v, want the synchronous write to win", d)
	}
}

func TestCloseCancelsPendingDebounce(t *testing.T) {
	p := testPersistence(t)
	p.SaveDocumentDebounced(doc.Document{doc.NewLine("x")})
	p.Close()

	time.Sleep(50 * time.Millisecond)
	if d := p.Document(); len(d) != 0 {
		t.Fatalf("write fired after Close: %v", d)
	}
}

func TestLoadOrCreateSecretIsStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	a, err := LoadOrCreateSecret(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b, err := LoadOrCreateSecret(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if string(a) != string(b) {
		t.Fatal("secret changed between loads")
	}
	if len(a) == 0 {
		t.Fatal("empty secret")
	}
}

func TestSealedCodecRejectsTamperedData(t *testing.T) {
	codec, _ := NewSealedCodec([]byte("s"))
	data, err := codec.Encode(map[string]string{"a": "b"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	data[len(data)-1] ^= 0xff
	var out map[string]string
	if err := codec.Decode(data, &out); err == nil {
		t.Fatal("tampered ciphertext decoded")
	}
}
