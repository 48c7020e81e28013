package edit

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/notepad/pkg/session"
	"tableflip.dev/notepad/pkg/store"
)

// A one-shot invocation tears the session down before any debounce
// window can elapse, so the text edit must reach disk synchronously.
func TestOneShotEditSurvivesClose(t *testing.T) {
	base := t.TempDir()
	codec := store.NewJSONCodec()

	seed := session.New(store.New(base, codec, time.Hour))
	d := seed.AddLine("original")
	id := d[len(d)-1].ID
	seed.Close()

	e := &Edit{Action: SetText, ID: id, Text: "edited"}
	s := session.New(store.New(base, codec, time.Hour),
		session.WithNotify(e.NotifyChannel()))
	e.Session = s
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	s.Close()

	check := store.New(base, codec, time.Hour)
	defer check.Close()
	got := check.Document()

	found := false
	for _, l := range got {
		if l.ID == id {
			found = true
			if l.Text != "edited" {
				t.Fatalf("persisted %q, want the edited text", l.Text)
			}
		}
	}
	if !found {
		t.Fatalf("edited line missing from persisted document: %v", got)
	}
}
