package settings

import "testing"

func TestNormalizeBackfillsMissingFields(t *testing.T) {
	got := Settings{Language: Japanese}.Normalize()
	want := Settings{DarkMode: Light, TextSize: SizeNormal, Language: Japanese}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestNormalizeKeepsUnknownValues(t *testing.T) {
	// Forward compatibility: a value written by a newer build survives.
	got := Settings{DarkMode: "oled", TextSize: SizeL, Language: Spanish}.Normalize()
	if got.DarkMode != "oled" {
		t.Fatalf("unknown value rewritten: %+v", got)
	}
}

func TestNormalizeZeroValueIsDefault(t *testing.T) {
	if got := (Settings{}).Normalize(); got != Default() {
		t.Fatalf("got %+v, want defaults", got)
	}
}
