// Package settings holds the small persisted preference record. Loading
// backfills defaults for any missing field so older stored records keep
// working; beyond that, well-typed values are accepted as-is.
package settings

// DarkMode selects the display theme.
type DarkMode string

const (
	Light DarkMode = "light"
	Dark  DarkMode = "dark"
)

// TextSize selects the display text size profile.
type TextSize string

const (
	SizeNormal TextSize = "normal"
	SizeL      TextSize = "lsize"
	SizeXL     TextSize = "xlsize"
	SizeXXL    TextSize = "xxlsize"
)

// Language selects the UI language.
type Language string

const (
	English  Language = "en"
	Spanish  Language = "es"
	Japanese Language = "ja"
	Chinese  Language = "zh"
)

// Settings is the persisted preference record.
type Settings struct {
	DarkMode DarkMode `json:"darkMode"`
	TextSize TextSize `json:"textSize"`
	Language Language `json:"language"`
}

// Default returns the settings used for a fresh install.
func Default() Settings {
	return Settings{
		DarkMode: Light,
		TextSize: SizeNormal,
		Language: English,
	}
}

// Normalize backfills zero-valued fields with defaults. It performs no
// validation: unknown but present values round-trip untouched, which
// keeps the schema forward-compatible.
func (s Settings) Normalize() Settings {
	d := Default()
	if s.DarkMode == "" {
		s.DarkMode = d.DarkMode
	}
	if s.TextSize == "" {
		s.TextSize = d.TextSize
	}
	if s.Language == "" {
		s.Language = d.Language
	}
	return s
}
