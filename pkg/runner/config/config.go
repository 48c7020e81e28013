package config

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/notepad/pkg/session"
	"tableflip.dev/notepad/pkg/settings"
)

// Config shows or updates the persisted preferences. Empty fields are
// left untouched.
type Config struct {
	DarkMode string
	TextSize string
	Language string

	Session *session.Session
}

func (c *Config) Do(ctx context.Context) error {
	prefs := c.Session.Settings()

	if c.DarkMode != "" {
		prefs = c.Session.SetDarkMode(settings.DarkMode(c.DarkMode))
	}
	if c.TextSize != "" {
		prefs = c.Session.SetTextSize(settings.TextSize(c.TextSize))
	}
	if c.Language != "" {
		prefs = c.Session.SetLanguage(settings.Language(c.Language))
	}

	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println("settings")
	fmt.Printf("theme:    %s\n", prefs.DarkMode)
	fmt.Printf("size:     %s\n", prefs.TextSize)
	fmt.Printf("language: %s\n", prefs.Language)
	return nil
}
