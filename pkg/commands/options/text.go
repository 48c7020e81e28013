package options

import (
	"github.com/spf13/cobra"
)

// TextOptions carry the free-text payload and caret position used by
// the line editing commands.
type TextOptions struct {
	Text string
	At   int
}

func AddAtArg(cmd *cobra.Command, o *TextOptions) {
	cmd.Flags().IntVar(&o.At, "at", 0,
		"Rune position within the line text.")
}

// PositionOptions select where an inserted line lands.
type PositionOptions struct {
	Before bool
}

func AddBeforeArg(cmd *cobra.Command, o *PositionOptions) {
	cmd.Flags().BoolVar(&o.Before, "before", false,
		"Insert before the target line instead of after.")
}
