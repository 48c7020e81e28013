package commands

import (
	"context"

	"github.com/spf13/cobra"

	runnerconfig "tableflip.dev/notepad/pkg/runner/config"
	"tableflip.dev/notepad/pkg/session"
	"tableflip.dev/notepad/pkg/store"
)

func addSettings(topLevel *cobra.Command) {
	r := &runnerconfig.Config{}

	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"config"},
		Short:   "show or change the persisted preferences",
		Example: `
notepad settings
notepad settings --theme dark
notepad settings --size lsize --language es
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := session.New(p)
			defer s.Close()
			r.Session = s
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&r.DarkMode, "theme", "",
		"Color mode, one of 'light' or 'dark'.")
	cmd.Flags().StringVar(&r.TextSize, "size", "",
		"Text size, one of 'normal', 'lsize', 'xlsize' or 'xxlsize'.")
	cmd.Flags().StringVar(&r.Language, "language", "",
		"UI language, one of 'en', 'es', 'ja' or 'zh'.")

	topLevel.AddCommand(cmd)
}
