package cli

import (
	"os"

	"github.com/spf13/cobra"

	"quizpad/internal/app"
	"quizpad/internal/clipboard"
	"quizpad/internal/config"
	"quizpad/internal/ui"
)

// NewPlayCmd opens the terminal quiz surface.
func NewPlayCmd(configPath *string) *cobra.Command {
	var (
		documentID string
		noColor    bool
	)
	cmd := &cobra.Command{
		Use:   "play [file]",
		Short: "Take a quiz in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			workspace := app.NewWorkspace()
			switch {
			case len(args) == 1:
				text, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				if _, err := workspace.Load(text); err != nil {
					return err
				}
			case documentID != "":
				b, err := connectBackends(cmd.Context(), cfg)
				if err != nil {
					return err
				}
				_, err = workspace.LoadFrom(cmd.Context(), b.documents(cfg), documentID)
				b.Close()
				if err != nil {
					return err
				}
			}

			opts := ui.Options{
				NoColor:       noColor || cfg.UI.NoColor || os.Getenv("NO_COLOR") != "",
				FeedbackDelay: config.TTLDuration(cfg.UI.FeedbackDelay, clipboard.DefaultFeedbackDelay),
				Prompt:        cfg.Prompt,
				Copy: func(text string) error {
					return clipboard.Copy(os.Stderr, text)
				},
			}
			return ui.Run(workspace, opts, os.Stdin, os.Stdout)
		},
	}
	cmd.Flags().StringVar(&documentID, "document", "", "load a stored quiz document by id")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}
