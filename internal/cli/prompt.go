package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quizpad/internal/clipboard"
	"quizpad/internal/config"
	"quizpad/internal/prompt"
)

// NewPromptCmd prints the LLM prompt that asks for a quiz document.
func NewPromptCmd(configPath *string) *cobra.Command {
	var (
		opts   prompt.Options
		toClip bool
	)
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print a quiz-generation prompt for an LLM",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			merged := cfg.Prompt
			flags := cmd.Flags()
			if flags.Changed("language") {
				merged.Language = opts.Language
			}
			if flags.Changed("topic") {
				merged.Topic = opts.Topic
			}
			if flags.Changed("difficulty") {
				merged.Difficulty = opts.Difficulty
			}
			if flags.Changed("questions") {
				merged.Questions = opts.Questions
			}

			text, err := prompt.Build(merged)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			if toClip {
				fmt.Fprintln(cmd.ErrOrStderr(), clipboard.Feedback(clipboard.Copy(os.Stderr, text)))
			}
			return nil
		},
	}

	defaults := prompt.Defaults()
	cmd.Flags().StringVar(&opts.Language, "language", defaults.Language, "programming language")
	cmd.Flags().StringVar(&opts.Topic, "topic", defaults.Topic, "topic within the language")
	cmd.Flags().StringVar(&opts.Difficulty, "difficulty", defaults.Difficulty, "beginner, intermediate or advanced")
	cmd.Flags().IntVar(&opts.Questions, "questions", defaults.Questions, "number of questions (1-50)")
	cmd.Flags().BoolVar(&toClip, "copy", false, "also copy the prompt to the clipboard via the terminal")
	return cmd
}
