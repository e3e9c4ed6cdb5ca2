package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"quizpad/internal/app"
	"quizpad/internal/domain"
)

// NewCheckCmd validates a quiz document without starting a session.
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a quiz JSON document (reads stdin when no file or '-' is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readDocument(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			data, err := app.Parse(text)
			if err != nil {
				return fmt.Errorf("%s error: %w", domain.ErrorKind(err), err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ok: %d question(s)\n", data.Len())
			for i, q := range data.Questions {
				fmt.Fprintf(out, "%3d. %s (%d choices)\n", i+1, q.Text, len(q.Choices))
			}
			return nil
		},
	}
}

func readDocument(stdin io.Reader, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(args[0])
}
