package clipboard

import (
	"fmt"
	"io"
	"time"

	"github.com/aymanbagabas/go-osc52/v2"
)

const (
	CopiedMessage = "Prompt copied to clipboard!"
	FailedMessage = "Failed to copy prompt"

	DefaultFeedbackDelay = 3 * time.Second
)

// Copy asks the terminal behind out to place text on the system clipboard (OSC 52).
func Copy(out io.Writer, text string) error {
	if out == nil {
		return fmt.Errorf("copy to clipboard: no terminal output")
	}
	if _, err := osc52.New(text).WriteTo(out); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// Feedback returns the transient message shown after a copy attempt.
func Feedback(err error) string {
	if err != nil {
		return FailedMessage
	}
	return CopiedMessage
}
