package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestCopyWritesOSC52(t *testing.T) {
	var buf bytes.Buffer
	if err := Copy(&buf, "hello"); err != nil {
		t.Fatalf("copy: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\x1b]52;") {
		t.Fatalf("expected OSC 52 sequence, got %q", out)
	}
	if !strings.Contains(out, base64.StdEncoding.EncodeToString([]byte("hello"))) {
		t.Fatalf("expected base64 payload in %q", out)
	}
}

func TestCopyFailsWithoutOutput(t *testing.T) {
	if err := Copy(nil, "hello"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestFeedback(t *testing.T) {
	if Feedback(nil) != CopiedMessage {
		t.Fatalf("unexpected success feedback")
	}
	if Feedback(errors.New("boom")) != FailedMessage {
		t.Fatalf("unexpected failure feedback")
	}
}
