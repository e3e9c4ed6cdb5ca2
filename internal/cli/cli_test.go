package cli

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"quizpad/internal/infra/memory"
	"quizpad/internal/prompt"
	transport "quizpad/internal/transport/http"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestPromptCommandUsesFlags(t *testing.T) {
	out, err := execute(t, "", "prompt", "--language", "Go", "--topic", "Concurrency", "--questions", "3")
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if !strings.Contains(out, "Give me 3 multiple choice questions") || !strings.Contains(out, "Go programming language") {
		t.Fatalf("unexpected prompt:\n%s", out)
	}
}

func TestPromptCommandRejectsInvalidOptions(t *testing.T) {
	if _, err := execute(t, "", "prompt", "--questions", "0"); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestCheckCommandReadsStdin(t *testing.T) {
	out, err := execute(t, `{"questions":[{"question":"Q1","choices":["a","b"],"answer":0,"explanation":"E"}]}`, "check")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "ok: 1 question(s)") || !strings.Contains(out, "Q1 (2 choices)") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestCheckCommandReportsShapeErrors(t *testing.T) {
	_, err := execute(t, `{"questions":[{"question":"Q1","choices":["a"],"answer":0}]}`, "check", "-")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "shape error") || !strings.Contains(err.Error(), "question 1") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSampleDocumentsAreValid(t *testing.T) {
	for id, body := range sampleDocuments() {
		out, err := execute(t, string(body), "check")
		if err != nil {
			t.Fatalf("sample %s: %v", id, err)
		}
		if !strings.Contains(out, "ok: 3 question(s)") {
			t.Fatalf("sample %s: unexpected output %s", id, out)
		}
	}
}

func TestRoutes(t *testing.T) {
	handler := routes(
		transport.NewWSHandler(memory.NewSurfaceStore(), nil, prompt.Defaults()),
		transport.NewAPIHandler(prompt.Defaults()),
	)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthz: %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	body := strings.NewReader(`{"questions":[{"question":"Q","choices":["a"],"answer":0,"explanation":"E"}]}`)
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/normalize", body))
	if rec.Code != http.StatusOK {
		t.Fatalf("normalize: %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/normalize", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for GET normalize, got %d", rec.Code)
	}
}
