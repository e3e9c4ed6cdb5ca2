package app

import (
	"context"
	"fmt"

	"quizpad/internal/domain"
)

// DocumentRepository fetches raw quiz documents from an external source (cache/backing store).
type DocumentRepository interface {
	GetDocument(ctx context.Context, id string) ([]byte, error)
}

// SurfaceRepository tracks the workspaces of connected display surfaces (in-memory, Redis, etc).
type SurfaceRepository interface {
	Register(id string, workspace *Workspace)
	Get(id string) (*Workspace, bool)
	Remove(id string)
	Len() int
}

// Workspace owns the active session of one display surface.
// Loading a new document replaces the session wholesale; a failed load leaves it untouched.
type Workspace struct {
	session *Session
}

// NewWorkspace starts with an empty quiz.
func NewWorkspace() *Workspace {
	return &Workspace{session: NewSession(domain.QuizData{})}
}

// Session returns the active session.
func (w *Workspace) Session() *Session {
	return w.session
}

// Loaded reports whether a quiz with at least one question is active.
func (w *Workspace) Loaded() bool {
	return w.session.Len() > 0
}

// Load parses pasted text and, on success, starts a fresh session over it.
func (w *Workspace) Load(text []byte) (domain.QuizData, error) {
	data, err := Parse(text)
	if err != nil {
		return domain.QuizData{}, err
	}
	w.session = NewSession(data)
	return data, nil
}

// LoadValue normalizes an already-decoded document.
func (w *Workspace) LoadValue(raw any) (domain.QuizData, error) {
	data, err := Normalize(raw)
	if err != nil {
		return domain.QuizData{}, err
	}
	w.session = NewSession(data)
	return data, nil
}

// LoadFrom fetches document id from source and loads it.
func (w *Workspace) LoadFrom(ctx context.Context, source DocumentRepository, id string) (domain.QuizData, error) {
	text, err := source.GetDocument(ctx, id)
	if err != nil {
		return domain.QuizData{}, fmt.Errorf("fetch document %s: %w", id, err)
	}
	return w.Load(text)
}
