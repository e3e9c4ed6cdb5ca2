package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDocument is returned when nothing was pasted.
	ErrEmptyDocument = errors.New("please paste some JSON data first")
	// ErrDocumentNotFound indicates an external document source has no document for the id.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrSurfaceNotFound is returned when a display surface is not registered.
	ErrSurfaceNotFound = errors.New("surface not found")
)

// Error kinds reported to display surfaces.
const (
	KindParse   = "parse"
	KindShape   = "shape"
	KindInvalid = "invalid"
	KindUnknown = "unknown"
)

// Shape rules reported by the normalizer.
const (
	RuleQuestionsArray   = "expected questions array"
	RuleNotObject        = "expected an object"
	RuleMissingQuestion  = "missing question text"
	RuleMissingExplain   = "missing explanation"
	RuleMissingChoices   = "missing choices"
	RuleChoicesType      = "choices must be an array or a letter-keyed object"
	RuleChoiceNotString  = "choices must be strings"
	RuleNoValidChoices   = "no valid choices"
	RuleMissingAnswer    = "answer must be a number"
	RuleAnswerOutOfRange = "answer index out of range"
)

// ParseError reports text that is not well-formed JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrEmptyDocument) {
		return e.Err.Error()
	}
	return fmt.Sprintf("invalid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Kind returns KindParse.
func (e *ParseError) Kind() string { return KindParse }

// ShapeError reports well-formed JSON that does not match the quiz schema.
// Question is 1-based; zero means the problem is with the document itself.
type ShapeError struct {
	Question int
	Rule     string
}

func (e *ShapeError) Error() string {
	if e.Question == 0 {
		return e.Rule
	}
	return fmt.Sprintf("question %d: %s", e.Question, e.Rule)
}

// Kind returns KindShape.
func (e *ShapeError) Kind() string { return KindShape }

// ErrorKind classifies err for display surfaces.
func ErrorKind(err error) string {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return KindParse
	}
	var shapeErr *ShapeError
	if errors.As(err, &shapeErr) {
		return KindShape
	}
	return KindUnknown
}
