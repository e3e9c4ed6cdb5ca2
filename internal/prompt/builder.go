package prompt

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MinQuestions = 1
	MaxQuestions = 50
)

// Options are the quiz parameters described to the LLM.
type Options struct {
	Language   string `json:"language" yaml:"language"`
	Topic      string `json:"topic" yaml:"topic"`
	Difficulty string `json:"difficulty" yaml:"difficulty"`
	Questions  int    `json:"questions" yaml:"questions"`
}

// Defaults returns the form's initial values.
func Defaults() Options {
	return Options{
		Language:   "Python",
		Topic:      "Variables & Data Types",
		Difficulty: "intermediate",
		Questions:  5,
	}
}

// Issue is a problem with a single form field.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError reports every invalid field at once.
type ValidationError struct {
	Issues []Issue
}

func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return "invalid quiz options: " + strings.Join(parts, "; ")
}

// Field returns the message for field, or "".
func (err *ValidationError) Field(field string) string {
	for _, issue := range err.Issues {
		if issue.Field == field {
			return issue.Message
		}
	}
	return ""
}

type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Validate checks that every field is filled in.
func Validate(opts Options) error {
	c := &issueCollector{}
	if strings.TrimSpace(opts.Language) == "" {
		c.add("language", "Please enter a language.")
	}
	if strings.TrimSpace(opts.Topic) == "" {
		c.add("topic", "Please enter a topic.")
	}
	if strings.TrimSpace(opts.Difficulty) == "" {
		c.add("difficulty", "Please enter a difficulty.")
	}
	if opts.Questions == 0 {
		c.add("questions", "Please enter number of questions.")
	} else if opts.Questions < MinQuestions || opts.Questions > MaxQuestions {
		c.add("questions", fmt.Sprintf("Number of questions must be between %d and %d.", MinQuestions, MaxQuestions))
	}
	return c.result()
}

// Build renders the prompt asking an LLM for a quiz in the JSON shape the normalizer accepts.
// Catalog values for language and topic are replaced by their labels.
func Build(opts Options) (string, error) {
	if err := Validate(opts); err != nil {
		return "", err
	}
	language := ResolveLanguage(opts.Language)
	topic := ResolveTopic(opts.Language, opts.Topic)
	difficulty := strings.TrimSpace(opts.Difficulty)

	var b strings.Builder
	b.WriteString("Give me ")
	b.WriteString(strconv.Itoa(opts.Questions))
	b.WriteString(" multiple choice questions about ")
	b.WriteString(topic)
	b.WriteString(" in the ")
	b.WriteString(language)
	b.WriteString(" programming language/framework.\n")
	b.WriteString("The questions should be at an ")
	b.WriteString(difficulty)
	b.WriteString(" level.\n")
	b.WriteString("Return your answer only in the form of a JSON object.\n")
	b.WriteString(`The JSON object should have a key named "questions" which is an array of all the questions.` + "\n")
	b.WriteString(`Each question should have: "question" (string), "choices" (array of 4 strings), "answer" (number index of correct choice 0-3), and "explanation" (string).` + "\n")
	b.WriteString(`Example format: {"questions": [{"question": "What is...", "choices": ["option1", "option2", "option3", "option4"], "answer": 1, "explanation": "Because..."}]}`)
	return b.String(), nil
}
