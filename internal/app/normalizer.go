package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"sort"
	"strings"

	"quizpad/internal/domain"
)

// Decode parses pasted text into a loosely-typed JSON value.
// Numbers are kept as json.Number so answer indices never lose precision.
func Decode(text []byte) (any, error) {
	if len(bytes.TrimSpace(text)) == 0 {
		return nil, &domain.ParseError{Err: domain.ErrEmptyDocument}
	}
	decoder := json.NewDecoder(bytes.NewReader(text))
	decoder.UseNumber()
	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return nil, &domain.ParseError{Err: err}
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			err = errors.New("multiple documents are not supported")
		}
		return nil, &domain.ParseError{Err: err}
	}
	return raw, nil
}

// Parse decodes and normalizes pasted text.
func Parse(text []byte) (domain.QuizData, error) {
	raw, err := Decode(text)
	if err != nil {
		return domain.QuizData{}, err
	}
	return Normalize(raw)
}

// Normalize converts a decoded JSON value into canonical quiz data.
// The first malformed question fails the whole document.
func Normalize(raw any) (domain.QuizData, error) {
	doc, ok := raw.(map[string]any)
	if !ok {
		return domain.QuizData{}, shapeError(0, domain.RuleQuestionsArray)
	}
	items, ok := doc["questions"].([]any)
	if !ok {
		return domain.QuizData{}, shapeError(0, domain.RuleQuestionsArray)
	}

	questions := make([]domain.Question, 0, len(items))
	for i, item := range items {
		question, err := normalizeQuestion(i+1, item)
		if err != nil {
			return domain.QuizData{}, err
		}
		questions = append(questions, question)
	}
	return domain.QuizData{Questions: questions}, nil
}

func normalizeQuestion(position int, item any) (domain.Question, error) {
	obj, ok := item.(map[string]any)
	if !ok {
		return domain.Question{}, shapeError(position, domain.RuleNotObject)
	}

	text, ok := nonBlankString(obj["question"])
	if !ok {
		return domain.Question{}, shapeError(position, domain.RuleMissingQuestion)
	}
	explanation, ok := nonBlankString(obj["explanation"])
	if !ok {
		return domain.Question{}, shapeError(position, domain.RuleMissingExplain)
	}

	rawChoices, ok := obj["choices"]
	if !ok || rawChoices == nil {
		return domain.Question{}, shapeError(position, domain.RuleMissingChoices)
	}
	choices, rule := normalizeChoices(rawChoices)
	if rule != "" {
		return domain.Question{}, shapeError(position, rule)
	}

	answer, rule := answerIndex(obj["answer"], len(choices))
	if rule != "" {
		return domain.Question{}, shapeError(position, rule)
	}

	return domain.Question{
		Text:         text,
		Choices:      choices,
		CorrectIndex: answer,
		Explanation:  explanation,
	}, nil
}

// normalizeChoices accepts an array of strings or a letter-keyed object.
// Object keys are taken in sorted order and non-string values are dropped.
func normalizeChoices(raw any) ([]string, string) {
	var choices []string
	switch typed := raw.(type) {
	case []any:
		choices = make([]string, 0, len(typed))
		for _, value := range typed {
			text, ok := value.(string)
			if !ok {
				return nil, domain.RuleChoiceNotString
			}
			choices = append(choices, text)
		}
	case []string:
		choices = append([]string(nil), typed...)
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		choices = make([]string, 0, len(keys))
		for _, key := range keys {
			if text, ok := typed[key].(string); ok {
				choices = append(choices, text)
			}
		}
	case map[string]string:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		choices = make([]string, 0, len(keys))
		for _, key := range keys {
			choices = append(choices, typed[key])
		}
	default:
		return nil, domain.RuleChoicesType
	}
	if len(choices) == 0 {
		return nil, domain.RuleNoValidChoices
	}
	return choices, ""
}

// answerIndex validates the answer against the number of choices.
// Non-integral numbers are reported as out of range.
func answerIndex(raw any, count int) (int, string) {
	var value float64
	switch typed := raw.(type) {
	case json.Number:
		if i, err := typed.Int64(); err == nil {
			if i < 0 || i >= int64(count) {
				return 0, domain.RuleAnswerOutOfRange
			}
			return int(i), ""
		}
		f, err := typed.Float64()
		if err != nil {
			return 0, domain.RuleMissingAnswer
		}
		value = f
	case float64:
		value = typed
	case int:
		value = float64(typed)
	case int64:
		value = float64(typed)
	default:
		return 0, domain.RuleMissingAnswer
	}
	if math.IsNaN(value) || value != math.Trunc(value) || value < 0 || value >= float64(count) {
		return 0, domain.RuleAnswerOutOfRange
	}
	return int(value), ""
}

func nonBlankString(raw any) (string, bool) {
	text, ok := raw.(string)
	if !ok || strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}

func shapeError(position int, rule string) error {
	return &domain.ShapeError{Question: position, Rule: rule}
}
