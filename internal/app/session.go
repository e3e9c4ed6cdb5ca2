package app

import "quizpad/internal/domain"

// Session is the interactive state layered over immutable quiz data:
// the current question and the choice recorded for each answered question.
// A Session is owned by one display surface and is not safe for concurrent use.
type Session struct {
	data     domain.QuizData
	selected map[int]int
	current  int
}

// NewSession starts a session at the first question with no answers.
func NewSession(data domain.QuizData) *Session {
	return &Session{
		data:     data,
		selected: make(map[int]int),
	}
}

// Data returns the quiz data the session was built with.
func (s *Session) Data() domain.QuizData {
	return s.data
}

// Len returns the number of questions.
func (s *Session) Len() int {
	return s.data.Len()
}

// Current returns the index of the current question.
func (s *Session) Current() int {
	return s.current
}

// CurrentQuestion returns the question under the pointer; false when the quiz is empty.
func (s *Session) CurrentQuestion() (domain.Question, bool) {
	return s.data.Question(s.current)
}

// SelectAnswer records choice for question, replacing any earlier choice.
// Out-of-range indices are rejected and nothing is stored.
func (s *Session) SelectAnswer(question, choice int) bool {
	q, ok := s.data.Question(question)
	if !ok {
		return false
	}
	if choice < 0 || choice >= len(q.Choices) {
		return false
	}
	s.selected[question] = choice
	return true
}

// Selected returns the recorded choice for question.
func (s *Session) Selected(question int) (int, bool) {
	choice, ok := s.selected[question]
	return choice, ok
}

// GoTo moves to index, clamped to the valid range. Reports whether the pointer moved.
func (s *Session) GoTo(index int) bool {
	n := s.data.Len()
	if n == 0 {
		return false
	}
	if index < 0 {
		index = 0
	}
	if index > n-1 {
		index = n - 1
	}
	if index == s.current {
		return false
	}
	s.current = index
	return true
}

// Next advances one question; a no-op on the last question.
func (s *Session) Next() bool {
	if s.current+1 >= s.data.Len() {
		return false
	}
	s.current++
	return true
}

// Previous steps back one question; a no-op on the first question.
func (s *Session) Previous() bool {
	if s.current == 0 {
		return false
	}
	s.current--
	return true
}

// Score counts answered questions whose recorded choice is correct.
func (s *Session) Score() int {
	score := 0
	for question, choice := range s.selected {
		if q, ok := s.data.Question(question); ok && q.CorrectIndex == choice {
			score++
		}
	}
	return score
}

// AnsweredCount returns how many questions have a recorded choice.
func (s *Session) AnsweredCount() int {
	return len(s.selected)
}

// Restart clears every answer and returns to the first question.
func (s *Session) Restart() {
	s.selected = make(map[int]int)
	s.current = 0
}

// IsAnswered reports whether question has a recorded choice.
func (s *Session) IsAnswered(question int) bool {
	_, ok := s.selected[question]
	return ok
}

// IsCorrect reports whether the recorded choice for question is correct.
// Unanswered questions are never correct.
func (s *Session) IsCorrect(question int) bool {
	choice, ok := s.selected[question]
	if !ok {
		return false
	}
	q, ok := s.data.Question(question)
	return ok && q.CorrectIndex == choice
}

// View is the derived state a display surface renders.
type View struct {
	Empty       bool            `json:"empty"`
	Index       int             `json:"index"`
	Position    int             `json:"position"`
	Total       int             `json:"total"`
	Score       int             `json:"score"`
	Question    domain.Question `json:"question"`
	Selected    int             `json:"selected"`
	Answered    bool            `json:"answered"`
	Correct     bool            `json:"correct"`
	CanPrevious bool            `json:"canPrevious"`
	CanNext     bool            `json:"canNext"`
	CanRestart  bool            `json:"canRestart"`
	Perfect     bool            `json:"perfect"`
}

// View snapshots the session for rendering. Selected is -1 when unanswered.
func (s *Session) View() View {
	total := s.data.Len()
	if total == 0 {
		return View{Empty: true, Selected: -1}
	}
	question, _ := s.CurrentQuestion()
	selected, answered := s.selected[s.current]
	if !answered {
		selected = -1
	}
	score := s.Score()
	return View{
		Index:       s.current,
		Position:    s.current + 1,
		Total:       total,
		Score:       score,
		Question:    question,
		Selected:    selected,
		Answered:    answered,
		Correct:     answered && selected == question.CorrectIndex,
		CanPrevious: s.current > 0,
		CanNext:     s.current < total-1,
		CanRestart:  len(s.selected) > 0,
		Perfect:     score == total,
	}
}
