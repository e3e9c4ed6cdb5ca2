package domain

// Question is a single multiple-choice question in canonical form.
type Question struct {
	Text         string   `json:"question"`
	Choices      []string `json:"choices"`
	CorrectIndex int      `json:"answer"`
	Explanation  string   `json:"explanation"`
}

// QuizData is an ordered list of canonical questions.
type QuizData struct {
	Questions []Question `json:"questions"`
}

// Len returns the number of questions.
func (q QuizData) Len() int {
	return len(q.Questions)
}

// Question returns the question at index i, if present.
func (q QuizData) Question(i int) (Question, bool) {
	if i < 0 || i >= len(q.Questions) {
		return Question{}, false
	}
	return q.Questions[i], true
}
