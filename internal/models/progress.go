package models

type UserProgress struct {
	UserID         int64  `json:"user_id"`
	Language       string `json:"language"`
	TotalQuestions int    `json:"total_questions"`
	CorrectAnswers int    `json:"correct_answers"`
	LastStudied    string `json:"last_studied"`
}

// MistakeItem is a past incorrect answer, fetched on demand and never cached.
type MistakeItem struct {
	QuestionText  string `json:"question_text"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Timestamp     string `json:"timestamp"`
	Language      string `json:"language"`
}
