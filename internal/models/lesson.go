package models

// VocabItem is one translation pair. Immutable once received from the API.
type VocabItem struct {
	Native string `json:"native" validate:"required"`
	Target string `json:"target" validate:"required"`
}

// TranslationItem is a sentence-level translation pair used for
// mini-translation quizzes.
type TranslationItem struct {
	Native string `json:"native" validate:"required"`
	Target string `json:"target" validate:"required"`
}

type LessonQuiz struct {
	VocabMatching    []VocabItem       `json:"vocab_matching" validate:"required,min=1,dive"`
	MiniTranslations []TranslationItem `json:"mini_translations" validate:"required,min=1,dive"`
}

type Lesson struct {
	Vocabulary   []VocabItem `json:"vocabulary" validate:"required,min=1,dive"`
	GrammarNotes string      `json:"grammar_notes"`
	Quiz         LessonQuiz  `json:"quiz"`
}

// GeneratedLesson is the /generate-lesson response: a lesson plus the
// server-assigned learning session id used to report quiz attempts.
type GeneratedLesson struct {
	Lesson
	SessionID int64 `json:"session_id" validate:"required"`
}

type LessonRequest struct {
	UserPrompt string `json:"user_prompt"`
	TargetLang string `json:"target_lang"`
	NativeLang string `json:"native_lang"`
}

type QuizAttempt struct {
	SessionID     int64  `json:"session_id"`
	QuestionText  string `json:"question_text"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
}

type AttemptReceipt struct {
	Message   string `json:"message"`
	IsCorrect bool   `json:"is_correct"`
}
