package quiz

import (
	"context"
	"errors"
	"strings"

	"github.com/linguapersonal/linguabot.git/internal/models"
	"go.uber.org/zap"
)

type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateComplete   State = "complete"
)

var (
	ErrNotInProgress = errors.New("quiz is not in progress")
	ErrAnswerLocked  = errors.New("answer already revealed")
	ErrBlankAnswer   = errors.New("answer is blank")
	ErrNotRevealed   = errors.New("answer not revealed yet")
)

// AttemptReporter sends one quiz attempt to the remote API. Implementations
// are expected to look up the caller's bearer token themselves.
type AttemptReporter interface {
	ReportAttempt(ctx context.Context, attempt models.QuizAttempt) error
}

// Session is one run-through of a single quiz kind over a fixed question
// list. It moves strictly forward: not_started -> in_progress(0..n-1) ->
// complete, with every question passing through an answered-then-revealed
// step. Session is not safe for concurrent use; callers serialize per user.
type Session struct {
	kind      Kind
	items     []Pair
	vocab     []Pair
	answers   []string
	index     int
	revealed  bool
	state     State
	sessionID int64
	reporter  AttemptReporter
	log       *zap.Logger
}

func NewSession(kind Kind, items, vocab []Pair, sessionID int64, reporter AttemptReporter, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		kind:      kind,
		items:     items,
		vocab:     vocab,
		state:     StateNotStarted,
		sessionID: sessionID,
		reporter:  reporter,
		log:       log,
	}
}

func (s *Session) Kind() Kind   { return s.kind }
func (s *Session) State() State { return s.state }
func (s *Session) Index() int   { return s.index }
func (s *Session) Total() int   { return len(s.items) }
func (s *Session) Revealed() bool {
	return s.revealed
}

// Start initializes one empty answer slot per question and opens the first
// question.
func (s *Session) Start() error {
	if s.state != StateNotStarted {
		return errors.New("quiz already started")
	}
	if len(s.items) == 0 {
		return errors.New("quiz has no questions")
	}
	s.answers = make([]string, len(s.items))
	s.index = 0
	s.revealed = false
	s.state = StateInProgress
	return nil
}

// Current returns the derived question at the current index.
func (s *Session) Current() Derived {
	return s.kind.Derive(s.items[s.index], s.vocab)
}

// CurrentAnswer returns the stored answer for the current question.
func (s *Session) CurrentAnswer() string {
	return s.answers[s.index]
}

// UpdateAnswer overwrites the current question's answer slot. Content is not
// validated; the slot just has to be unlocked.
func (s *Session) UpdateAnswer(value string) error {
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	if s.revealed {
		return ErrAnswerLocked
	}
	s.answers[s.index] = value
	return nil
}

// Reveal locks the current answer and returns whether it matches the
// canonical one. Vocabulary quizzes additionally report the attempt to the
// remote API; a reporting failure is logged and swallowed so it never blocks
// quiz progression.
func (s *Session) Reveal(ctx context.Context) (bool, error) {
	if s.state != StateInProgress {
		return false, ErrNotInProgress
	}
	if s.revealed {
		return false, ErrAnswerLocked
	}
	if strings.TrimSpace(s.answers[s.index]) == "" {
		return false, ErrBlankAnswer
	}

	derived := s.Current()
	correct := Match(s.answers[s.index], derived.Answer)
	s.revealed = true

	if s.kind == KindVocabulary && s.reporter != nil {
		attempt := models.QuizAttempt{
			SessionID:     s.sessionID,
			QuestionText:  derived.Prompt,
			UserAnswer:    s.answers[s.index],
			CorrectAnswer: derived.Answer,
			IsCorrect:     correct,
		}
		if err := s.reporter.ReportAttempt(ctx, attempt); err != nil {
			s.log.Warn("failed to report quiz attempt",
				zap.Int64("session_id", s.sessionID),
				zap.String("question", derived.Prompt),
				zap.Error(err))
		}
	}

	return correct, nil
}

// Advance moves to the next question, or to complete past the last one.
func (s *Session) Advance() error {
	if s.state != StateInProgress {
		return ErrNotInProgress
	}
	if !s.revealed {
		return ErrNotRevealed
	}
	if s.index+1 < len(s.items) {
		s.index++
		s.revealed = false
		return nil
	}
	s.state = StateComplete
	return nil
}

// Score re-derives every canonical answer and tallies the stored answers
// against them.
func (s *Session) Score() Score {
	return ScoreAnswers(s.kind, s.items, s.vocab, s.answers)
}
