package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/linguapersonal/linguabot.git/internal/client"
	"github.com/linguapersonal/linguabot.git/internal/models"
	"github.com/linguapersonal/linguabot.git/internal/quiz"
	"go.uber.org/zap"
)

var (
	ErrEmptyPrompt        = errors.New("prompt must not be blank")
	ErrAuthRequired       = errors.New("authentication required, please log in")
	ErrNoLesson           = errors.New("no lesson loaded")
	ErrGenerationInFlight = errors.New("lesson generation already in progress")
	ErrStaleResponse      = errors.New("stale lesson response discarded")
)

type LessonState string

const (
	LessonStateInput      LessonState = "input"
	LessonStateGenerating LessonState = "generating"
	LessonStateLoaded     LessonState = "lesson_loaded"
)

// LessonSession is one user's lesson lifecycle: prompt entry, generation,
// loaded lesson with an optionally active quiz. Responses are tagged with a
// request epoch; anything arriving after a reset is discarded instead of
// being applied to then-current state.
type LessonSession struct {
	mu     sync.Mutex
	epoch  uint64
	state  LessonState
	lesson models.GeneratedLesson
	loaded bool
	active *quiz.Session
}

func NewLessonSession() *LessonSession {
	return &LessonSession{state: LessonStateInput}
}

func (s *LessonSession) State() LessonState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *LessonSession) Lesson() (models.GeneratedLesson, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lesson, s.loaded
}

func (s *LessonSession) ActiveQuiz() *quiz.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// AbandonQuiz discards the active quiz session, in-progress answers
// included. There is no resume.
func (s *LessonSession) AbandonQuiz() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = nil
}

// Reset discards the lesson, session identifier and any active quiz, and
// bumps the epoch so an in-flight generation lands nowhere.
func (s *LessonSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.state = LessonStateInput
	s.lesson = models.GeneratedLesson{}
	s.loaded = false
	s.active = nil
}

func (s *LessonSession) beginGenerate() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == LessonStateGenerating {
		return 0, ErrGenerationInFlight
	}
	s.epoch++
	s.state = LessonStateGenerating
	return s.epoch, nil
}

func (s *LessonSession) applyLesson(epoch uint64, lesson models.GeneratedLesson) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		return ErrStaleResponse
	}
	s.state = LessonStateLoaded
	s.lesson = lesson
	s.loaded = true
	s.active = nil
	return nil
}

func (s *LessonSession) failGenerate(epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		return
	}
	if s.loaded {
		s.state = LessonStateLoaded
	} else {
		s.state = LessonStateInput
	}
}

// SetActiveQuiz attaches a quiz session, replacing any active one.
func (s *LessonSession) SetActiveQuiz(session *quiz.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = session
}

type LessonS struct {
	api    LessonAPII
	tokens TokenStoreI
	target string
	native string
	log    *zap.Logger
}

func NewLessonService(api LessonAPII, tokens TokenStoreI, target, native string, log *zap.Logger) *LessonS {
	return &LessonS{api: api, tokens: tokens, target: target, native: native, log: log}
}

// Generate requests a lesson for the prompt. The token is checked before any
// network call; a 401 clears the stored token so the next attempt asks for a
// fresh login.
func (l *LessonS) Generate(ctx context.Context, userID int64, ls *LessonSession, prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return ErrEmptyPrompt
	}
	token, err := l.bearer(ctx, userID)
	if err != nil {
		return err
	}

	epoch, err := ls.beginGenerate()
	if err != nil {
		return err
	}

	lesson, err := l.api.GenerateLesson(ctx, token, models.LessonRequest{
		UserPrompt: prompt,
		TargetLang: l.target,
		NativeLang: l.native,
	})
	if err != nil {
		ls.failGenerate(epoch)
		if errors.Is(err, client.ErrSessionExpired) {
			l.clearToken(ctx, userID)
			return err
		}
		return fmt.Errorf("lesson generation failed: %w", err)
	}

	if err := ls.applyLesson(epoch, lesson); err != nil {
		l.log.Info("discarded stale lesson response",
			zap.Int64("user_id", userID), zap.Uint64("epoch", epoch))
		return err
	}
	return nil
}

// StartQuiz opens a fresh quiz session of the given kind over the loaded
// lesson, replacing (and discarding) any active one.
func (l *LessonS) StartQuiz(userID int64, ls *LessonSession, kind quiz.Kind) (*quiz.Session, error) {
	lesson, ok := ls.Lesson()
	if !ok {
		return nil, ErrNoLesson
	}

	var items []quiz.Pair
	switch kind {
	case quiz.KindFillBlank:
		items = quiz.TranslationPairs(lesson.Quiz.MiniTranslations)
	default:
		items = quiz.VocabPairs(lesson.Quiz.VocabMatching)
	}

	var reporter quiz.AttemptReporter
	if kind == quiz.KindVocabulary {
		reporter = &attemptReporter{svc: l, userID: userID}
	}

	session := quiz.NewSession(kind, items, quiz.VocabPairs(lesson.Vocabulary), lesson.SessionID, reporter, l.log)
	if err := session.Start(); err != nil {
		return nil, err
	}
	ls.SetActiveQuiz(session)
	return session, nil
}

// Progress fetches the user's per-language study stats.
func (l *LessonS) Progress(ctx context.Context, userID int64) ([]models.UserProgress, error) {
	token, err := l.bearer(ctx, userID)
	if err != nil {
		return nil, err
	}
	progress, err := l.api.UserProgress(ctx, token)
	if errors.Is(err, client.ErrSessionExpired) {
		l.clearToken(ctx, userID)
	}
	return progress, err
}

// Mistakes fetches past incorrect answers for the configured target
// language. The result is rendered and dropped, never cached.
func (l *LessonS) Mistakes(ctx context.Context, userID int64) ([]models.MistakeItem, error) {
	token, err := l.bearer(ctx, userID)
	if err != nil {
		return nil, err
	}
	mistakes, err := l.api.UserMistakes(ctx, token, l.target)
	if errors.Is(err, client.ErrSessionExpired) {
		l.clearToken(ctx, userID)
	}
	return mistakes, err
}

func (l *LessonS) bearer(ctx context.Context, userID int64) (string, error) {
	token, ok, err := l.tokens.Get(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to read token store: %w", err)
	}
	if !ok {
		return "", ErrAuthRequired
	}
	return token, nil
}

func (l *LessonS) clearToken(ctx context.Context, userID int64) {
	if err := l.tokens.Clear(ctx, userID); err != nil {
		l.log.Error("failed to clear expired token", zap.Int64("user_id", userID), zap.Error(err))
	}
}

// attemptReporter submits vocabulary quiz attempts on behalf of one user.
// Failures are the quiz session's problem to swallow, but an expired token
// is cleared here like on any other protected call.
type attemptReporter struct {
	svc    *LessonS
	userID int64
}

func (r *attemptReporter) ReportAttempt(ctx context.Context, attempt models.QuizAttempt) error {
	token, err := r.svc.bearer(ctx, r.userID)
	if err != nil {
		return err
	}
	_, err = r.svc.api.SubmitQuizAttempt(ctx, token, attempt)
	if errors.Is(err, client.ErrSessionExpired) {
		r.svc.clearToken(ctx, r.userID)
	}
	return err
}
