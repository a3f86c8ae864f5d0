package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/linguapersonal/linguabot.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingReporter struct {
	attempts []models.QuizAttempt
	err      error
}

func (r *recordingReporter) ReportAttempt(_ context.Context, attempt models.QuizAttempt) error {
	r.attempts = append(r.attempts, attempt)
	return r.err
}

func testItems() []Pair {
	return []Pair{
		{Native: "hello", Target: "hola"},
		{Native: "goodbye", Target: "adiós"},
	}
}

func TestSession_Start(t *testing.T) {
	t.Parallel()

	s := NewSession(KindVocabulary, testItems(), nil, 1, nil, nil)
	assert.Equal(t, StateNotStarted, s.State())

	require.NoError(t, s.Start())
	assert.Equal(t, StateInProgress, s.State())
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 2, s.Total())
	assert.False(t, s.Revealed())
	assert.Equal(t, "", s.CurrentAnswer())

	assert.Error(t, s.Start())
}

func TestSession_StartEmpty(t *testing.T) {
	t.Parallel()

	s := NewSession(KindVocabulary, nil, nil, 1, nil, nil)
	assert.Error(t, s.Start())
}

func TestSession_RevealRequiresAnswer(t *testing.T) {
	t.Parallel()

	s := NewSession(KindVocabulary, testItems(), nil, 1, nil, nil)
	require.NoError(t, s.Start())

	_, err := s.Reveal(context.Background())
	assert.ErrorIs(t, err, ErrBlankAnswer)

	require.NoError(t, s.UpdateAnswer("   "))
	_, err = s.Reveal(context.Background())
	assert.ErrorIs(t, err, ErrBlankAnswer)
}

func TestSession_AdvanceRequiresReveal(t *testing.T) {
	t.Parallel()

	s := NewSession(KindVocabulary, testItems(), nil, 1, nil, nil)
	require.NoError(t, s.Start())
	require.NoError(t, s.UpdateAnswer("hola"))

	assert.ErrorIs(t, s.Advance(), ErrNotRevealed)
}

func TestSession_AnswerLockedAfterReveal(t *testing.T) {
	t.Parallel()

	s := NewSession(KindReverse, testItems(), nil, 1, nil, nil)
	require.NoError(t, s.Start())
	require.NoError(t, s.UpdateAnswer("hello"))

	correct, err := s.Reveal(context.Background())
	require.NoError(t, err)
	assert.True(t, correct)

	assert.ErrorIs(t, s.UpdateAnswer("something else"), ErrAnswerLocked)
	_, err = s.Reveal(context.Background())
	assert.ErrorIs(t, err, ErrAnswerLocked)
}

func TestSession_FullRun(t *testing.T) {
	t.Parallel()

	reporter := &recordingReporter{}
	s := NewSession(KindVocabulary, testItems(), nil, 42, reporter, nil)
	require.NoError(t, s.Start())

	require.NoError(t, s.UpdateAnswer(" HOLA "))
	correct, err := s.Reveal(context.Background())
	require.NoError(t, err)
	assert.True(t, correct)
	require.NoError(t, s.Advance())
	assert.Equal(t, 1, s.Index())
	assert.False(t, s.Revealed())

	require.NoError(t, s.UpdateAnswer("wrong"))
	correct, err = s.Reveal(context.Background())
	require.NoError(t, err)
	assert.False(t, correct)
	require.NoError(t, s.Advance())

	assert.Equal(t, StateComplete, s.State())
	assert.Equal(t, Score{Correct: 1, Total: 2}, s.Score())

	require.Len(t, reporter.attempts, 2)
	assert.Equal(t, models.QuizAttempt{
		SessionID:     42,
		QuestionText:  "hello",
		UserAnswer:    " HOLA ",
		CorrectAnswer: "hola",
		IsCorrect:     true,
	}, reporter.attempts[0])
	assert.Equal(t, "wrong", reporter.attempts[1].UserAnswer)
	assert.False(t, reporter.attempts[1].IsCorrect)

	assert.ErrorIs(t, s.Advance(), ErrNotInProgress)
	assert.ErrorIs(t, s.UpdateAnswer("x"), ErrNotInProgress)
}

func TestSession_ReportingErrorSwallowed(t *testing.T) {
	t.Parallel()

	reporter := &recordingReporter{err: errors.New("backend down")}
	s := NewSession(KindVocabulary, testItems(), nil, 42, reporter, nil)
	require.NoError(t, s.Start())
	require.NoError(t, s.UpdateAnswer("hola"))

	correct, err := s.Reveal(context.Background())
	require.NoError(t, err)
	assert.True(t, correct)
	assert.True(t, s.Revealed())
	require.NoError(t, s.Advance())
}

func TestSession_NonVocabularyDoesNotReport(t *testing.T) {
	t.Parallel()

	reporter := &recordingReporter{}
	for _, kind := range []Kind{KindReverse, KindFillBlank} {
		s := NewSession(kind, testItems(), nil, 42, reporter, nil)
		require.NoError(t, s.Start())
		require.NoError(t, s.UpdateAnswer("whatever"))
		_, err := s.Reveal(context.Background())
		require.NoError(t, err)
	}
	assert.Empty(t, reporter.attempts)
}

func TestSession_FillBlankRun(t *testing.T) {
	t.Parallel()

	items := []Pair{{Native: "I want an apple", Target: "Quiero una manzana"}}
	vocab := []Pair{{Native: "apple", Target: "manzana"}}

	s := NewSession(KindFillBlank, items, vocab, 7, nil, nil)
	require.NoError(t, s.Start())

	d := s.Current()
	assert.Equal(t, "Quiero una ___", d.Blanked)
	assert.Equal(t, "manzana", d.Answer)

	require.NoError(t, s.UpdateAnswer("Manzana"))
	correct, err := s.Reveal(context.Background())
	require.NoError(t, err)
	assert.True(t, correct)

	require.NoError(t, s.Advance())
	assert.Equal(t, StateComplete, s.State())
	assert.Equal(t, Score{Correct: 1, Total: 1}, s.Score())
}
