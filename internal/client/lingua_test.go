package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/linguapersonal/linguabot.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, handler http.HandlerFunc) *LinguaAPI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewLinguaAPI(srv.URL, 5*time.Second)
}

func validLessonBody() map[string]any {
	return map[string]any{
		"vocabulary":    []map[string]string{{"native": "hello", "target": "hola"}},
		"grammar_notes": "ser vs estar",
		"quiz": map[string]any{
			"vocab_matching":    []map[string]string{{"native": "hello", "target": "hola"}},
			"mini_translations": []map[string]string{{"native": "I want an apple", "target": "Quiero una manzana"}},
		},
		"session_id": 42,
	}
}

func TestLinguaAPI_Register(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/register", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "a@b.com", creds.Email)

		json.NewEncoder(w).Encode(models.Token{AccessToken: "tok", TokenType: "bearer"})
	})

	token, err := api.Register(context.Background(), models.Credentials{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "tok", token.AccessToken)
}

func TestLinguaAPI_LoginStep1_Requires2FA(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login-step1", r.URL.Path)
		json.NewEncoder(w).Encode(models.LoginStep1Response{
			Message:     "Verification code sent",
			Requires2FA: true,
		})
	})

	resp, err := api.LoginStep1(context.Background(), models.Credentials{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, resp.Requires2FA)
	assert.Empty(t, resp.AccessToken)
}

func TestLinguaAPI_LoginStep1_BadCredentials(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
	})

	_, err := api.LoginStep1(context.Background(), models.Credentials{Email: "a@b.com", Password: "nope"})
	require.Error(t, err)
	// An unauthenticated call never maps 401 to a session expiry.
	assert.NotErrorIs(t, err, ErrSessionExpired)
	assert.Equal(t, "Invalid email or password", err.Error())
}

func TestLinguaAPI_GenerateLesson(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var req models.LessonRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ordering food", req.UserPrompt)

		json.NewEncoder(w).Encode(validLessonBody())
	})

	lesson, err := api.GenerateLesson(context.Background(), "tok", models.LessonRequest{
		UserPrompt: "ordering food",
		TargetLang: "Spanish",
		NativeLang: "English",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), lesson.SessionID)
	require.Len(t, lesson.Vocabulary, 1)
	assert.Equal(t, "hola", lesson.Vocabulary[0].Target)
}

func TestLinguaAPI_GenerateLesson_Unauthorized(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := api.GenerateLesson(context.Background(), "stale", models.LessonRequest{UserPrompt: "x"})
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestLinguaAPI_GenerateLesson_MalformedPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing session_id", body: func() map[string]any {
			b := validLessonBody()
			delete(b, "session_id")
			return b
		}()},
		{name: "empty vocabulary", body: func() map[string]any {
			b := validLessonBody()
			b["vocabulary"] = []map[string]string{}
			return b
		}()},
		{name: "vocab item missing target", body: func() map[string]any {
			b := validLessonBody()
			b["vocabulary"] = []map[string]string{{"native": "hello"}}
			return b
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(tt.body)
			})

			_, err := api.GenerateLesson(context.Background(), "tok", models.LessonRequest{UserPrompt: "x"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "malformed lesson payload")
		})
	}
}

func TestLinguaAPI_GenerateLesson_ServerError(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "OpenAI unavailable", http.StatusBadGateway)
	})

	_, err := api.GenerateLesson(context.Background(), "tok", models.LessonRequest{UserPrompt: "x"})
	require.Error(t, err)
	assert.Equal(t, "OpenAI unavailable", err.Error())
}

func TestLinguaAPI_SubmitQuizAttempt(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/submit-quiz-attempt", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var attempt models.QuizAttempt
		require.NoError(t, json.NewDecoder(r.Body).Decode(&attempt))
		assert.Equal(t, int64(42), attempt.SessionID)

		json.NewEncoder(w).Encode(models.AttemptReceipt{Message: "Attempt recorded", IsCorrect: attempt.IsCorrect})
	})

	receipt, err := api.SubmitQuizAttempt(context.Background(), "tok", models.QuizAttempt{
		SessionID: 42, QuestionText: "hello", UserAnswer: "hola", CorrectAnswer: "hola", IsCorrect: true,
	})
	require.NoError(t, err)
	assert.True(t, receipt.IsCorrect)
}

func TestLinguaAPI_UserMistakes_LanguageFilter(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user-mistakes", r.URL.Path)
		assert.Equal(t, "Spanish", r.URL.Query().Get("language"))
		json.NewEncoder(w).Encode([]models.MistakeItem{
			{QuestionText: "hello", UserAnswer: "ola", CorrectAnswer: "hola", Language: "Spanish"},
		})
	})

	mistakes, err := api.UserMistakes(context.Background(), "tok", "Spanish")
	require.NoError(t, err)
	require.Len(t, mistakes, 1)
	assert.Equal(t, "hola", mistakes[0].CorrectAnswer)
}

func TestLinguaAPI_UserProgress(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user-progress", r.URL.Path)
		json.NewEncoder(w).Encode([]models.UserProgress{
			{Language: "Spanish", TotalQuestions: 10, CorrectAnswers: 7},
		})
	})

	progress, err := api.UserProgress(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, progress, 1)
	assert.Equal(t, 7, progress[0].CorrectAnswers)
}

func TestLinguaAPI_ResendCode(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/resend-verification-code", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body["email"])

		json.NewEncoder(w).Encode(map[string]string{"message": "sent"})
	})

	assert.NoError(t, api.ResendCode(context.Background(), "a@b.com"))
}
