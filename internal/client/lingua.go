package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/linguapersonal/linguabot.git/internal/models"
	"github.com/linguapersonal/linguabot.git/pkg/validator"
)

// ErrSessionExpired is returned when a protected call comes back 401. The
// caller owns clearing the stored token.
var ErrSessionExpired = errors.New("session expired, please log in again")

// LinguaAPI is the HTTP client for the LinguaPersonal lesson backend.
type LinguaAPI struct {
	baseURL string
	httpc   *http.Client
}

func NewLinguaAPI(baseURL string, timeout time.Duration) *LinguaAPI {
	return &LinguaAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *LinguaAPI) Register(ctx context.Context, creds models.Credentials) (models.Token, error) {
	var token models.Token
	if err := c.do(ctx, http.MethodPost, "/register", "", nil, creds, &token); err != nil {
		return models.Token{}, err
	}
	return token, nil
}

func (c *LinguaAPI) LoginStep1(ctx context.Context, creds models.Credentials) (models.LoginStep1Response, error) {
	var resp models.LoginStep1Response
	if err := c.do(ctx, http.MethodPost, "/login-step1", "", nil, creds, &resp); err != nil {
		return models.LoginStep1Response{}, err
	}
	return resp, nil
}

func (c *LinguaAPI) LoginStep2(ctx context.Context, req models.VerifyCodeRequest) (models.Token, error) {
	var token models.Token
	if err := c.do(ctx, http.MethodPost, "/login-step2", "", nil, req, &token); err != nil {
		return models.Token{}, err
	}
	return token, nil
}

func (c *LinguaAPI) ResendCode(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, http.MethodPost, "/resend-verification-code", "", nil, body, nil)
}

// GenerateLesson requests a fresh lesson. The payload is validated before it
// is returned; a malformed lesson is surfaced as an error instead of being
// trusted downstream.
func (c *LinguaAPI) GenerateLesson(ctx context.Context, token string, req models.LessonRequest) (models.GeneratedLesson, error) {
	var lesson models.GeneratedLesson
	if err := c.do(ctx, http.MethodPost, "/generate-lesson", token, nil, req, &lesson); err != nil {
		return models.GeneratedLesson{}, err
	}
	if err := validator.ValidateStruct(lesson); err != nil {
		return models.GeneratedLesson{}, fmt.Errorf("malformed lesson payload: %w", err)
	}
	return lesson, nil
}

func (c *LinguaAPI) SubmitQuizAttempt(ctx context.Context, token string, attempt models.QuizAttempt) (models.AttemptReceipt, error) {
	var receipt models.AttemptReceipt
	if err := c.do(ctx, http.MethodPost, "/submit-quiz-attempt", token, nil, attempt, &receipt); err != nil {
		return models.AttemptReceipt{}, err
	}
	return receipt, nil
}

func (c *LinguaAPI) UserProgress(ctx context.Context, token string) ([]models.UserProgress, error) {
	var progress []models.UserProgress
	if err := c.do(ctx, http.MethodGet, "/user-progress", token, nil, nil, &progress); err != nil {
		return nil, err
	}
	return progress, nil
}

func (c *LinguaAPI) UserMistakes(ctx context.Context, token, language string) ([]models.MistakeItem, error) {
	var query url.Values
	if language != "" {
		query = url.Values{"language": []string{language}}
	}
	var mistakes []models.MistakeItem
	if err := c.do(ctx, http.MethodGet, "/user-mistakes", token, query, nil, &mistakes); err != nil {
		return nil, err
	}
	return mistakes, nil
}

func (c *LinguaAPI) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", "", nil, nil, nil)
}

func (c *LinguaAPI) do(ctx context.Context, method, path, token string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && token != "" {
		io.Copy(io.Discard, resp.Body)
		return ErrSessionExpired
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		msg := strings.TrimSpace(string(b))
		if msg == "" {
			msg = resp.Status
		}
		return errors.New(msg)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
