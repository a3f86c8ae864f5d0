package service

import (
	"context"

	"github.com/linguapersonal/linguabot.git/internal/models"
	"go.uber.org/zap"
)

type AuthAPII interface {
	Register(ctx context.Context, creds models.Credentials) (models.Token, error)
	LoginStep1(ctx context.Context, creds models.Credentials) (models.LoginStep1Response, error)
	LoginStep2(ctx context.Context, req models.VerifyCodeRequest) (models.Token, error)
	ResendCode(ctx context.Context, email string) error
}

type LessonAPII interface {
	GenerateLesson(ctx context.Context, token string, req models.LessonRequest) (models.GeneratedLesson, error)
	SubmitQuizAttempt(ctx context.Context, token string, attempt models.QuizAttempt) (models.AttemptReceipt, error)
	UserProgress(ctx context.Context, token string) ([]models.UserProgress, error)
	UserMistakes(ctx context.Context, token, language string) ([]models.MistakeItem, error)
}

type APII interface {
	AuthAPII
	LessonAPII
}

type TokenStoreI interface {
	Get(ctx context.Context, userID int64) (string, bool, error)
	Set(ctx context.Context, userID int64, token string) error
	Clear(ctx context.Context, userID int64) error
}

type Service struct {
	*AuthS
	*LessonS
}

func InitServices(api APII, tokens TokenStoreI, targetLang, nativeLang string, log *zap.Logger) *Service {
	return &Service{
		AuthS:   NewAuthService(api, tokens, log),
		LessonS: NewLessonService(api, tokens, targetLang, nativeLang, log),
	}
}
