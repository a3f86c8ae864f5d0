package bot

import (
	"testing"

	mock_bot "github.com/linguapersonal/linguabot.git/internal/bot/mock"
	"github.com/linguapersonal/linguabot.git/internal/service"
	"github.com/linguapersonal/linguabot.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI, *mock_bot.MockBot)) (*AuthT, *cache.Cache, *mock_bot.MockBot) {
	mockService := mock_bot.NewMockServiceI(ctrl)
	cache := cache.NewCache()
	mockBot := &mock_bot.MockBot{}

	if setupMock != nil {
		setupMock(mockService, mockBot)
	}

	return NewAuthTAPI(mockBot, cache, mockService), cache, mockBot
}

func testMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: text,
		Chat: &tgbotapi.Chat{ID: 123},
		From: &tgbotapi.User{ID: 456},
	}
}

func sentText(t *testing.T, mb *mock_bot.MockBot, i int) string {
	t.Helper()
	require.Greater(t, len(mb.SentMessages), i)
	msg, ok := mb.SentMessages[i].(tgbotapi.MessageConfig)
	require.True(t, ok)
	return msg.Text
}

func TestAuthT_startAuth(t *testing.T) {
	t.Parallel()

	t.Run("shows login screen when logged out", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auth, c, mb := newAuthTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
			ms.EXPECT().Authenticated(gomock.Any(), int64(456)).Return(false)
		})

		auth.startAuth(testMessage(ButtonLogin), 456)

		assert.Contains(t, sentText(t, mb, 0), "🔐 Login.")
		assert.Equal(t, cache.AwaitCredentials, c.GetAwait(456))
	})

	t.Run("already logged in", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auth, c, mb := newAuthTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
			ms.EXPECT().Authenticated(gomock.Any(), int64(456)).Return(true)
		})

		auth.startAuth(testMessage(ButtonLogin), 456)

		assert.Contains(t, sentText(t, mb, 0), "already logged in")
		assert.Equal(t, cache.AwaitNone, c.GetAwait(456))
	})
}

func TestAuthT_handleCredentials(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		text      string
		f         func(*mock_bot.MockServiceI, *mock_bot.MockBot)
		wantText  string
		wantAwait cache.Await
	}{
		{
			name: "authenticated immediately",
			text: "ana@example.com secret123",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SubmitCredentials(gomock.Any(), int64(456), gomock.Any()).
					Return(service.OutcomeAuthenticated)
			},
			wantText:  "✅ You are logged in!",
			wantAwait: cache.AwaitNone,
		},
		{
			name: "verification code required",
			text: "ana@example.com secret123",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SubmitCredentials(gomock.Any(), int64(456), gomock.Any()).
					Return(service.OutcomePending2FA)
			},
			wantText:  "verification code",
			wantAwait: cache.AwaitCode,
		},
		{
			name: "failed attempt re-shows the form",
			text: "ana@example.com wrongpass",
			f: func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
				ms.EXPECT().SubmitCredentials(gomock.Any(), int64(456), gomock.Any()).
					Return(service.OutcomeFailed)
			},
			wantText:  "🔐 Login.",
			wantAwait: cache.AwaitCredentials,
		},
		{
			name:      "malformed input never reaches the service",
			text:      "just-an-email",
			f:         nil,
			wantText:  "exactly two values",
			wantAwait: cache.AwaitCredentials,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auth, c, mb := newAuthTMock(t, ctrl, tt.f)
			c.SetAwait(456, cache.AwaitCredentials)

			auth.handleCredentials(testMessage(tt.text), 456)

			assert.Contains(t, sentText(t, mb, 0), tt.wantText)
			assert.Equal(t, tt.wantAwait, c.GetAwait(456))
		})
	}
}

func TestAuthT_handleCode(t *testing.T) {
	t.Parallel()

	t.Run("valid code completes login", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auth, c, mb := newAuthTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
			ms.EXPECT().SubmitVerification(gomock.Any(), int64(456), gomock.Any(), "123456").
				Return(service.OutcomeAuthenticated)
		})
		c.SetAwait(456, cache.AwaitCode)

		auth.handleCode(testMessage("123456"), 456)

		assert.Contains(t, sentText(t, mb, 0), "✅ You are logged in!")
		assert.Equal(t, cache.AwaitNone, c.GetAwait(456))
	})

	t.Run("wrong code stays on verification", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auth, c, mb := newAuthTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
			ms.EXPECT().SubmitVerification(gomock.Any(), int64(456), gomock.Any(), "000000").
				Return(service.OutcomeFailed)
		})
		c.SetAwait(456, cache.AwaitCode)

		auth.handleCode(testMessage("000000"), 456)

		assert.Contains(t, sentText(t, mb, 0), "verification code")
		assert.Equal(t, cache.AwaitCode, c.GetAwait(456))
	})
}

func TestAuthT_handleLogout(t *testing.T) {
	t.Parallel()

	t.Run("clears session and state", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auth, c, mb := newAuthTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
			ms.EXPECT().Logout(gomock.Any(), int64(456)).Return(nil)
		})
		c.SetAwait(456, cache.AwaitCode)

		auth.handleLogout(testMessage(ButtonLogout), 456)

		assert.Contains(t, sentText(t, mb, 0), "Logged out")
		assert.Equal(t, cache.AwaitNone, c.GetAwait(456))
	})

	t.Run("store failure reported", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auth, _, mb := newAuthTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
			ms.EXPECT().Logout(gomock.Any(), int64(456)).Return(assert.AnError)
		})

		auth.handleLogout(testMessage(ButtonLogout), 456)

		assert.Contains(t, sentText(t, mb, 0), "Failed to log out")
	})
}

func TestAuthT_handleAuthCallbackQuery_resend(t *testing.T) {
	t.Parallel()

	query := &tgbotapi.CallbackQuery{
		ID:      "q1",
		Data:    "auth_resend",
		From:    &tgbotapi.User{ID: 456},
		Message: testMessage(""),
	}

	t.Run("code resent", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auth, _, mb := newAuthTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
			ms.EXPECT().ResendCode(gomock.Any(), gomock.Any()).Return(true)
		})

		auth.handleAuthCallbackQuery(query)

		assert.Contains(t, sentText(t, mb, 0), "new code is on its way")
	})

	t.Run("cooldown still running", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		auth, c, mb := newAuthTMock(t, ctrl, func(ms *mock_bot.MockServiceI, mb *mock_bot.MockBot) {
			ms.EXPECT().ResendCode(gomock.Any(), gomock.Any()).Return(false)
		})
		flow := c.AuthFlow(456)
		flow.StartCooldown(60)
		defer flow.Stop()

		auth.handleAuthCallbackQuery(query)

		assert.Contains(t, sentText(t, mb, 0), "Wait")
	})
}
