package bot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/linguapersonal/linguabot.git/internal/service"
	"github.com/linguapersonal/linguabot.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type AuthSI interface {
	Authenticated(ctx context.Context, userID int64) bool
	SubmitCredentials(ctx context.Context, userID int64, flow *service.AuthFlow) service.AuthOutcome
	SubmitVerification(ctx context.Context, userID int64, flow *service.AuthFlow, code string) service.AuthOutcome
	ResendCode(ctx context.Context, flow *service.AuthFlow) bool
	Logout(ctx context.Context, userID int64) error
}

type AuthT struct {
	bot     BotSender
	cache   *cache.Cache
	service AuthSI
}

func NewAuthTAPI(bot BotSender, cache *cache.Cache, service AuthSI) *AuthT {
	return &AuthT{
		bot:     bot,
		cache:   cache,
		service: service,
	}
}

func (t *AuthT) startAuth(message *tgbotapi.Message, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if t.service.Authenticated(ctx, userID) {
		msg := tgbotapi.NewMessage(message.Chat.ID, "✅ You are already logged in.")
		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			[]tgbotapi.InlineKeyboardButton{
				tgbotapi.NewInlineKeyboardButtonData("🚪 Log out", "auth_logout"),
			},
		)
		msg.ReplyMarkup = &keyboard
		sendMessage(t.bot, msg)
		return
	}

	flow := t.cache.AuthFlow(userID)
	t.cache.SetAwait(userID, cache.AwaitCredentials)
	t.sendCredentialsScreen(message.Chat.ID, flow)
}

func (t *AuthT) sendCredentialsScreen(chatID int64, flow *service.AuthFlow) {
	var text, toggleLabel string
	if flow.Mode() == service.ModeRegister {
		text = "📝 Registration.\n\nSend your email and password in one message, separated by a space:\n\n`you@example.com yourpassword`"
		toggleLabel = "🔐 I have an account"
	} else {
		text = "🔐 Login.\n\nSend your email and password in one message, separated by a space:\n\n`you@example.com yourpassword`"
		toggleLabel = "📝 Create an account"
	}
	if errMsg := flow.Err(); errMsg != "" {
		text = "❌ " + errMsg + "\n\n" + text
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(toggleLabel, "auth_toggle"),
		},
	)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *AuthT) handleCredentials(message *tgbotapi.Message, userID int64) {
	fields := strings.Fields(message.Text)
	if len(fields) != 2 {
		msg := tgbotapi.NewMessage(message.Chat.ID, "Please send exactly two values: your email and your password, separated by a space.")
		sendMessage(t.bot, msg)
		return
	}

	flow := t.cache.AuthFlow(userID)
	flow.SetCredentials(fields[0], fields[1])

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch t.service.SubmitCredentials(ctx, userID, flow) {
	case service.OutcomeAuthenticated:
		t.finishAuth(message.Chat.ID, userID)
	case service.OutcomePending2FA:
		t.cache.SetAwait(userID, cache.AwaitCode)
		t.sendVerificationScreen(message.Chat.ID, flow)
	default:
		t.sendCredentialsScreen(message.Chat.ID, flow)
	}
}

func (t *AuthT) sendVerificationScreen(chatID int64, flow *service.AuthFlow) {
	text := fmt.Sprintf("📧 A 6-digit verification code was sent to %s.\n\nType it here:", flow.Email())
	if errMsg := flow.Err(); errMsg != "" {
		text = "❌ " + errMsg + "\n\n" + text
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("🔄 Resend code", "auth_resend"),
			tgbotapi.NewInlineKeyboardButtonData("⏪ Back to login", "auth_back"),
		},
	)

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *AuthT) handleCode(message *tgbotapi.Message, userID int64) {
	flow := t.cache.AuthFlow(userID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch t.service.SubmitVerification(ctx, userID, flow, message.Text) {
	case service.OutcomeAuthenticated:
		t.finishAuth(message.Chat.ID, userID)
	default:
		t.sendVerificationScreen(message.Chat.ID, flow)
	}
}

func (t *AuthT) finishAuth(chatID, userID int64) {
	t.cache.DeleteAuthFlow(userID)
	t.cache.SetAwait(userID, cache.AwaitNone)

	msg := tgbotapi.NewMessage(chatID, "✅ You are logged in! Ask me for a lesson.")
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("✨ New lesson", "new_lesson"),
		},
	)
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *AuthT) handleLogout(message *tgbotapi.Message, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := t.service.Logout(ctx, userID); err != nil {
		log.Printf("Failed to log out user %d: %v", userID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Failed to log out. Try again.")
		sendMessage(t.bot, msg)
		return
	}

	t.cache.DeleteAuthFlow(userID)
	t.cache.SetAwait(userID, cache.AwaitNone)

	msg := tgbotapi.NewMessage(message.Chat.ID, "👋 Logged out. Your session is forgotten.")
	sendMessage(t.bot, msg)
}

func (t *AuthT) handleAuthCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}
	userID := query.From.ID
	chatID := query.Message.Chat.ID
	flow := t.cache.AuthFlow(userID)

	switch query.Data {
	case "auth_toggle":
		flow.ToggleMode()
		t.cache.SetAwait(userID, cache.AwaitCredentials)
		t.sendCredentialsScreen(chatID, flow)

	case "auth_back":
		flow.BackToCredentials()
		t.cache.SetAwait(userID, cache.AwaitCredentials)
		t.sendCredentialsScreen(chatID, flow)

	case "auth_resend":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if t.service.ResendCode(ctx, flow) {
			msg := tgbotapi.NewMessage(chatID, "📧 A new code is on its way.")
			sendMessage(t.bot, msg)
			return
		}
		if cooldown := flow.Cooldown(); cooldown > 0 {
			msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("⏳ Wait %d seconds before requesting another code.", cooldown))
			sendMessage(t.bot, msg)
			return
		}
		t.sendVerificationScreen(chatID, flow)

	case "auth_logout":
		t.handleLogout(query.Message, userID)

	default:
		log.Printf("Unknown callback data: %s", query.Data)
	}
}
