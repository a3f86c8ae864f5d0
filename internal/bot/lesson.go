package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/linguapersonal/linguabot.git/internal/client"
	"github.com/linguapersonal/linguabot.git/internal/models"
	"github.com/linguapersonal/linguabot.git/internal/quiz"
	"github.com/linguapersonal/linguabot.git/internal/service"
	"github.com/linguapersonal/linguabot.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const mistakesPageSize = 5

type LessonSI interface {
	Generate(ctx context.Context, userID int64, ls *service.LessonSession, prompt string) error
	StartQuiz(userID int64, ls *service.LessonSession, kind quiz.Kind) (*quiz.Session, error)
	Progress(ctx context.Context, userID int64) ([]models.UserProgress, error)
	Mistakes(ctx context.Context, userID int64) ([]models.MistakeItem, error)
}

type LessonT struct {
	bot     BotSender
	cache   *cache.Cache
	service LessonSI
}

func NewLessonTAPI(bot BotSender, cache *cache.Cache, service LessonSI) *LessonT {
	return &LessonT{
		bot:     bot,
		cache:   cache,
		service: service,
	}
}

func (t *LessonT) promptNewLesson(message *tgbotapi.Message, userID int64) {
	t.cache.SetAwait(userID, cache.AwaitPrompt)

	text := "✨ What would you like to learn about?\n\n" +
		"Describe a situation or topic, for example:\n" +
		"`ordering food at a restaurant`"

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)
}

func (t *LessonT) handlePrompt(message *tgbotapi.Message, userID int64) {
	if !t.cache.TryBeginGenerate(userID) {
		msg := tgbotapi.NewMessage(message.Chat.ID, "⏳ I'm still working on your previous lesson, hang on.")
		sendMessage(t.bot, msg)
		return
	}
	defer t.cache.EndGenerate(userID)

	sendMessage(t.bot, tgbotapi.NewMessage(message.Chat.ID, "⏳ Generating your lesson, this can take a minute..."))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ls := t.cache.LessonSession(userID)
	err := t.service.Generate(ctx, userID, ls, message.Text)
	switch {
	case err == nil:
		t.cache.SetAwait(userID, cache.AwaitNone)
		t.sendLessonView(message.Chat.ID, ls)

	case errors.Is(err, service.ErrEmptyPrompt):
		msg := tgbotapi.NewMessage(message.Chat.ID, "Please describe what you'd like to learn about.")
		sendMessage(t.bot, msg)

	case errors.Is(err, service.ErrAuthRequired), errors.Is(err, client.ErrSessionExpired):
		t.cache.SetAwait(userID, cache.AwaitNone)
		msg := tgbotapi.NewMessage(message.Chat.ID, "🔐 Your session has ended. Log in and try again.")
		sendMessage(t.bot, msg)

	case errors.Is(err, service.ErrStaleResponse):
		log.Printf("Discarded stale lesson for user %d", userID)

	default:
		log.Printf("Failed to generate lesson for user %d: %v", userID, err)
		msg := tgbotapi.NewMessage(message.Chat.ID, "❌ Lesson generation failed. Try again later.")
		sendMessage(t.bot, msg)
	}
}

func (t *LessonT) showLesson(message *tgbotapi.Message, userID int64) {
	ls := t.cache.LessonSession(userID)
	if _, ok := ls.Lesson(); !ok {
		msg := tgbotapi.NewMessage(message.Chat.ID, "You don't have a lesson yet. Ask me for one!")
		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			[]tgbotapi.InlineKeyboardButton{
				tgbotapi.NewInlineKeyboardButtonData("✨ New lesson", "new_lesson"),
			},
		)
		msg.ReplyMarkup = &keyboard
		sendMessage(t.bot, msg)
		return
	}
	t.sendLessonView(message.Chat.ID, ls)
}

func (t *LessonT) sendLessonView(chatID int64, ls *service.LessonSession) {
	lesson, ok := ls.Lesson()
	if !ok {
		return
	}

	var b strings.Builder
	b.WriteString("📖 *Vocabulary*\n\n")
	for _, item := range lesson.Vocabulary {
		fmt.Fprintf(&b, "• %s — *%s*\n", item.Native, item.Target)
	}
	if lesson.GrammarNotes != "" {
		b.WriteString("\n✏️ *Grammar notes*\n\n")
		b.WriteString(lesson.GrammarNotes)
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("🧠 Quiz me", "quiz_menu"),
			tgbotapi.NewInlineKeyboardButtonData("✨ New lesson", "new_lesson"),
		},
	)

	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *LessonT) sendProgress(message *tgbotapi.Message, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	progress, err := t.service.Progress(ctx, userID)
	if err != nil {
		t.sendFetchError(message.Chat.ID, userID, "progress", err)
		return
	}

	if len(progress) == 0 {
		msg := tgbotapi.NewMessage(message.Chat.ID, "📊 No progress yet. Finish a vocabulary quiz first!")
		sendMessage(t.bot, msg)
		return
	}

	var b strings.Builder
	b.WriteString("📊 *Your progress*\n\n")
	for _, p := range progress {
		pct := 0
		if p.TotalQuestions > 0 {
			pct = p.CorrectAnswers * 100 / p.TotalQuestions
		}
		fmt.Fprintf(&b, "• %s: %d/%d correct (%d%%)\n", p.Language, p.CorrectAnswers, p.TotalQuestions, pct)
		if p.LastStudied != "" {
			fmt.Fprintf(&b, "  last studied %s\n", p.LastStudied)
		}
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, b.String())
	msg.ParseMode = "markdown"
	sendMessage(t.bot, msg)
}

func (t *LessonT) sendMistakes(message *tgbotapi.Message, userID int64, page int) {
	text, hasNext, err := t.mistakesPage(userID, page)
	if err != nil {
		t.sendFetchError(message.Chat.ID, userID, "mistakes", err)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ParseMode = "markdown"
	if keyboard := mistakesPaginationKeyboard(page, hasNext); keyboard != nil {
		msg.ReplyMarkup = keyboard
	}
	sendMessage(t.bot, msg)
}

func (t *LessonT) handleMistakesPagination(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		log.Printf("CallbackQuery without message from user %d", query.From.ID)
		return
	}
	parts := strings.Split(query.Data, "_")
	if len(parts) < 2 {
		return
	}
	page, err := strconv.Atoi(parts[1])
	if err != nil || page < 0 {
		msg := tgbotapi.NewMessage(query.Message.Chat.ID, "❌ Bad page number.")
		sendMessage(t.bot, msg)
		return
	}

	text, hasNext, err := t.mistakesPage(query.From.ID, page)
	if err != nil {
		t.sendFetchError(query.Message.Chat.ID, query.From.ID, "mistakes", err)
		return
	}

	editMsg := tgbotapi.NewEditMessageText(
		query.Message.Chat.ID,
		query.Message.MessageID,
		text,
	)
	editMsg.ParseMode = "markdown"
	if keyboard := mistakesPaginationKeyboard(page, hasNext); keyboard != nil {
		editMsg.ReplyMarkup = keyboard
	}
	sendMessage(t.bot, editMsg)
}

func (t *LessonT) mistakesPage(userID int64, page int) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mistakes, err := t.service.Mistakes(ctx, userID)
	if err != nil {
		return "", false, err
	}

	if len(mistakes) == 0 {
		return "❗ No mistakes recorded. Either you're perfect or you haven't quizzed yet.", false, nil
	}

	start := page * mistakesPageSize
	if start >= len(mistakes) {
		start = 0
		page = 0
	}
	end := start + mistakesPageSize
	if end > len(mistakes) {
		end = len(mistakes)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "❗ *Your mistakes* (page %d)\n\n", page+1)
	for _, m := range mistakes[start:end] {
		fmt.Fprintf(&b, "• %s\n  you said: %s\n  correct: *%s*\n", m.QuestionText, m.UserAnswer, m.CorrectAnswer)
	}

	return b.String(), end < len(mistakes), nil
}

func mistakesPaginationKeyboard(page int, hasNext bool) *tgbotapi.InlineKeyboardMarkup {
	var row []tgbotapi.InlineKeyboardButton
	if page > 0 {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("⬅️", "m_"+strconv.Itoa(page-1)))
	}
	if hasNext {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("➡️", "m_"+strconv.Itoa(page+1)))
	}
	if len(row) == 0 {
		return nil
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(row)
	return &keyboard
}

func (t *LessonT) sendFetchError(chatID, userID int64, what string, err error) {
	if errors.Is(err, service.ErrAuthRequired) || errors.Is(err, client.ErrSessionExpired) {
		msg := tgbotapi.NewMessage(chatID, "🔐 Your session has ended. Log in and try again.")
		sendMessage(t.bot, msg)
		return
	}
	log.Printf("Failed to load %s for user %d: %v", what, userID, err)
	msg := tgbotapi.NewMessage(chatID, "❌ Failed to load your "+what+". Try again later.")
	sendMessage(t.bot, msg)
}
