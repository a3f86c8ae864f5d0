package bot

import (
	"log"
	"strings"

	"github.com/linguapersonal/linguabot.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	ButtonNewLesson = "✨ New lesson"
	ButtonLesson    = "📖 Current lesson"
	ButtonQuizzes   = "🧠 Quizzes"
	ButtonProgress  = "📊 My progress"
	ButtonMistakes  = "❗ My mistakes"
	ButtonLogin     = "🔐 Log in"
	ButtonLogout    = "🚪 Log out"
	ButtonMainMenu  = "🏠 Main menu"
	ButtonBack      = "⏪ Back"
	ButtonHelp      = "ℹ️ Help"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "logout":
		if message.From == nil {
			log.Printf("Message without sender: %d", message.Chat.ID)
			return
		}
		t.auth.handleLogout(message, message.From.ID)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Try /start")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "🤖 Hi! I build personal language lessons from whatever you want to talk about.\n\n" +
		"✨ What I can do:\n" +
		"• 📖 Generate a lesson from your own prompt\n" +
		"• 🧠 Quiz you on the new vocabulary\n" +
		"• 📊 Track your progress\n" +
		"• ❗ Collect your mistakes for review\n\n" +
		"Log in first, then ask me for a lesson!"

	keyboard := t.generateMenuKeyboard()

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) showMainMenu(message *tgbotapi.Message) {
	keyboard := t.generateMenuKeyboard()

	msg := tgbotapi.NewMessage(message.Chat.ID, "🏠 Main menu:")
	msg.ReplyMarkup = keyboard

	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonNewLesson),
			tgbotapi.NewKeyboardButton(ButtonLesson),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonQuizzes),
			tgbotapi.NewKeyboardButton(ButtonProgress),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonMistakes),
			tgbotapi.NewKeyboardButton(ButtonLogin),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Available commands:
/start — start the bot
/help — this message
/logout — forget your session

🎯 Use the buttons:
• "New lesson" — describe a topic and get a lesson
• "Current lesson" — reread the loaded lesson
• "Quizzes" — test yourself on the lesson
• "My progress" — your per-language stats
• "My mistakes" — past wrong answers to review
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}
	userID := message.From.ID
	text := message.Text

	// Menu buttons win over pending input so users are never stuck in a
	// prompt they can't leave.
	switch text {
	case ButtonNewLesson:
		t.lesson.promptNewLesson(message, userID)
		return
	case ButtonLesson:
		t.lesson.showLesson(message, userID)
		return
	case ButtonQuizzes:
		t.quiz.showQuizMenu(message, userID)
		return
	case ButtonProgress:
		t.lesson.sendProgress(message, userID)
		return
	case ButtonMistakes:
		t.lesson.sendMistakes(message, userID, 0)
		return
	case ButtonLogin:
		t.auth.startAuth(message, userID)
		return
	case ButtonLogout:
		t.auth.handleLogout(message, userID)
		return
	case ButtonMainMenu, ButtonBack:
		t.quiz.cache.SetAwait(userID, cache.AwaitNone)
		t.showMainMenu(message)
		return
	case ButtonHelp:
		t.handleHelpCommand(message)
		return
	}

	switch t.quiz.cache.GetAwait(userID) {
	case cache.AwaitCredentials:
		t.auth.handleCredentials(message, userID)
	case cache.AwaitCode:
		t.auth.handleCode(message, userID)
	case cache.AwaitPrompt:
		t.lesson.handlePrompt(message, userID)
	case cache.AwaitAnswer:
		t.quiz.handleAnswer(message, userID)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "I didn't get that. Use the buttons below.")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}

	data := query.Data

	switch {
	case strings.HasPrefix(data, "auth_"):
		t.auth.handleAuthCallbackQuery(query)

	case strings.HasPrefix(data, "quiz_") || strings.HasPrefix(data, "say_"):
		t.quiz.handleQuizCallbackQuery(query)

	case strings.HasPrefix(data, "m_"):
		t.lesson.handleMistakesPagination(query)

	case data == "new_lesson":
		if query.Message == nil {
			log.Printf("CallbackQuery without message: %v", query.ID)
			return
		}
		t.lesson.promptNewLesson(query.Message, query.From.ID)

	case data == "main_menu":
		if query.Message == nil {
			log.Printf("CallbackQuery without message: %v", query.ID)
			return
		}
		t.quiz.cache.SetAwait(query.From.ID, cache.AwaitNone)
		t.showMainMenu(query.Message)

	default:
		log.Printf("Unknown callback data: %s from user %d", data, query.From.ID)
	}
}
