package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/linguapersonal/linguabot.git/internal/quiz"
	"github.com/linguapersonal/linguabot.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Quiz questions always carry target-language text on one side; it is
// pronounced with this locale.
const pronounceLocale = "es-ES"

type QuizT struct {
	bot     BotSender
	cache   *cache.Cache
	service LessonSI
	speech  SpeechSI
}

func NewQuizTAPI(bot BotSender, cache *cache.Cache, service LessonSI, speech SpeechSI) *QuizT {
	return &QuizT{
		bot:     bot,
		cache:   cache,
		service: service,
		speech:  speech,
	}
}

func (t *QuizT) showQuizMenu(message *tgbotapi.Message, userID int64) {
	ls := t.cache.LessonSession(userID)
	if _, ok := ls.Lesson(); !ok {
		msg := tgbotapi.NewMessage(message.Chat.ID, "You need a lesson before you can quiz yourself.")
		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			[]tgbotapi.InlineKeyboardButton{
				tgbotapi.NewInlineKeyboardButtonData("✨ New lesson", "new_lesson"),
			},
		)
		msg.ReplyMarkup = &keyboard
		sendMessage(t.bot, msg)
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("🧠 Vocabulary", "quiz_vocab"),
			tgbotapi.NewInlineKeyboardButtonData("🔁 Reverse", "quiz_reverse"),
		},
		[]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("✍️ Fill in the blank", "quiz_blank"),
		},
	)

	msg := tgbotapi.NewMessage(message.Chat.ID, "🧠 Pick a quiz:")
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *QuizT) startQuiz(chatID, userID int64, kind quiz.Kind) {
	ls := t.cache.LessonSession(userID)

	session, err := t.service.StartQuiz(userID, ls, kind)
	if err != nil {
		log.Printf("Failed to start %s quiz for user %d: %v", kind, userID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Couldn't start the quiz. Generate a lesson first.")
		sendMessage(t.bot, msg)
		return
	}

	t.cache.SetAwait(userID, cache.AwaitAnswer)
	t.sendQuestion(chatID, session)
}

func (t *QuizT) sendQuestion(chatID int64, session *quiz.Session) {
	derived := session.Current()

	var text string
	switch session.Kind() {
	case quiz.KindFillBlank:
		text = fmt.Sprintf("✍️ Question %d of %d\n\nFill in the blank:\n\n*%s*", session.Index()+1, session.Total(), derived.Blanked)
	case quiz.KindReverse:
		text = fmt.Sprintf("🔁 Question %d of %d\n\nWhat does *%s* mean?", session.Index()+1, session.Total(), derived.Prompt)
	default:
		text = fmt.Sprintf("🧠 Question %d of %d\n\nTranslate: *%s*", session.Index()+1, session.Total(), derived.Prompt)
	}
	text += "\n\nType your answer:"

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "markdown"

	if t.speech != nil && session.Kind() != quiz.KindVocabulary {
		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			[]tgbotapi.InlineKeyboardButton{
				tgbotapi.NewInlineKeyboardButtonData("🔊 Listen", "say_word"),
			},
		)
		msg.ReplyMarkup = &keyboard
	}

	sendMessage(t.bot, msg)
}

func (t *QuizT) handleAnswer(message *tgbotapi.Message, userID int64) {
	session := t.cache.LessonSession(userID).ActiveQuiz()
	if session == nil {
		t.cache.SetAwait(userID, cache.AwaitNone)
		msg := tgbotapi.NewMessage(message.Chat.ID, "No quiz is running. Use the buttons below.")
		sendMessage(t.bot, msg)
		return
	}

	if err := session.UpdateAnswer(message.Text); err != nil {
		msg := tgbotapi.NewMessage(message.Chat.ID, "You already answered this one. Press Next.")
		sendMessage(t.bot, msg)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	correct, err := session.Reveal(ctx)
	if err != nil {
		if errors.Is(err, quiz.ErrBlankAnswer) {
			msg := tgbotapi.NewMessage(message.Chat.ID, "Type an answer first.")
			sendMessage(t.bot, msg)
			return
		}
		log.Printf("Failed to check answer for user %d: %v", userID, err)
		return
	}

	derived := session.Current()
	statusText := "✅ Correct!"
	if !correct {
		statusText = fmt.Sprintf("❌ Not quite. The answer is *%s*.", derived.Answer)
	}

	nextLabel := "➡️ Next"
	if session.Index() == session.Total()-1 {
		nextLabel = "🏁 Finish"
	}

	row := []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData(nextLabel, "quiz_next"),
	}
	if t.speech != nil {
		row = append([]tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("🔊 Listen", "say_word"),
		}, row...)
	}
	keyboard := tgbotapi.NewInlineKeyboardMarkup(row)

	msg := tgbotapi.NewMessage(message.Chat.ID, statusText)
	msg.ParseMode = "markdown"
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, msg)
}

func (t *QuizT) handleQuizCallbackQuery(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}
	userID := query.From.ID
	chatID := query.Message.Chat.ID

	switch query.Data {
	case "quiz_menu":
		t.showQuizMenu(query.Message, userID)
	case "quiz_vocab":
		t.startQuiz(chatID, userID, quiz.KindVocabulary)
	case "quiz_reverse":
		t.startQuiz(chatID, userID, quiz.KindReverse)
	case "quiz_blank":
		t.startQuiz(chatID, userID, quiz.KindFillBlank)
	case "quiz_next":
		t.advanceQuiz(chatID, userID)
	case "quiz_stop":
		t.cache.LessonSession(userID).AbandonQuiz()
		t.cache.SetAwait(userID, cache.AwaitNone)
		msg := tgbotapi.NewMessage(chatID, "Quiz abandoned.")
		sendMessage(t.bot, msg)
	case "say_word":
		t.pronounceCurrent(chatID, userID)
	default:
		log.Printf("Unknown callback data: %s", query.Data)
	}
}

func (t *QuizT) advanceQuiz(chatID, userID int64) {
	ls := t.cache.LessonSession(userID)
	session := ls.ActiveQuiz()
	if session == nil {
		t.cache.SetAwait(userID, cache.AwaitNone)
		msg := tgbotapi.NewMessage(chatID, "No quiz is running.")
		sendMessage(t.bot, msg)
		return
	}

	if err := session.Advance(); err != nil {
		msg := tgbotapi.NewMessage(chatID, "Answer this question first.")
		sendMessage(t.bot, msg)
		return
	}

	if session.State() == quiz.StateComplete {
		t.cache.SetAwait(userID, cache.AwaitNone)
		ls.AbandonQuiz()

		score := session.Score()
		text := fmt.Sprintf("🏁 Done! You scored *%d/%d*.", score.Correct, score.Total)

		keyboard := tgbotapi.NewInlineKeyboardMarkup(
			[]tgbotapi.InlineKeyboardButton{
				tgbotapi.NewInlineKeyboardButtonData("🧠 Another quiz", "quiz_menu"),
				tgbotapi.NewInlineKeyboardButtonData("🏠 Main menu", "main_menu"),
			},
		)

		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = "markdown"
		msg.ReplyMarkup = &keyboard

		sendMessage(t.bot, msg)
		return
	}

	t.sendQuestion(chatID, session)
}

// pronounceCurrent voices the target-language side of the current question
// as a voice note.
func (t *QuizT) pronounceCurrent(chatID, userID int64) {
	if t.speech == nil {
		msg := tgbotapi.NewMessage(chatID, "🔇 Audio is not available.")
		sendMessage(t.bot, msg)
		return
	}

	session := t.cache.LessonSession(userID).ActiveQuiz()
	if session == nil {
		return
	}

	derived := session.Current()
	var text string
	switch session.Kind() {
	case quiz.KindReverse:
		text = derived.Prompt
	case quiz.KindFillBlank:
		text = derived.Sentence
	default:
		text = derived.Answer
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	audio, err := t.speech.Synthesize(ctx, text, pronounceLocale)
	if err != nil {
		log.Printf("Failed to synthesize %q for user %d: %v", text, userID, err)
		msg := tgbotapi.NewMessage(chatID, "🔇 Couldn't generate audio right now.")
		sendMessage(t.bot, msg)
		return
	}

	voice := tgbotapi.NewVoice(chatID, tgbotapi.FileBytes{Name: "word.ogg", Bytes: audio})
	sendMessage(t.bot, voice)
}
