package handler

import (
	"wordtrainer/internal/middleware"
	"wordtrainer/internal/service"
	"wordtrainer/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Reply keyboard commands
const (
	cmdNext       = "Дальше ⏭"
	cmdAddWord    = "Добавить слово ➕"
	cmdDeleteWord = "Удалить слово 🔙"
)

const msgInternalError = "Произошла ошибка. Попробуйте позже."

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	wordService *service.WordService
	quizService *service.QuizService
	sessions    session.Store
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	wordService *service.WordService,
	quizService *service.QuizService,
	sessions session.Store,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		wordService: wordService,
		quizService: quizService,
		sessions:    sessions,
		logger:      logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)
}

// userID returns the internal user id resolved by the identity middleware
func (h *Handler) userID(c tele.Context) int64 {
	id, _ := c.Get(middleware.UserIDKey).(int64)
	return id
}

// sessionKey identifies the conversation of the current update
func (h *Handler) sessionKey(c tele.Context) session.Key {
	return session.Key{
		UserID: c.Sender().ID,
		ChatID: c.Chat().ID,
	}
}

// quizMarkup builds the answer keyboard: one option per row followed by
// the control buttons
func quizMarkup(options []string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}

	rows := make([]tele.Row, 0, len(options)+3)
	for _, opt := range options {
		rows = append(rows, markup.Row(markup.Text(opt)))
	}
	rows = append(rows,
		markup.Row(markup.Text(cmdNext)),
		markup.Row(markup.Text(cmdAddWord)),
		markup.Row(markup.Text(cmdDeleteWord)),
	)

	markup.Reply(rows...)
	return markup
}

// addWordMarkup is shown when the pool is too small to quiz on
func addWordMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(markup.Row(markup.Text(cmdAddWord)))
	return markup
}
