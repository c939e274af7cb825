package handler

import (
	"errors"
	"fmt"
	"strings"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText routes all text messages based on the conversation state
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /), /start has its own handler
	if strings.HasPrefix(text, "/") {
		return nil
	}

	switch text {
	case cmdNext:
		return h.askQuestion(c)
	case cmdAddWord:
		return h.promptAddWord(c)
	case cmdDeleteWord:
		return h.deleteCurrentWord(c)
	}

	sess := h.sessions.Get(h.sessionKey(c))

	switch sess.State {
	case domain.StateAddingWord:
		return h.saveWordPair(c, text)
	case domain.StateAwaitingAnswer:
		if sess.Quiz != nil {
			return h.checkAnswer(c, sess.Quiz)
		}
	}

	// No held quiz and no command: recover by asking a question
	return h.askQuestion(c)
}

// promptAddWord switches the conversation into word-submission mode. The
// held quiz (if any) is kept so deletion still has a target afterwards.
func (h *Handler) promptAddWord(c tele.Context) error {
	key := h.sessionKey(c)
	sess := h.sessions.Get(key)

	h.sessions.Set(key, &domain.Session{
		State: domain.StateAddingWord,
		Quiz:  sess.Quiz,
	})

	return c.Send(
		"Отправь слово в формате:\n" +
			"• <b>ru - en</b> (например: <i>кошка - cat</i>) или\n" +
			"• <b>en - ru</b> (например: <i>cat - кошка</i>).",
	)
}

// saveWordPair parses and stores a submitted pair, then shows the next
// question. A malformed pair keeps the conversation in submission mode.
func (h *Handler) saveWordPair(c tele.Context, text string) error {
	userID := h.userID(c)

	word, total, err := h.wordService.AddPair(userID, text)
	if errors.Is(err, service.ErrNoSeparator) {
		return c.Send("Нужен формат: ru - en или en - ru")
	}
	if err != nil {
		h.logger.Error("Failed to save word pair",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send(msgInternalError)
	}

	h.logger.Info("Word pair saved",
		zap.Int64("user_id", userID),
		zap.String("ru", word.Ru),
		zap.String("en", word.En),
	)

	text = fmt.Sprintf(
		"Добавлено: <b>%s</b> → <b>%s</b>\nТеперь у тебя <b>%d</b> слов(а) для тренировки.",
		word.Ru, word.En, total,
	)
	if err := c.Send(text); err != nil {
		return err
	}

	return h.askQuestion(c)
}
