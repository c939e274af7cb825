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

// askQuestion builds the next quiz and shows it. When fewer than four
// usable words are available the user is asked to add words instead.
func (h *Handler) askQuestion(c tele.Context) error {
	userID := h.userID(c)
	key := h.sessionKey(c)

	words, err := h.wordService.Visible(userID)
	if err != nil {
		h.logger.Error("Failed to load visible words",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send(msgInternalError)
	}

	quiz, err := h.quizService.Build(words)
	if errors.Is(err, service.ErrNotEnoughWords) {
		h.sessions.Clear(key)
		return c.Send(
			"Сейчас доступно меньше 4 слов для тренировки.\n"+
				"Добавь новые слова («Добавить слово ➕») или верни скрытые, чтобы продолжить.",
			addWordMarkup(),
		)
	}
	if err != nil {
		h.logger.Error("Failed to build quiz",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Send(msgInternalError)
	}

	h.sessions.Set(key, &domain.Session{
		State: domain.StateAwaitingAnswer,
		Quiz:  quiz,
	})

	text := fmt.Sprintf("Выбери перевод слова:\n🇷🇺 <b>%s</b>", quiz.Ru)
	return c.Send(text, quizMarkup(quiz.Options))
}

// checkAnswer compares the reply with the held quiz's correct answer
func (h *Handler) checkAnswer(c tele.Context, quiz *domain.Quiz) error {
	answer := strings.TrimSpace(c.Text())

	if strings.EqualFold(answer, quiz.En) {
		text := fmt.Sprintf("Отлично! ❤️\n<b>%s</b> → <b>%s</b>", quiz.Ru, quiz.En)
		if err := c.Send(text); err != nil {
			return err
		}
		return h.askQuestion(c)
	}

	// Same prompt, same options, no reshuffle
	text := fmt.Sprintf("Допущена ошибка!\nПопробуй ещё раз вспомнить слово 🇷🇺 <b>%s</b>", quiz.Ru)
	return c.Send(text, quizMarkup(quiz.Options))
}

// deleteCurrentWord removes the quizzed word from the user's training set
// and moves on to the next question
func (h *Handler) deleteCurrentWord(c tele.Context) error {
	userID := h.userID(c)
	sess := h.sessions.Get(h.sessionKey(c))

	if sess.Quiz == nil {
		return c.Send("Нет активного слова для удаления. Нажми «Дальше ⏭».")
	}

	if err := h.wordService.DeleteQuizWord(userID, sess.Quiz); err != nil {
		h.logger.Error("Failed to delete word",
			zap.Int64("user_id", userID),
			zap.Int64("word_id", sess.Quiz.WordID),
			zap.String("source", string(sess.Quiz.Source)),
			zap.Error(err),
		)
		return c.Send(msgInternalError)
	}

	h.logger.Info("Word removed from training",
		zap.Int64("user_id", userID),
		zap.Int64("word_id", sess.Quiz.WordID),
		zap.String("source", string(sess.Quiz.Source)),
	)

	text := fmt.Sprintf("Слово <b>%s</b> → <b>%s</b> удалено из твоей тренировки.", sess.Quiz.Ru, sess.Quiz.En)
	if err := c.Send(text); err != nil {
		return err
	}

	return h.askQuestion(c)
}
