package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const welcome = "Привет 👋 Давай попрактикуемся в английском языке. " +
	"Тренировки можешь проходить в удобном для себя темпе.\n\n" +
	"У тебя есть возможность использовать тренажёр, как конструктор, " +
	"и собирать свою собственную базу для обучения.\n" +
	"Для этого воспользуйся инструментами:\n\n" +
	"добавить слово ➕,\n" +
	"удалить слово 🔙.\n\n" +
	"Ну что, начнём ⬇️"

// handleStart handles /start command: greet and immediately show the
// first question
func (h *Handler) handleStart(c tele.Context) error {
	h.logger.Info("User started bot",
		zap.Int64("user_id", h.userID(c)),
		zap.String("username", c.Sender().Username),
	)

	if err := c.Send(welcome); err != nil {
		return err
	}

	return h.askQuestion(c)
}
