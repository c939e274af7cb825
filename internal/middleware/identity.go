package middleware

import (
	"wordtrainer/internal/repository"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// UserIDKey is the context key under which Identity stores the internal user id
const UserIDKey = "user_id"

// Identity resolves the internal user id for every update, creating the
// user row on first contact, and stores the id in the telebot context.
func Identity(users repository.UserRepository, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				// Nothing to key a conversation on, drop the update
				return nil
			}

			id, err := users.GetOrCreate(sender.ID, sender.Username, sender.FirstName)
			if err != nil {
				logger.Error("Failed to resolve user",
					zap.Int64("tg_id", sender.ID),
					zap.Error(err),
				)
				return c.Send("Произошла ошибка. Попробуйте позже.")
			}

			c.Set(UserIDKey, id)
			return next(c)
		}
	}
}
