package testutil

import (
	"wordtrainer/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(id, tgID int64, username, firstName string) *domain.User {
	return &domain.User{
		ID:         id,
		TelegramID: tgID,
		Username:   username,
		FirstName:  firstName,
	}
}

// NewTestWord creates a test word
func NewTestWord(source domain.WordSource, id int64, ru, en string) domain.Word {
	return domain.Word{
		Source: source,
		ID:     id,
		Ru:     ru,
		En:     en,
	}
}

// NewTestPool creates the standard four-word visible set used across tests
func NewTestPool() []domain.Word {
	return []domain.Word{
		NewTestWord(domain.SourceGlobal, 1, "кошка", "cat"),
		NewTestWord(domain.SourceGlobal, 2, "собака", "dog"),
		NewTestWord(domain.SourceGlobal, 3, "дом", "house"),
		NewTestWord(domain.SourceUser, 4, "стол", "table"),
	}
}
