package repository

import (
	"wordtrainer/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	GetOrCreate(tgID int64, username, firstName string) (int64, error)
}

// WordRepository defines word data operations
type WordRepository interface {
	VisibleWords(userID int64) ([]domain.Word, error)
	CountVisible(userID int64) (int, error)
	AddUserWord(userID int64, ru, en string) (int64, error)
	HideGlobalWord(userID, wordID int64) error
	SoftDeleteUserWord(wordID, userID int64) error
}
