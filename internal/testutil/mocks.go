package testutil

import (
	"wordtrainer/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetOrCreate(tgID int64, username, firstName string) (int64, error) {
	args := m.Called(tgID, username, firstName)
	return args.Get(0).(int64), args.Error(1)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) VisibleWords(userID int64) ([]domain.Word, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) CountVisible(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockWordRepository) AddUserWord(userID int64, ru, en string) (int64, error) {
	args := m.Called(userID, ru, en)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWordRepository) HideGlobalWord(userID, wordID int64) error {
	args := m.Called(userID, wordID)
	return args.Error(0)
}

func (m *MockWordRepository) SoftDeleteUserWord(wordID, userID int64) error {
	args := m.Called(wordID, userID)
	return args.Error(0)
}
