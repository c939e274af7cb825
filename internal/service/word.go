package service

import (
	"errors"
	"strings"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/repository"
)

// ErrNoSeparator is returned when a submitted word pair has no "-" between
// the word and its translation, or one of the sides is empty
var ErrNoSeparator = errors.New("word pair must contain a word and a translation separated by \"-\"")

// WordService handles word-related business logic
type WordService struct {
	wordRepo   repository.WordRepository
	classifier Classifier
}

// NewWordService creates a new word service
func NewWordService(wordRepo repository.WordRepository, classifier Classifier) *WordService {
	return &WordService{
		wordRepo:   wordRepo,
		classifier: classifier,
	}
}

// Visible returns the user's visible word set
func (s *WordService) Visible(userID int64) ([]domain.Word, error) {
	return s.wordRepo.VisibleWords(userID)
}

// CountVisible returns the size of the user's visible word set
func (s *WordService) CountVisible(userID int64) (int, error) {
	return s.wordRepo.CountVisible(userID)
}

// AddPair parses raw text as "слово - перевод" (either side may be either
// language), stores the pair and returns the stored word together with the
// user's new visible word count. The split happens on the first "-" only,
// so translations containing dashes survive.
func (s *WordService) AddPair(userID int64, raw string) (*domain.Word, int, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(raw), "-")
	if !ok {
		return nil, 0, ErrNoSeparator
	}

	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)
	if left == "" || right == "" {
		return nil, 0, ErrNoSeparator
	}

	ru, en := s.classifier.Classify(left, right)

	id, err := s.wordRepo.AddUserWord(userID, ru, en)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.wordRepo.CountVisible(userID)
	if err != nil {
		return nil, 0, err
	}

	word := &domain.Word{
		Source: domain.SourceUser,
		ID:     id,
		Ru:     ru,
		En:     en,
	}
	return word, total, nil
}

// DeleteQuizWord removes the quizzed word from the user's training set:
// global words are hidden for this user only, the user's own words are
// soft-deleted. Words the user does not own are silently left untouched.
func (s *WordService) DeleteQuizWord(userID int64, quiz *domain.Quiz) error {
	if quiz.Source == domain.SourceGlobal {
		return s.wordRepo.HideGlobalWord(userID, quiz.WordID)
	}
	return s.wordRepo.SoftDeleteUserWord(quiz.WordID, userID)
}
