package service

import (
	"errors"
	"math/rand"
	"strings"

	"wordtrainer/internal/domain"
)

// ErrNotEnoughWords is returned when the visible set cannot produce one
// correct answer plus three distinct distractors
var ErrNotEnoughWords = errors.New("not enough words to build a quiz")

const optionCount = 4

// QuizService builds multiple-choice questions from a word pool
type QuizService struct {
	rnd *rand.Rand
}

// NewQuizService creates a quiz service with the given randomness source.
// Tests pass a seeded source to get deterministic quizzes.
func NewQuizService(rnd *rand.Rand) *QuizService {
	return &QuizService{rnd: rnd}
}

// Build assembles one question from the user's visible words: a random
// target plus three distractors with distinct translations, shuffled so
// the correct option's position carries no signal. The input slice is not
// modified.
func (s *QuizService) Build(words []domain.Word) (*domain.Quiz, error) {
	if len(words) < optionCount {
		return nil, ErrNotEnoughWords
	}

	target := words[s.rnd.Intn(len(words))]

	// Distractor pool: one word per distinct translation, excluding every
	// word that translates the same as the target. Case-insensitive, so
	// "Cat" and "cat" never end up as two options.
	seen := map[string]bool{strings.ToLower(target.En): true}
	var pool []domain.Word
	for _, w := range words {
		key := strings.ToLower(w.En)
		if seen[key] {
			continue
		}
		seen[key] = true
		pool = append(pool, w)
	}

	// The raw count can pass the threshold while the pool collapses below
	// three when many words share a translation.
	if len(pool) < optionCount-1 {
		return nil, ErrNotEnoughWords
	}

	options := make([]string, 0, optionCount)
	options = append(options, target.En)
	for i := 0; i < optionCount-1; i++ {
		j := i + s.rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
		options = append(options, pool[i].En)
	}

	s.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &domain.Quiz{
		Source:  target.Source,
		WordID:  target.ID,
		Ru:      target.Ru,
		En:      target.En,
		Options: options,
	}, nil
}
