package service

import (
	"math/rand"
	"strings"
	"testing"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func newTestQuizService(seed int64) *QuizService {
	return NewQuizService(rand.New(rand.NewSource(seed)))
}

func TestQuizService_Build_NotEnoughWords(t *testing.T) {
	tests := []struct {
		name  string
		words []domain.Word
	}{
		{
			name:  "empty pool",
			words: nil,
		},
		{
			name: "three words",
			words: []domain.Word{
				testutil.NewTestWord(domain.SourceGlobal, 1, "кошка", "cat"),
				testutil.NewTestWord(domain.SourceGlobal, 2, "собака", "dog"),
				testutil.NewTestWord(domain.SourceGlobal, 3, "дом", "house"),
			},
		},
		{
			// Four rows but only two distinct translations: the raw count
			// passes while the distractor pool collapses below three
			name: "shared translations",
			words: []domain.Word{
				testutil.NewTestWord(domain.SourceGlobal, 1, "кошка", "cat"),
				testutil.NewTestWord(domain.SourceGlobal, 2, "кот", "Cat"),
				testutil.NewTestWord(domain.SourceGlobal, 3, "собака", "dog"),
				testutil.NewTestWord(domain.SourceUser, 4, "пёс", "DOG"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestQuizService(1)

			quiz, err := service.Build(tt.words)

			assert.Nil(t, quiz)
			assert.ErrorIs(t, err, ErrNotEnoughWords)
		})
	}
}

func TestQuizService_Build_Invariants(t *testing.T) {
	words := testutil.NewTestPool()

	byEn := make(map[string]domain.Word, len(words))
	for _, w := range words {
		byEn[strings.ToLower(w.En)] = w
	}

	// Exercise many seeds so every target and permutation shows up
	for seed := int64(0); seed < 100; seed++ {
		service := newTestQuizService(seed)

		quiz, err := service.Build(words)
		assert.NoError(t, err)
		assert.NotNil(t, quiz)

		assert.Len(t, quiz.Options, 4)

		// Correct answer appears exactly once, no duplicate options
		lowered := make(map[string]int, 4)
		for _, opt := range quiz.Options {
			lowered[strings.ToLower(opt)]++
		}
		assert.Len(t, lowered, 4, "options must be distinct (seed %d)", seed)
		assert.Equal(t, 1, lowered[strings.ToLower(quiz.En)], "correct answer once (seed %d)", seed)

		// Every option comes from the pool, and the target's fields match
		// the word it was drawn from
		for _, opt := range quiz.Options {
			_, ok := byEn[strings.ToLower(opt)]
			assert.True(t, ok, "option %q not from pool (seed %d)", opt, seed)
		}
		target, ok := byEn[strings.ToLower(quiz.En)]
		assert.True(t, ok)
		assert.Equal(t, target.ID, quiz.WordID)
		assert.Equal(t, target.Source, quiz.Source)
		assert.Equal(t, target.Ru, quiz.Ru)
	}
}

func TestQuizService_Build_DoesNotMutateInput(t *testing.T) {
	words := testutil.NewTestPool()
	original := make([]domain.Word, len(words))
	copy(original, words)

	service := newTestQuizService(7)

	_, err := service.Build(words)

	assert.NoError(t, err)
	assert.Equal(t, original, words)
}

func TestQuizService_Build_DeterministicForSeed(t *testing.T) {
	words := testutil.NewTestPool()

	first, err := newTestQuizService(42).Build(words)
	assert.NoError(t, err)

	second, err := newTestQuizService(42).Build(words)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}
