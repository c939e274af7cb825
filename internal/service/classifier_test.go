package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptClassifier_Classify(t *testing.T) {
	tests := []struct {
		name       string
		left       string
		right      string
		expectedRu string
		expectedEn string
	}{
		{
			name:       "russian first",
			left:       "кошка",
			right:      "cat",
			expectedRu: "кошка",
			expectedEn: "cat",
		},
		{
			name:       "english first",
			left:       "cat",
			right:      "кошка",
			expectedRu: "кошка",
			expectedEn: "cat",
		},
		{
			name:       "both ascii falls back to left as russian",
			left:       "cat",
			right:      "dog",
			expectedRu: "cat",
			expectedEn: "dog",
		},
		{
			name:       "both cyrillic falls back to left as russian",
			left:       "кошка",
			right:      "собака",
			expectedRu: "кошка",
			expectedEn: "собака",
		},
		{
			name:       "digits and punctuation count as ascii",
			left:       "7 дней",
			right:      "7 days!",
			expectedRu: "7 дней",
			expectedEn: "7 days!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := NewScriptClassifier()

			ru, en := classifier.Classify(tt.left, tt.right)

			assert.Equal(t, tt.expectedRu, ru)
			assert.Equal(t, tt.expectedEn, en)
		})
	}
}
