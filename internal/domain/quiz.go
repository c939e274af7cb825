package domain

// Quiz is one multiple-choice question. Options always contain En exactly
// once among four shuffled answers.
type Quiz struct {
	Source  WordSource
	WordID  int64
	Ru      string
	En      string
	Options []string
}
