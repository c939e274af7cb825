package service

// Classifier decides which side of a submitted word pair is Russian and
// which is English. It is an interface so the script heuristic can be
// replaced (e.g. by explicit language tagging) without touching handlers.
type Classifier interface {
	Classify(left, right string) (ru, en string)
}

// ScriptClassifier assigns sides by script: a side containing any rune
// outside ASCII is treated as Russian, a purely ASCII side as English.
// When both sides look the same, the left side is taken as Russian.
type ScriptClassifier struct{}

// NewScriptClassifier creates the default classifier
func NewScriptClassifier() ScriptClassifier {
	return ScriptClassifier{}
}

// Classify implements Classifier
func (ScriptClassifier) Classify(left, right string) (ru, en string) {
	switch {
	case !isASCII(left) && isASCII(right):
		return left, right
	case isASCII(left) && !isASCII(right):
		return right, left
	default:
		return left, right
	}
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > 127 {
			return false
		}
	}
	return true
}
