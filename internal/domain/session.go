package domain

// State represents the conversation's current interaction state
type State string

const (
	StateIdle           State = "idle"
	StateAwaitingAnswer State = "awaiting_answer"
	StateAddingWord     State = "adding_word"
)

// Session holds dialog state for one (user, chat) pair between updates
type Session struct {
	State State
	Quiz  *Quiz
}
