package domain

// User represents a bot user
type User struct {
	ID         int64
	TelegramID int64
	Username   string
	FirstName  string
}
