package domain

// WordSource tells which table a word came from
type WordSource string

const (
	// SourceGlobal is the shared catalog, visible to everyone unless hidden
	SourceGlobal WordSource = "global"
	// SourceUser is a word added by one user, visible only to its owner
	SourceUser WordSource = "user"
)

// Word is one entry of a user's visible training set
type Word struct {
	Source WordSource
	ID     int64
	Ru     string
	En     string
}
