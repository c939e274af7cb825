package postgres

import (
	"database/sql"

	"wordtrainer/internal/domain"
)

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// VisibleWords returns all words available to the user:
// global words the user has not hidden plus the user's own non-deleted words.
// Order is not significant, the quiz builder treats the result as a pool.
func (r *WordRepo) VisibleWords(userID int64) ([]domain.Word, error) {
	query := `
		SELECT 'global' AS source, gw.id, gw.ru, gw.en
		FROM global_words gw
		WHERE NOT EXISTS (
			SELECT 1 FROM user_hidden_global_words uh
			WHERE uh.user_id = $1 AND uh.word_id = gw.id
		)
		UNION ALL
		SELECT 'user' AS source, uw.id, uw.ru, uw.en
		FROM user_words uw
		WHERE uw.user_id = $1 AND NOT uw.deleted
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.Source, &w.ID, &w.Ru, &w.En); err != nil {
			return nil, err
		}
		words = append(words, w)
	}

	return words, rows.Err()
}

// CountVisible returns the size of the user's visible word set
func (r *WordRepo) CountVisible(userID int64) (int, error) {
	query := `
		SELECT (
			SELECT COUNT(*) FROM global_words gw
			WHERE NOT EXISTS (
				SELECT 1 FROM user_hidden_global_words uh
				WHERE uh.user_id = $1 AND uh.word_id = gw.id
			)
		) + (
			SELECT COUNT(*) FROM user_words uw
			WHERE uw.user_id = $1 AND NOT uw.deleted
		) AS total
	`

	var count int
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}

// AddUserWord stores a new private word pair and returns its id.
// Duplicates are allowed.
func (r *WordRepo) AddUserWord(userID int64, ru, en string) (int64, error) {
	var id int64
	query := `
		INSERT INTO user_words (user_id, ru, en)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.db.QueryRow(query, userID, ru, en).Scan(&id)
	return id, err
}

// HideGlobalWord marks a global word as invisible to the user.
// Hiding an already hidden word is a no-op.
func (r *WordRepo) HideGlobalWord(userID, wordID int64) error {
	query := `
		INSERT INTO user_hidden_global_words (user_id, word_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, word_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID, wordID)
	return err
}

// SoftDeleteUserWord flags a private word as deleted. The ownership filter
// makes deleting another user's word (or a missing id) a silent no-op.
func (r *WordRepo) SoftDeleteUserWord(wordID, userID int64) error {
	query := `
		UPDATE user_words
		SET deleted = TRUE
		WHERE id = $1 AND user_id = $2
	`
	_, err := r.db.Exec(query, wordID, userID)
	return err
}
