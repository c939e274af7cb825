package postgres

import (
	"database/sql"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetOrCreate returns the internal id for a Telegram user, inserting the
// row on first contact. The upsert keeps duplicate first contacts (e.g.
// a repeated webhook delivery) down to a single row.
func (r *UserRepo) GetOrCreate(tgID int64, username, firstName string) (int64, error) {
	var id int64
	query := `
		INSERT INTO users (tg_id, username, first_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (tg_id) DO UPDATE SET tg_id = EXCLUDED.tg_id
		RETURNING id
	`
	err := r.db.QueryRow(query, tgID, username, firstName).Scan(&id)
	return id, err
}
