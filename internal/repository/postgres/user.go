package postgres

import (
	"database/sql"

	"github.com/google/uuid"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureUserExists creates the user row if it does not exist
func (r *UserRepo) EnsureUserExists(userID uuid.UUID) error {
	query := `
		INSERT INTO users (id)
		VALUES ($1)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}
