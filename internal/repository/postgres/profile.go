package postgres

import (
	"database/sql"

	"github.com/google/uuid"

	"lexibook/internal/domain"
)

// ProfileRepo implements repository.ProfileRepository
type ProfileRepo struct {
	db *sql.DB
}

// NewProfileRepo creates a new profile repository
func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Get returns the user's profile, or nil when never saved
func (r *ProfileRepo) Get(userID uuid.UUID) (*domain.Profile, error) {
	var p domain.Profile
	query := `
		SELECT display_name, avatar_emoji, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	err := r.db.QueryRow(query, userID).Scan(&p.DisplayName, &p.AvatarEmoji, &p.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// Upsert writes the user's profile
func (r *ProfileRepo) Upsert(userID uuid.UUID, profile domain.Profile) error {
	query := `
		INSERT INTO profiles (user_id, display_name, avatar_emoji, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET display_name = $2, avatar_emoji = $3, updated_at = NOW()
	`
	_, err := r.db.Exec(query, userID, profile.DisplayName, profile.AvatarEmoji)
	return err
}
