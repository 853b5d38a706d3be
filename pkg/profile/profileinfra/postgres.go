package profileinfra

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/nextalk-ai/nextalk/pkg/errx"
	"github.com/nextalk-ai/nextalk/pkg/kernel"
	"github.com/nextalk-ai/nextalk/pkg/profile"
)

const schema = `
CREATE TABLE IF NOT EXISTS user_profiles (
	id UUID PRIMARY KEY,
	display_name TEXT NOT NULL,
	timezone TEXT NOT NULL DEFAULT 'UTC',
	preferences JSONB NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresProfileRepository is the PostgreSQL implementation of profile.Repository
type PostgresProfileRepository struct {
	db *sqlx.DB
}

// NewPostgresProfileRepository creates a new profile repository
func NewPostgresProfileRepository(db *sqlx.DB) profile.Repository {
	return &PostgresProfileRepository{
		db: db,
	}
}

// EnsureSchema creates the user_profiles table if it does not exist
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errx.Wrap(err, "failed to ensure user_profiles schema", errx.TypeInternal)
	}
	return nil
}

// Create inserts a new profile
func (r *PostgresProfileRepository) Create(ctx context.Context, p *profile.UserProfile) error {
	query := `
		INSERT INTO user_profiles (id, display_name, timezone, preferences, created_at)
		VALUES (:id, :display_name, :timezone, :preferences, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return errx.Wrap(err, "failed to create user profile", errx.TypeInternal).
			WithDetail("profile_id", p.ID.String())
	}

	return nil
}

// GetByID looks up a profile by id
func (r *PostgresProfileRepository) GetByID(ctx context.Context, id kernel.ProfileID) (*profile.UserProfile, error) {
	query := `
		SELECT id, display_name, timezone, preferences, created_at
		FROM user_profiles
		WHERE id = $1`

	var p profile.UserProfile
	err := r.db.GetContext(ctx, &p, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, profile.ErrProfileNotFound().WithDetail("profile_id", id.String())
		}
		return nil, errx.Wrap(err, "failed to find user profile by id", errx.TypeInternal).
			WithDetail("profile_id", id.String())
	}

	return &p, nil
}

// List returns all profiles, newest first
func (r *PostgresProfileRepository) List(ctx context.Context) ([]*profile.UserProfile, error) {
	query := `
		SELECT id, display_name, timezone, preferences, created_at
		FROM user_profiles
		ORDER BY created_at DESC`

	var profiles []profile.UserProfile
	err := r.db.SelectContext(ctx, &profiles, query)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list user profiles", errx.TypeInternal)
	}

	result := make([]*profile.UserProfile, len(profiles))
	for i := range profiles {
		result[i] = &profiles[i]
	}

	return result, nil
}
