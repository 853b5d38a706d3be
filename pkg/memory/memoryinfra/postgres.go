package memoryinfra

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/nextalk-ai/nextalk/pkg/errx"
	"github.com/nextalk-ai/nextalk/pkg/kernel"
	"github.com/nextalk-ai/nextalk/pkg/memory"
)

const schema = `
CREATE TABLE IF NOT EXISTS memories (
	id UUID PRIMARY KEY,
	user_profile_id UUID NOT NULL REFERENCES user_profiles(id) ON DELETE CASCADE,
	mem_type TEXT NOT NULL DEFAULT 'general',
	content TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	last_used_at TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS memories_profile_recency_idx
	ON memories (user_profile_id, last_used_at DESC NULLS LAST, created_at DESC)`

// PostgresMemoryRepository is the PostgreSQL implementation of memory.Repository
type PostgresMemoryRepository struct {
	db *sqlx.DB
}

// NewPostgresMemoryRepository creates a new memory repository
func NewPostgresMemoryRepository(db *sqlx.DB) memory.Repository {
	return &PostgresMemoryRepository{
		db: db,
	}
}

// EnsureSchema creates the memories table if it does not exist
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errx.Wrap(err, "failed to ensure memories schema", errx.TypeInternal)
	}
	return nil
}

// Create inserts a new memory record
func (r *PostgresMemoryRepository) Create(ctx context.Context, m *memory.Memory) error {
	query := `
		INSERT INTO memories (id, user_profile_id, mem_type, content, created_at, last_used_at)
		VALUES (:id, :user_profile_id, :mem_type, :content, :created_at, :last_used_at)`

	_, err := r.db.NamedExecContext(ctx, query, m)
	if err != nil {
		return errx.Wrap(err, "failed to create memory", errx.TypeInternal).
			WithDetail("memory_id", m.ID.String()).
			WithDetail("profile_id", m.UserProfileID.String())
	}

	return nil
}

// ListRecent returns up to limit memories ordered by recency of use.
// NULLS LAST keeps never-used memories behind recently used ones.
func (r *PostgresMemoryRepository) ListRecent(ctx context.Context, profileID kernel.ProfileID, limit int) ([]*memory.Memory, error) {
	query := `
		SELECT id, user_profile_id, mem_type, content, created_at, last_used_at
		FROM memories
		WHERE user_profile_id = $1
		ORDER BY last_used_at DESC NULLS LAST, created_at DESC
		LIMIT $2`

	var memories []memory.Memory
	err := r.db.SelectContext(ctx, &memories, query, profileID.String(), limit)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list recent memories", errx.TypeInternal).
			WithDetail("profile_id", profileID.String())
	}

	result := make([]*memory.Memory, len(memories))
	for i := range memories {
		result[i] = &memories[i]
	}

	return result, nil
}

// ListByProfile returns every memory of a profile, newest first
func (r *PostgresMemoryRepository) ListByProfile(ctx context.Context, profileID kernel.ProfileID) ([]*memory.Memory, error) {
	query := `
		SELECT id, user_profile_id, mem_type, content, created_at, last_used_at
		FROM memories
		WHERE user_profile_id = $1
		ORDER BY created_at DESC`

	var memories []memory.Memory
	err := r.db.SelectContext(ctx, &memories, query, profileID.String())
	if err != nil {
		return nil, errx.Wrap(err, "failed to list memories", errx.TypeInternal).
			WithDetail("profile_id", profileID.String())
	}

	result := make([]*memory.Memory, len(memories))
	for i := range memories {
		result[i] = &memories[i]
	}

	return result, nil
}

// Touch stamps last_used_at on the selected memories. GREATEST keeps the
// stamp monotonic under concurrent turns.
func (r *PostgresMemoryRepository) Touch(ctx context.Context, ids []kernel.MemoryID, usedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = id.String()
	}

	query := `
		UPDATE memories
		SET last_used_at = GREATEST(COALESCE(last_used_at, $2), $2)
		WHERE id = ANY($1)`

	_, err := r.db.ExecContext(ctx, query, pq.Array(strIDs), usedAt)
	if err != nil {
		return errx.Wrap(err, "failed to touch memories", errx.TypeInternal).
			WithDetail("memory_count", len(ids))
	}

	return nil
}

// Delete removes a memory of the given profile
func (r *PostgresMemoryRepository) Delete(ctx context.Context, profileID kernel.ProfileID, id kernel.MemoryID) error {
	query := `DELETE FROM memories WHERE id = $1 AND user_profile_id = $2`

	result, err := r.db.ExecContext(ctx, query, id.String(), profileID.String())
	if err != nil {
		return errx.Wrap(err, "failed to delete memory", errx.TypeInternal).
			WithDetail("memory_id", id.String()).
			WithDetail("profile_id", profileID.String())
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errx.Wrap(err, "failed to get rows affected", errx.TypeInternal)
	}

	if rowsAffected == 0 {
		return memory.ErrMemoryNotFound().WithDetail("memory_id", id.String())
	}

	return nil
}
