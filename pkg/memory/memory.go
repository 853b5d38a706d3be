package memory

import (
	"strings"
	"time"

	"github.com/nextalk-ai/nextalk/pkg/errx"
	"github.com/nextalk-ai/nextalk/pkg/kernel"
)

// DefaultMemType is used when a memory is saved without an explicit category
const DefaultMemType = "general"

// Memory is one durable fact attached to a user profile
type Memory struct {
	ID            kernel.MemoryID  `json:"id" db:"id"`
	UserProfileID kernel.ProfileID `json:"user_profile_id" db:"user_profile_id"`
	MemType       string           `json:"mem_type" db:"mem_type"`
	Content       string           `json:"content" db:"content"`
	CreatedAt     time.Time        `json:"created_at" db:"created_at"`
	LastUsedAt    *time.Time       `json:"last_used_at" db:"last_used_at"`
}

// NewMemory creates a memory record. LastUsedAt starts unset; it is only
// stamped when the memory is actually injected into a prompt.
func NewMemory(profileID kernel.ProfileID, memType, content string) *Memory {
	if memType == "" {
		memType = DefaultMemType
	}
	return &Memory{
		ID:            kernel.NewMemoryID(),
		UserProfileID: profileID,
		MemType:       memType,
		Content:       content,
		CreatedAt:     time.Now().UTC(),
	}
}

// CreateMemoryRequest is the payload for saving a memory explicitly
type CreateMemoryRequest struct {
	MemType string `json:"mem_type"`
	Content string `json:"content"`
}

// Validate checks the request fields
func (r CreateMemoryRequest) Validate() error {
	if strings.TrimSpace(r.Content) == "" {
		return ErrEmptyContent()
	}
	return nil
}

// MemoryResponse is the API representation of a memory
type MemoryResponse struct {
	ID         string     `json:"id"`
	MemType    string     `json:"mem_type"`
	Content    string     `json:"content"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at"`
}

// ToResponse converts the entity to its API representation
func (m *Memory) ToResponse() MemoryResponse {
	return MemoryResponse{
		ID:         m.ID.String(),
		MemType:    m.MemType,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
		LastUsedAt: m.LastUsedAt,
	}
}

// Error registry for the memory domain
var ErrRegistry = errx.NewRegistry("MEMORY")

var (
	CodeNotFound     = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, 404, "memory not found")
	CodeEmptyContent = ErrRegistry.Register("EMPTY_CONTENT", errx.TypeValidation, 400, "memory content must not be empty")
	CodeInvalidID    = ErrRegistry.Register("INVALID_ID", errx.TypeValidation, 400, "invalid memory id")
)

func ErrMemoryNotFound() *errx.Error {
	return ErrRegistry.New(CodeNotFound)
}

func ErrEmptyContent() *errx.Error {
	return ErrRegistry.New(CodeEmptyContent)
}

func ErrInvalidMemoryID() *errx.Error {
	return ErrRegistry.New(CodeInvalidID)
}
