package profile

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/nextalk-ai/nextalk/pkg/errx"
	"github.com/nextalk-ai/nextalk/pkg/kernel"
)

// Preferences holds free-form per-user settings stored as JSON
type Preferences map[string]any

// Value implements driver.Valuer for database storage
func (p Preferences) Value() (driver.Value, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner for database retrieval
func (p *Preferences) Scan(value any) error {
	if value == nil {
		*p = Preferences{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for Preferences")
	}

	if len(data) == 0 {
		*p = Preferences{}
		return nil
	}
	return json.Unmarshal(data, p)
}

// UserProfile is the owner identity that long-term memories attach to
type UserProfile struct {
	ID          kernel.ProfileID `json:"id" db:"id"`
	DisplayName string           `json:"display_name" db:"display_name"`
	Timezone    string           `json:"timezone" db:"timezone"`
	Preferences Preferences      `json:"preferences" db:"preferences"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
}

// NewUserProfile creates a profile with a fresh identity
func NewUserProfile(displayName, timezone string, prefs Preferences) *UserProfile {
	if timezone == "" {
		timezone = "UTC"
	}
	if prefs == nil {
		prefs = Preferences{}
	}
	return &UserProfile{
		ID:          kernel.NewProfileID(),
		DisplayName: displayName,
		Timezone:    timezone,
		Preferences: prefs,
		CreatedAt:   time.Now().UTC(),
	}
}

// CreateProfileRequest is the payload for registering a profile
type CreateProfileRequest struct {
	DisplayName string      `json:"display_name"`
	Timezone    string      `json:"timezone"`
	Preferences Preferences `json:"preferences"`
}

// Validate checks the request fields
func (r CreateProfileRequest) Validate() error {
	if r.DisplayName == "" {
		return ErrEmptyDisplayName()
	}
	return nil
}

// ProfileResponse is the API representation of a profile
type ProfileResponse struct {
	ID          string      `json:"id"`
	DisplayName string      `json:"display_name"`
	Timezone    string      `json:"timezone"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"created_at"`
}

// ToResponse converts the entity to its API representation
func (p *UserProfile) ToResponse() ProfileResponse {
	return ProfileResponse{
		ID:          p.ID.String(),
		DisplayName: p.DisplayName,
		Timezone:    p.Timezone,
		Preferences: p.Preferences,
		CreatedAt:   p.CreatedAt,
	}
}

// Error registry for the profile domain
var ErrRegistry = errx.NewRegistry("PROFILE")

var (
	CodeNotFound         = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, 404, "user profile not found")
	CodeEmptyDisplayName = ErrRegistry.Register("EMPTY_DISPLAY_NAME", errx.TypeValidation, 400, "display name must not be empty")
	CodeInvalidID        = ErrRegistry.Register("INVALID_ID", errx.TypeValidation, 400, "invalid profile id")
)

func ErrProfileNotFound() *errx.Error {
	return ErrRegistry.New(CodeNotFound)
}

func ErrEmptyDisplayName() *errx.Error {
	return ErrRegistry.New(CodeEmptyDisplayName)
}

func ErrInvalidProfileID() *errx.Error {
	return ErrRegistry.New(CodeInvalidID)
}
