package kernel

import "github.com/google/uuid"

// ProfileID identifies a user profile
type ProfileID string

// NewProfileID generates a fresh profile id
func NewProfileID() ProfileID {
	return ProfileID(uuid.NewString())
}

// ParseProfileID validates the string as a UUID profile id
func ParseProfileID(s string) (ProfileID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return ProfileID(id.String()), nil
}

func (id ProfileID) String() string {
	return string(id)
}

// MemoryID identifies a long-term memory record
type MemoryID string

// NewMemoryID generates a fresh memory id
func NewMemoryID() MemoryID {
	return MemoryID(uuid.NewString())
}

// ParseMemoryID validates the string as a UUID memory id
func ParseMemoryID(s string) (MemoryID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", err
	}
	return MemoryID(id.String()), nil
}

func (id MemoryID) String() string {
	return string(id)
}

// SessionID identifies a chat session. Sessions have no lifecycle record of
// their own; an id exists as long as its short-term buffer holds entries.
type SessionID string

// NewSessionID generates a fresh opaque session id
func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

func (id SessionID) String() string {
	return string(id)
}
