package chat

import (
	"context"

	"github.com/nextalk-ai/nextalk/pkg/kernel"
)

// ShortTermBuffer is the bounded per-session conversation window. Appending
// beyond the configured capacity evicts the oldest entries.
type ShortTermBuffer interface {
	// Append adds a message to the end of the session's buffer, evicting
	// from the front when over capacity
	Append(ctx context.Context, sessionID kernel.SessionID, msg Message) error

	// Read returns the buffered messages oldest first
	Read(ctx context.Context, sessionID kernel.SessionID) ([]Message, error)

	// Clear discards the session's buffer entirely
	Clear(ctx context.Context, sessionID kernel.SessionID) error
}
