package chatinfra

import (
	"context"
	"sync"

	"github.com/nextalk-ai/nextalk/pkg/chat"
	"github.com/nextalk-ai/nextalk/pkg/kernel"
)

// InMemoryShortTermBuffer keeps session windows in process memory, for
// development and tests
type InMemoryShortTermBuffer struct {
	mu          sync.RWMutex
	sessions    map[kernel.SessionID][]chat.Message
	maxMessages int
}

// NewInMemoryShortTermBuffer creates an empty in-memory buffer
func NewInMemoryShortTermBuffer(maxMessages int) *InMemoryShortTermBuffer {
	return &InMemoryShortTermBuffer{
		sessions:    make(map[kernel.SessionID][]chat.Message),
		maxMessages: maxMessages,
	}
}

func (b *InMemoryShortTermBuffer) Append(ctx context.Context, sessionID kernel.SessionID, msg chat.Message) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	window := append(b.sessions[sessionID], msg)
	if len(window) > b.maxMessages {
		window = window[len(window)-b.maxMessages:]
	}
	b.sessions[sessionID] = window
	return nil
}

func (b *InMemoryShortTermBuffer) Read(ctx context.Context, sessionID kernel.SessionID) ([]chat.Message, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	window := b.sessions[sessionID]
	result := make([]chat.Message, len(window))
	copy(result, window)
	return result, nil
}

func (b *InMemoryShortTermBuffer) Clear(ctx context.Context, sessionID kernel.SessionID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.sessions, sessionID)
	return nil
}
