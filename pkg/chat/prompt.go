package chat

import (
	"strings"

	"github.com/nextalk-ai/nextalk/pkg/memory"
)

// Composer renders the prompt for one turn. The layout is fixed: a long-term
// memories section, the recent conversation, then the new user message. The
// headers are emitted even when their sections are empty so the model always
// sees the same frame.
type Composer struct{}

// NewComposer creates a prompt composer
func NewComposer() *Composer {
	return &Composer{}
}

// Compose builds the prompt text. The history already contains the new user
// message as its last entry; it is still repeated in the final User line.
func (c *Composer) Compose(longTerm []*memory.Memory, history []Message, userMessage string) string {
	parts := make([]string, 0, len(longTerm)+len(history)+3)

	parts = append(parts, "Relevant long-term memories:")
	for _, m := range longTerm {
		parts = append(parts, "- "+m.Content)
	}

	parts = append(parts, "\nRecent conversation:")
	for _, msg := range history {
		parts = append(parts, msg.Role+": "+msg.Text)
	}

	parts = append(parts, "\nUser: "+userMessage)

	return strings.Join(parts, "\n")
}
