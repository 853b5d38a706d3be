package chat

import (
	"testing"
	"time"

	"github.com/nextalk-ai/nextalk/pkg/kernel"
	"github.com/nextalk-ai/nextalk/pkg/memory"
	"github.com/stretchr/testify/assert"
)

func mem(content string) *memory.Memory {
	return &memory.Memory{
		ID:            kernel.NewMemoryID(),
		UserProfileID: kernel.NewProfileID(),
		MemType:       memory.DefaultMemType,
		Content:       content,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestComposeFullPrompt(t *testing.T) {
	composer := NewComposer()

	longTerm := []*memory.Memory{
		mem("likes sushi"),
		mem("lives in Lima"),
	}
	history := []Message{
		{Role: RoleUser, Text: "hi"},
		{Role: RoleAssistant, Text: "hello!"},
		{Role: RoleUser, Text: "what do I like?"},
	}

	got := composer.Compose(longTerm, history, "what do I like?")

	want := "Relevant long-term memories:\n" +
		"- likes sushi\n" +
		"- lives in Lima\n" +
		"\nRecent conversation:\n" +
		"user: hi\n" +
		"assistant: hello!\n" +
		"user: what do I like?\n" +
		"\nUser: what do I like?"

	assert.Equal(t, want, got)
}

func TestComposeEmptySectionsKeepHeaders(t *testing.T) {
	composer := NewComposer()

	got := composer.Compose(nil, nil, "hello")

	want := "Relevant long-term memories:\n" +
		"\nRecent conversation:\n" +
		"\nUser: hello"

	assert.Equal(t, want, got)
}

func TestComposeIsDeterministic(t *testing.T) {
	composer := NewComposer()

	longTerm := []*memory.Memory{mem("speaks spanish")}
	history := []Message{{Role: RoleUser, Text: "hola"}}

	first := composer.Compose(longTerm, history, "hola")
	second := composer.Compose(longTerm, history, "hola")

	assert.Equal(t, first, second)
}
