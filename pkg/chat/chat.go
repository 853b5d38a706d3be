package chat

import (
	"strings"
	"time"

	"github.com/nextalk-ai/nextalk/pkg/errx"
	"github.com/nextalk-ai/nextalk/pkg/kernel"
)

// Role constants for buffer entries
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of the short-term conversation buffer
type Message struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"ts"`
}

// NewUserMessage creates a user buffer entry stamped now
func NewUserMessage(text string) Message {
	return Message{Role: RoleUser, Text: text, Timestamp: time.Now().UTC()}
}

// NewAssistantMessage creates an assistant buffer entry stamped now
func NewAssistantMessage(text string) Message {
	return Message{Role: RoleAssistant, Text: text, Timestamp: time.Now().UTC()}
}

// TurnRequest is the payload for one conversational turn
type TurnRequest struct {
	SessionID     string `json:"session_id"`
	UserProfileID string `json:"user_profile_id"`
	Message       string `json:"message"`
}

// Validate checks the request fields. SessionID and UserProfileID may be
// empty; an empty session gets a fresh id, an empty profile skips long-term
// recall.
func (r TurnRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return ErrEmptyMessage()
	}
	return nil
}

// SaveSuggestion hints the client that the last user message looks worth
// persisting as a long-term memory
type SaveSuggestion struct {
	Suggest     bool   `json:"suggest"`
	ExampleSave string `json:"example_save"`
}

// TurnResponse is the result of one conversational turn
type TurnResponse struct {
	Reply          string           `json:"reply"`
	SessionID      kernel.SessionID `json:"session_id"`
	ShortHistory   []Message        `json:"short_history"`
	SaveSuggestion *SaveSuggestion  `json:"save_suggestion"`
}

// Error registry for the chat domain
var ErrRegistry = errx.NewRegistry("CHAT")

var (
	CodeEmptyMessage  = ErrRegistry.Register("EMPTY_MESSAGE", errx.TypeValidation, 400, "message must not be empty")
	CodeUnknownAction = ErrRegistry.Register("UNKNOWN_ACTION", errx.TypeValidation, 400, "unknown action")
)

func ErrEmptyMessage() *errx.Error {
	return ErrRegistry.New(CodeEmptyMessage)
}

func ErrUnknownAction() *errx.Error {
	return ErrRegistry.New(CodeUnknownAction)
}
