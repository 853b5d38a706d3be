package chatsrv

import (
	"context"
	"strings"
	"time"

	"github.com/nextalk-ai/nextalk/pkg/chat"
	"github.com/nextalk-ai/nextalk/pkg/kernel"
	"github.com/nextalk-ai/nextalk/pkg/logx"
	"github.com/nextalk-ai/nextalk/pkg/memory"
	"github.com/nextalk-ai/nextalk/pkg/profile"
)

// ChatService orchestrates one conversational turn: buffer the user message,
// recall long-term memories, compose the prompt, generate the reply, buffer
// it, and stamp the recalled memories as used.
type ChatService struct {
	buffer      chat.ShortTermBuffer
	selector    chat.Selector
	composer    *chat.Composer
	gateway     *chat.LLMGateway
	memoryRepo  memory.Repository
	profileRepo profile.Repository
	topMemories int
	historyTail int
}

// NewChatService creates the turn orchestrator
func NewChatService(
	buffer chat.ShortTermBuffer,
	selector chat.Selector,
	composer *chat.Composer,
	gateway *chat.LLMGateway,
	memoryRepo memory.Repository,
	profileRepo profile.Repository,
	topMemories int,
	historyTail int,
) *ChatService {
	return &ChatService{
		buffer:      buffer,
		selector:    selector,
		composer:    composer,
		gateway:     gateway,
		memoryRepo:  memoryRepo,
		profileRepo: profileRepo,
		topMemories: topMemories,
		historyTail: historyTail,
	}
}

// HandleTurn runs one turn of the conversation
func (s *ChatService) HandleTurn(ctx context.Context, req chat.TurnRequest) (*chat.TurnResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sessionID := kernel.SessionID(req.SessionID)
	if sessionID == "" {
		sessionID = kernel.NewSessionID()
	}

	if err := s.buffer.Append(ctx, sessionID, chat.NewUserMessage(req.Message)); err != nil {
		return nil, err
	}

	// History now ends with the new user message
	history, err := s.buffer.Read(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var longTerm []*memory.Memory
	if req.UserProfileID != "" {
		profileID, err := kernel.ParseProfileID(req.UserProfileID)
		if err != nil {
			return nil, profile.ErrInvalidProfileID().WithDetail("profile_id", req.UserProfileID)
		}
		if _, err := s.profileRepo.GetByID(ctx, profileID); err != nil {
			return nil, err
		}
		longTerm, err = s.selector.Select(ctx, profileID, req.Message, s.topMemories)
		if err != nil {
			return nil, err
		}
	}

	prompt := s.composer.Compose(longTerm, history, req.Message)
	reply := s.gateway.Generate(ctx, prompt)

	if err := s.buffer.Append(ctx, sessionID, chat.NewAssistantMessage(reply)); err != nil {
		return nil, err
	}

	// Usage stamping is best effort; a failed touch never fails the turn
	if len(longTerm) > 0 {
		ids := make([]kernel.MemoryID, len(longTerm))
		for i, m := range longTerm {
			ids[i] = m.ID
		}
		if err := s.memoryRepo.Touch(ctx, ids, time.Now().UTC()); err != nil {
			logx.WithFields(logx.Fields{
				"session_id": sessionID.String(),
				"error":      err.Error(),
			}).Warnf("failed to stamp memory usage")
		}
	}

	logx.WithFields(logx.Fields{
		"session_id":    sessionID.String(),
		"history_len":   len(history),
		"memories_used": len(longTerm),
	}).Infof("chat turn completed")

	return &chat.TurnResponse{
		Reply:          reply,
		SessionID:      sessionID,
		ShortHistory:   tail(history, s.historyTail),
		SaveSuggestion: detectSaveSuggestion(req.Message),
	}, nil
}

// GetSessionMessages returns the full short-term buffer of a session
func (s *ChatService) GetSessionMessages(ctx context.Context, sessionID kernel.SessionID) ([]chat.Message, error) {
	return s.buffer.Read(ctx, sessionID)
}

// ClearSession discards the short-term buffer of a session
func (s *ChatService) ClearSession(ctx context.Context, sessionID kernel.SessionID) error {
	return s.buffer.Clear(ctx, sessionID)
}

// tail returns the last n messages. The echoed history is read before the
// assistant reply is appended, so it ends with the user message.
func tail(messages []chat.Message, n int) []chat.Message {
	if n <= 0 || len(messages) <= n {
		return messages
	}
	return messages[len(messages)-n:]
}

// detectSaveSuggestion flags user messages that look like durable
// preferences worth persisting
func detectSaveSuggestion(message string) *chat.SaveSuggestion {
	lower := strings.ToLower(message)
	if strings.Contains(lower, "my favorite") || strings.Contains(lower, "i like") {
		return &chat.SaveSuggestion{Suggest: true, ExampleSave: message}
	}
	return nil
}
