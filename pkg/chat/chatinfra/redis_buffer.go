package chatinfra

import (
	"context"
	"encoding/json"

	"github.com/nextalk-ai/nextalk/pkg/chat"
	"github.com/nextalk-ai/nextalk/pkg/errx"
	"github.com/nextalk-ai/nextalk/pkg/kernel"
	"github.com/redis/go-redis/v9"
)

// RedisShortTermBuffer stores each session's window as a Redis list, trimmed
// to the last maxMessages entries on every append
type RedisShortTermBuffer struct {
	client      redis.Cmdable
	maxMessages int
}

// NewRedisShortTermBuffer creates a Redis-backed buffer
func NewRedisShortTermBuffer(client redis.Cmdable, maxMessages int) *RedisShortTermBuffer {
	return &RedisShortTermBuffer{
		client:      client,
		maxMessages: maxMessages,
	}
}

func bufferKey(sessionID kernel.SessionID) string {
	return "chat:" + sessionID.String() + ":messages"
}

// Append pushes the message to the tail and trims the list to capacity
func (b *RedisShortTermBuffer) Append(ctx context.Context, sessionID kernel.SessionID, msg chat.Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return errx.Wrap(err, "failed to encode buffer message", errx.TypeInternal)
	}

	key := bufferKey(sessionID)
	if err := b.client.RPush(ctx, key, data).Err(); err != nil {
		return errx.Wrap(err, "failed to append to short-term buffer", errx.TypeInternal).
			WithDetail("session_id", sessionID.String())
	}

	if err := b.client.LTrim(ctx, key, int64(-b.maxMessages), -1).Err(); err != nil {
		return errx.Wrap(err, "failed to trim short-term buffer", errx.TypeInternal).
			WithDetail("session_id", sessionID.String())
	}

	return nil
}

// Read returns the buffered messages oldest first
func (b *RedisShortTermBuffer) Read(ctx context.Context, sessionID kernel.SessionID) ([]chat.Message, error) {
	raw, err := b.client.LRange(ctx, bufferKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, errx.Wrap(err, "failed to read short-term buffer", errx.TypeInternal).
			WithDetail("session_id", sessionID.String())
	}

	messages := make([]chat.Message, 0, len(raw))
	for _, item := range raw {
		var msg chat.Message
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, errx.Wrap(err, "failed to decode buffer message", errx.TypeInternal).
				WithDetail("session_id", sessionID.String())
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

// Clear deletes the session's list
func (b *RedisShortTermBuffer) Clear(ctx context.Context, sessionID kernel.SessionID) error {
	if err := b.client.Del(ctx, bufferKey(sessionID)).Err(); err != nil {
		return errx.Wrap(err, "failed to clear short-term buffer", errx.TypeInternal).
			WithDetail("session_id", sessionID.String())
	}
	return nil
}
